package handler

import (
	"net/http"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/lootbox"
)

// PreviewResponse is a roulette strip of weapons
type PreviewResponse struct {
	BoxID   int              `json:"box_id"`
	Weapons []*domain.Weapon `json:"weapons"`
}

// HandleListBoxes lists boxes priced for the caller
// @Summary List boxes
// @Description List every box with the caller's discounted price
// @Tags boxes
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {array} lootbox.BoxOffer
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/boxes [get]
func HandleListBoxes(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		offers, err := svc.Boxes(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, LogMsgListBoxesFailed, err, "player_id", playerID)
			return
		}

		respondJSON(w, http.StatusOK, offers)
	}
}

// HandleBoxOdds returns the caller's luck-adjusted drop distribution
// @Summary Box odds
// @Tags boxes
// @Produce json
// @Param id path int true "Box ID"
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} lootbox.Odds
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/boxes/{id}/odds [get]
func HandleBoxOdds(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}
		boxID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}

		odds, err := svc.Odds(r.Context(), playerID, boxID)
		if err != nil {
			respondServiceError(w, r, LogMsgOddsFailed, err, "player_id", playerID, "box_id", boxID)
			return
		}

		respondJSON(w, http.StatusOK, odds)
	}
}

// HandleBoxPreview returns a roulette strip drawn from the base distribution
// @Summary Roulette preview
// @Tags boxes
// @Produce json
// @Param id path int true "Box ID"
// @Param n query int false "Strip length"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/boxes/{id}/preview [get]
func HandleBoxPreview(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boxID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}
		n, ok := QueryInt(w, r, QueryParamN, DefaultPreviewSize)
		if !ok {
			return
		}
		if n == 0 || n > MaxPreviewSize {
			n = DefaultPreviewSize
		}

		weapons, err := svc.Preview(r.Context(), boxID, n)
		if err != nil {
			respondServiceError(w, r, LogMsgPreviewFailed, err, "box_id", boxID)
			return
		}

		respondJSON(w, http.StatusOK, PreviewResponse{BoxID: boxID, Weapons: weapons})
	}
}

// HandleOpenBox buys and opens a box for the caller
// @Summary Open box
// @Description Debit the box price, draw a weapon with grade, conta and passive, and add it to the inventory
// @Tags boxes
// @Produce json
// @Param id path int true "Box ID"
// @Param X-Player-ID header string true "Player ID"
// @Success 201 {object} domain.OpenBoxResult
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/boxes/{id}/open [post]
func HandleOpenBox(svc lootbox.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}
		boxID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}

		result, err := svc.OpenBox(r.Context(), playerID, boxID)
		if err != nil {
			respondServiceError(w, r, LogMsgOpenBoxFailed, err, "player_id", playerID, "box_id", boxID)
			return
		}

		log.Info("Box opened", "player_id", playerID, "box_id", boxID, "item_id", result.Item.ID)
		respondJSON(w, http.StatusCreated, result)
	}
}
