package handler

import (
	"net/http"

	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/passive"
	"github.com/osse101/LootForge_Go/internal/player"
)

// RegisterPlayerRequest is the body of a registration
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,username"`
}

// HandleRegisterPlayer creates a player with the starting balance
// @Summary Register player
// @Tags player
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Registration"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players [post]
func HandleRegisterPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		p, err := svc.RegisterPlayer(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, LogMsgRegisterFailed, err, "username", req.Username)
			return
		}

		logger.FromContext(r.Context()).Info("Player registered", "player_id", p.ID)
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleGetProfile returns the caller's profile
// @Summary Get profile
// @Tags player
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} player.Profile
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/player [get]
func HandleGetProfile(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, LogMsgGetProfileFailed, err, "player_id", playerID)
			return
		}

		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleGetStats returns the caller's cached passive aggregate
// @Summary Get player stats
// @Tags player
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} domain.PassiveAggregate
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/player/stats [get]
func HandleGetStats(svc passive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		stats, err := svc.GetStats(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, LogMsgGetStatsFailed, err, "player_id", playerID)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleRecalculateStats rebuilds the caller's passive aggregate synchronously
// @Summary Recalculate player stats
// @Tags player
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} domain.PassiveAggregate
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/player/stats/recalculate [post]
func HandleRecalculateStats(svc passive.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		stats, err := svc.Recalculate(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, LogMsgRecalculateFailed, err, "player_id", playerID)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
