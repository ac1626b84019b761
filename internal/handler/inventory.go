package handler

import (
	"net/http"

	"github.com/osse101/LootForge_Go/internal/economy"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/player"
)

// HandleGetInventory lists the caller's items
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {array} player.InventoryEntry
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory [get]
func HandleGetInventory(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		items, err := svc.GetInventory(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, LogMsgGetInventoryFailed, err, "player_id", playerID)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleSellItem sells an owned item to the system
// @Summary Sell item
// @Description Sell an unlisted item for its final price plus the caller's sell bonus
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} domain.SaleResult
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/inventory/{id}/sell [post]
func HandleSellItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}
		itemID, ok := PathString(w, r, PathParamID)
		if !ok {
			return
		}

		result, err := svc.SellItem(r.Context(), playerID, itemID)
		if err != nil {
			respondServiceError(w, r, LogMsgSellItemFailed, err, "player_id", playerID, "item_id", itemID)
			return
		}

		logger.FromContext(r.Context()).Info("Item sold", "player_id", playerID, "item_id", itemID, "price", result.Price)
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleUseItem consumes a border item and unlocks its border
// @Summary Use item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} domain.UseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventory/{id}/use [post]
func HandleUseItem(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}
		itemID, ok := PathString(w, r, PathParamID)
		if !ok {
			return
		}

		result, err := svc.UseItem(r.Context(), playerID, itemID)
		if err != nil {
			respondServiceError(w, r, LogMsgUseItemFailed, err, "player_id", playerID, "item_id", itemID)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
