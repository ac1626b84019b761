package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/market"
)

// CreateListingRequest is the body of a new market listing
type CreateListingRequest struct {
	ItemID string          `json:"item_id" validate:"required,uuid"`
	Price  decimal.Decimal `json:"price" validate:"gt=0,currency"`
}

// HandleListListings returns active listings matching the query filter
// @Summary Browse market
// @Tags market
// @Produce json
// @Param weapon_id query int false "Weapon ID"
// @Param rarity query string false "Rarity name"
// @Param grade query string false "Grade letter"
// @Param conta query bool false "Conta only"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param search query string false "Weapon name contains"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/market/listings [get]
func HandleListListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseListingFilter(w, r)
		if !ok {
			return
		}

		listings, err := svc.Listings(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, LogMsgMarketQueryFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleGetListing returns one listing in any state
// @Summary Get listing
// @Tags market
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} domain.Listing
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/market/listings/{id} [get]
func HandleGetListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID, ok := PathString(w, r, PathParamID)
		if !ok {
			return
		}

		listing, err := svc.Listing(r.Context(), listingID)
		if err != nil {
			respondServiceError(w, r, LogMsgMarketQueryFailed, err, "listing_id", listingID)
			return
		}

		respondJSON(w, http.StatusOK, listing)
	}
}

// HandleCreateListing lists an owned item for sale
// @Summary List item
// @Tags market
// @Accept json
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Param request body CreateListingRequest true "Listing"
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/market/listings [post]
func HandleCreateListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		var req CreateListingRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
			return
		}

		listing, err := svc.ListItem(r.Context(), playerID, req.ItemID, req.Price)
		if err != nil {
			respondServiceError(w, r, LogMsgCreateListingFailed, err, "player_id", playerID, "item_id", req.ItemID)
			return
		}

		logger.FromContext(r.Context()).Info("Listing created", "listing_id", listing.ID, "price", listing.Price)
		respondJSON(w, http.StatusCreated, listing)
	}
}

// HandleBuyListing buys an active listing atomically
// @Summary Buy listing
// @Tags market
// @Produce json
// @Param id path string true "Listing ID"
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} domain.PurchaseReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/market/listings/{id}/buy [post]
func HandleBuyListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}
		listingID, ok := PathString(w, r, PathParamID)
		if !ok {
			return
		}

		receipt, err := svc.BuyListing(r.Context(), playerID, listingID)
		if err != nil {
			respondServiceError(w, r, LogMsgBuyListingFailed, err, "player_id", playerID, "listing_id", listingID)
			return
		}

		logger.FromContext(r.Context()).Info("Listing bought", "listing_id", listingID, "buyer_id", playerID, "price", receipt.Price)
		respondJSON(w, http.StatusOK, receipt)
	}
}

// HandleCancelListing withdraws the caller's active listing
// @Summary Cancel listing
// @Tags market
// @Produce json
// @Param id path string true "Listing ID"
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {object} domain.Listing
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/market/listings/{id}/cancel [post]
func HandleCancelListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}
		listingID, ok := PathString(w, r, PathParamID)
		if !ok {
			return
		}

		listing, err := svc.CancelListing(r.Context(), playerID, listingID)
		if err != nil {
			respondServiceError(w, r, LogMsgCancelFailed, err, "player_id", playerID, "listing_id", listingID)
			return
		}

		respondJSON(w, http.StatusOK, listing)
	}
}

// HandleMyListings returns every listing the caller has created
// @Summary My listings
// @Tags market
// @Produce json
// @Param X-Player-ID header string true "Player ID"
// @Success 200 {array} domain.Listing
// @Router /api/v1/market/mine [get]
func HandleMyListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := RequirePlayerID(w, r)
		if !ok {
			return
		}

		listings, err := svc.MyListings(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, LogMsgMarketQueryFailed, err, "player_id", playerID)
			return
		}

		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleLowestPrices returns the cheapest active listings of a weapon
// @Summary Lowest prices
// @Tags market
// @Produce json
// @Param id path int true "Weapon ID"
// @Success 200 {array} domain.Listing
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/market/weapons/{id}/lowest [get]
func HandleLowestPrices(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weaponID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}

		listings, err := svc.LowestPrices(r.Context(), weaponID)
		if err != nil {
			respondServiceError(w, r, LogMsgMarketQueryFailed, err, "weapon_id", weaponID)
			return
		}

		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleMarketHistory returns recent sales of a weapon
// @Summary Sale history
// @Tags market
// @Produce json
// @Param id path int true "Weapon ID"
// @Param limit query int false "Number of sales"
// @Success 200 {array} domain.HistoryRecord
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/market/weapons/{id}/history [get]
func HandleMarketHistory(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weaponID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}
		limit, ok := QueryInt(w, r, QueryParamLimit, market.DefaultHistoryLimit)
		if !ok {
			return
		}

		history, err := svc.History(r.Context(), weaponID, limit)
		if err != nil {
			respondServiceError(w, r, LogMsgMarketQueryFailed, err, "weapon_id", weaponID)
			return
		}

		respondJSON(w, http.StatusOK, history)
	}
}

// HandleMarketStats summarizes the market for a weapon
// @Summary Weapon market stats
// @Tags market
// @Produce json
// @Param id path int true "Weapon ID"
// @Success 200 {object} domain.WeaponMarketStats
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/market/weapons/{id}/stats [get]
func HandleMarketStats(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weaponID, ok := PathInt(w, r, PathParamID)
		if !ok {
			return
		}

		stats, err := svc.WeaponStats(r.Context(), weaponID)
		if err != nil {
			respondServiceError(w, r, LogMsgMarketQueryFailed, err, "weapon_id", weaponID)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}
