package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode before writing the header
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgConflictError       = "That action conflicts with the current state. Please refresh and retry."

	// Player and inventory messages
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgPlayerExistsError   = "That username is taken"
	ErrMsgInvalidPlayerError  = "Invalid player id"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgItemNotOwnedError   = "You don't own that item"
	ErrMsgItemListedError     = "That item is listed on the market"
	ErrMsgItemNotUsableError  = "That item cannot be used"
	ErrMsgWeaponNotFoundError = "Weapon not found"
	ErrMsgBoxNotFoundError    = "Box not found"

	// Economy messages
	ErrMsgNotEnoughMoneyError = "Not enough money"

	// Market messages
	ErrMsgListingNotFoundError  = "Listing not found"
	ErrMsgListingNotActiveError = "That listing is no longer available"
	ErrMsgSelfPurchaseError     = "You cannot buy your own listing"
	ErrMsgNotSellerError        = "Only the seller can cancel this listing"
	ErrMsgPriceTooLowError      = "Price must be at least 0.0001"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Specific errors are checked before their taxonomy class so the message stays precise.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// Internal failures never leak details
	case errors.Is(err, domain.ErrInternal):
		return http.StatusInternalServerError, ErrMsgGenericServerError

	// Validation
	case errors.Is(err, domain.ErrSelfPurchase):
		return http.StatusBadRequest, ErrMsgSelfPurchaseError
	case errors.Is(err, domain.ErrPriceTooLow):
		return http.StatusBadRequest, ErrMsgPriceTooLowError
	case errors.Is(err, domain.ErrItemNotUsable):
		return http.StatusBadRequest, ErrMsgItemNotUsableError
	case errors.Is(err, domain.ErrInvalidPlayerID):
		return http.StatusBadRequest, ErrMsgInvalidPlayerError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, ErrMsgInvalidRequestError

	// Not found
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrWeaponNotFound):
		return http.StatusNotFound, ErrMsgWeaponNotFoundError
	case errors.Is(err, domain.ErrBoxNotFound):
		return http.StatusNotFound, ErrMsgBoxNotFoundError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr

	// Conflict
	case errors.Is(err, domain.ErrPlayerExists):
		return http.StatusConflict, ErrMsgPlayerExistsError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusConflict, ErrMsgItemNotOwnedError
	case errors.Is(err, domain.ErrItemListed):
		return http.StatusConflict, ErrMsgItemListedError
	case errors.Is(err, domain.ErrListingNotActive):
		return http.StatusConflict, ErrMsgListingNotActiveError
	case errors.Is(err, domain.ErrNotSeller):
		return http.StatusConflict, ErrMsgNotSellerError
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, ErrMsgConflictError

	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped response.
// Client errors log at warn, server errors at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, logMsg string, err error, keyvals ...interface{}) {
	status, userMsg := mapServiceErrorToUserMessage(err)
	attrs := append([]interface{}{"error", err, "status", status}, keyvals...)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(logMsg, attrs...)
	} else {
		log.Warn(logMsg, attrs...)
	}
	respondError(w, status, userMsg)
}
