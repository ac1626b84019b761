package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// Parameters:
//   - r: The HTTP request containing the JSON body
//   - w: The HTTP response writer to send error responses
//   - req: Pointer to the request struct to decode into (must implement validation tags)
//   - actionName: Human-readable name for the action (e.g., "Create listing", "Register player")
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreateListingRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create listing"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RequirePlayerID returns the caller's player id from the gateway header.
// If ok is false, the HTTP response has already been written and the handler should return.
func RequirePlayerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	playerID := strings.TrimSpace(r.Header.Get(HeaderPlayerID))
	if playerID == "" {
		logger.FromContext(r.Context()).Warn("Request without player id", "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingPlayerID)
		return "", false
	}
	return playerID, true
}

// PathInt parses a positive integer URL parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func PathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || value <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return value, true
}

// PathString returns a non-empty URL parameter.
func PathString(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return "", false
	}
	return value, true
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	search := GetOptionalQueryParam(r, "search", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// QueryInt parses an optional integer query parameter, returning defaultValue when absent.
func QueryInt(w http.ResponseWriter, r *http.Request, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return value, true
}

// parseListingFilter reads the market filter from the query string
func parseListingFilter(w http.ResponseWriter, r *http.Request) (domain.ListingFilter, bool) {
	var filter domain.ListingFilter
	q := r.URL.Query()
	invalid := func(name string) (domain.ListingFilter, bool) {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, name))
		return domain.ListingFilter{}, false
	}

	var ok bool
	if filter.WeaponID, ok = QueryInt(w, r, QueryParamWeaponID, 0); !ok {
		return filter, false
	}
	if filter.Limit, ok = QueryInt(w, r, QueryParamLimit, 0); !ok {
		return filter, false
	}
	if filter.Offset, ok = QueryInt(w, r, QueryParamOffset, 0); !ok {
		return filter, false
	}

	if raw := q.Get(QueryParamRarity); raw != "" {
		rarity, err := domain.ParseRarity(raw)
		if err != nil {
			return invalid(QueryParamRarity)
		}
		filter.Rarity = &rarity
	}
	if raw := q.Get(QueryParamGrade); raw != "" {
		grade, err := domain.ParseGrade(raw)
		if err != nil {
			return invalid(QueryParamGrade)
		}
		filter.Grade = &grade
	}
	if raw := q.Get(QueryParamConta); raw != "" {
		conta, err := strconv.ParseBool(raw)
		if err != nil {
			return invalid(QueryParamConta)
		}
		filter.Conta = &conta
	}
	if raw := q.Get(QueryParamMinPrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return invalid(QueryParamMinPrice)
		}
		filter.MinPrice = &price
	}
	if raw := q.Get(QueryParamMaxPrice); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return invalid(QueryParamMaxPrice)
		}
		filter.MaxPrice = &price
	}
	filter.Search = strings.TrimSpace(q.Get(QueryParamSearch))

	return filter, true
}

// LogRequestFields is a helper to log common request fields in a structured way.
//
// Example usage:
//
//	LogRequestFields(log, "player_id", playerID, "listing_id", listingID)
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
