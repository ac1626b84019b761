package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/LootForge_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"bare validation", fmt.Errorf("%w: min_price above max_price", domain.ErrValidation), http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"price too low", domain.ErrPriceTooLow, http.StatusBadRequest, ErrMsgPriceTooLowError},
		{"self purchase maps to 400 despite conflict class", domain.ErrSelfPurchase, http.StatusBadRequest, ErrMsgSelfPurchaseError},
		{"wrapped not found", fmt.Errorf("failed to load listing: %w", domain.ErrListingNotFound), http.StatusNotFound, ErrMsgListingNotFoundError},
		{"bare not found", domain.ErrNotFound, http.StatusNotFound, ErrMsgResourceNotFoundErr},
		{"listing resolved", domain.ErrListingNotActive, http.StatusConflict, ErrMsgListingNotActiveError},
		{"bare conflict", domain.ErrConflict, http.StatusConflict, ErrMsgConflictError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError},
		{"internal", domain.Internal("op", errors.New("connection reset")), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"database error", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unclassified", errors.New("surprise"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON_UnencodablePayload(t *testing.T) {
	rec := httptest.NewRecorder()

	respondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequirePlayerID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		rec := httptest.NewRecorder()
		id, ok := RequirePlayerID(rec, newRequest(http.MethodGet, "/", "", " "+testPlayerID+" ", nil))
		assert.True(t, ok)
		assert.Equal(t, testPlayerID, id)
	})

	t.Run("absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		_, ok := RequirePlayerID(rec, newRequest(http.MethodGet, "/", "", "", nil))
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
