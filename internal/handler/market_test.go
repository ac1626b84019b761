package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/market"
	"github.com/osse101/LootForge_Go/mocks"
)

const (
	testItemID    = "22222222-2222-2222-2222-222222222222"
	testListingID = "33333333-3333-3333-3333-333333333333"
)

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:       testListingID,
		SellerID: testPlayerID,
		ItemID:   testItemID,
		Item:     domain.ItemSnapshot{WeaponID: 7, WeaponName: "Viper", Rarity: domain.RarityRare},
		Price:    decimal.RequireFromString("12.5"),
		Status:   domain.ListingActive,
	}
}

func TestHandleCreateListing(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockMarketService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success",
			body: `{"item_id":"` + testItemID + `","price":"12.5"}`,
			setupMock: func(m *mocks.MockMarketService) {
				m.On("ListItem", mock.Anything, testPlayerID, testItemID, mock.MatchedBy(func(p decimal.Decimal) bool {
					return p.Equal(decimal.RequireFromString("12.5"))
				})).Return(testListing(), nil)
			},
			expectedStatus: http.StatusCreated,
			verifyBody: func(t *testing.T, body string) {
				var listing domain.Listing
				require.NoError(t, json.Unmarshal([]byte(body), &listing))
				assert.Equal(t, testListingID, listing.ID)
				assert.Equal(t, domain.ListingActive, listing.Status)
			},
		},
		{
			name: "Numeric price accepted",
			body: `{"item_id":"` + testItemID + `","price":0.0001}`,
			setupMock: func(m *mocks.MockMarketService) {
				m.On("ListItem", mock.Anything, testPlayerID, testItemID, mock.Anything).Return(testListing(), nil)
			},
			expectedStatus: http.StatusCreated,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Zero price",
			body:           `{"item_id":"` + testItemID + `","price":"0"}`,
			setupMock:      func(m *mocks.MockMarketService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"price"`)
			},
		},
		{
			name:           "Too many decimals",
			body:           `{"item_id":"` + testItemID + `","price":"1.00001"}`,
			setupMock:      func(m *mocks.MockMarketService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "decimal places")
			},
		},
		{
			name:           "Malformed item id",
			body:           `{"item_id":"nope","price":"5"}`,
			setupMock:      func(m *mocks.MockMarketService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Unknown field",
			body:           `{"item_id":"` + testItemID + `","price":"5","seller":"x"}`,
			setupMock:      func(m *mocks.MockMarketService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRequest)
			},
		},
		{
			name: "Already listed",
			body: `{"item_id":"` + testItemID + `","price":"5"}`,
			setupMock: func(m *mocks.MockMarketService) {
				m.On("ListItem", mock.Anything, testPlayerID, testItemID, mock.Anything).
					Return(nil, fmt.Errorf("%w: item %s", domain.ErrItemListed, testItemID))
			},
			expectedStatus: http.StatusConflict,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgItemListedError)
			},
		},
		{
			name: "Not owned",
			body: `{"item_id":"` + testItemID + `","price":"5"}`,
			setupMock: func(m *mocks.MockMarketService) {
				m.On("ListItem", mock.Anything, testPlayerID, testItemID, mock.Anything).Return(nil, domain.ErrItemNotOwned)
			},
			expectedStatus: http.StatusConflict,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgItemNotOwnedError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockMarketService(t)
			tt.setupMock(mockSvc)

			rec := serve(HandleCreateListing(mockSvc), newRequest(http.MethodPost, "/market/listings", tt.body, testPlayerID, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHandleBuyListing(t *testing.T) {
	const buyerID = "44444444-4444-4444-4444-444444444444"

	tests := []struct {
		name           string
		buyer          string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"Success", buyerID, nil, http.StatusOK, ""},
		{"Self purchase is a validation failure", testPlayerID, fmt.Errorf("%w: listing %s", domain.ErrSelfPurchase, testListingID), http.StatusBadRequest, ErrMsgSelfPurchaseError},
		{"Lost the race", buyerID, fmt.Errorf("%w: listing %s is sold", domain.ErrListingNotActive, testListingID), http.StatusConflict, ErrMsgListingNotActiveError},
		{"Cannot afford", buyerID, fmt.Errorf("%w: balance 1, price 12.5", domain.ErrInsufficientFunds), http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError},
		{"Unknown listing", buyerID, domain.ErrListingNotFound, http.StatusNotFound, ErrMsgListingNotFoundError},
		{"Aborted transaction", buyerID, domain.Internal("failed to commit transaction", assert.AnError), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockMarketService(t)
			if tt.err != nil {
				mockSvc.On("BuyListing", mock.Anything, tt.buyer, testListingID).Return(nil, tt.err)
			} else {
				mockSvc.On("BuyListing", mock.Anything, tt.buyer, testListingID).Return(&domain.PurchaseReceipt{
					ListingID: testListingID,
					BuyerID:   tt.buyer,
					Price:     decimal.RequireFromString("12.5"),
				}, nil)
			}

			req := newRequest(http.MethodPost, "/market/listings/"+testListingID+"/buy", "", tt.buyer, map[string]string{"id": testListingID})
			rec := serve(HandleBuyListing(mockSvc), req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedMsg)
			}
		})
	}
}

func TestHandleCancelListing(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		cancelled := testListing()
		cancelled.Status = domain.ListingCancelled
		mockSvc.On("CancelListing", mock.Anything, testPlayerID, testListingID).Return(cancelled, nil)

		req := newRequest(http.MethodPost, "/market/listings/x/cancel", "", testPlayerID, map[string]string{"id": testListingID})
		rec := serve(HandleCancelListing(mockSvc), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	})

	t.Run("Not the seller", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("CancelListing", mock.Anything, testPlayerID, testListingID).Return(nil, domain.ErrNotSeller)

		req := newRequest(http.MethodPost, "/market/listings/x/cancel", "", testPlayerID, map[string]string{"id": testListingID})
		rec := serve(HandleCancelListing(mockSvc), req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgNotSellerError)
	})
}

func TestHandleListListings(t *testing.T) {
	t.Run("parses every filter", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("Listings", mock.Anything, mock.MatchedBy(func(f domain.ListingFilter) bool {
			return f.WeaponID == 7 &&
				f.Rarity != nil && *f.Rarity == domain.RarityEpic &&
				f.Grade != nil && *f.Grade == domain.Grade("S") &&
				f.Conta != nil && *f.Conta &&
				f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(1)) &&
				f.MaxPrice != nil && f.MaxPrice.Equal(decimal.NewFromInt(50)) &&
				f.Search == "vip" && f.Limit == 10 && f.Offset == 20
		})).Return([]domain.Listing{*testListing()}, nil)

		target := "/market/listings?weapon_id=7&rarity=epic&grade=S&conta=true&min_price=1&max_price=50&search=vip&limit=10&offset=20"
		rec := serve(HandleListListings(mockSvc), newRequest(http.MethodGet, target, "", "", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var listings []domain.Listing
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
		assert.Len(t, listings, 1)
	})

	for _, q := range []string{"rarity=shiny", "grade=Z", "conta=maybe", "min_price=cheap", "limit=-1", "weapon_id=x"} {
		t.Run("rejects "+q, func(t *testing.T) {
			mockSvc := mocks.NewMockMarketService(t)

			rec := serve(HandleListListings(mockSvc), newRequest(http.MethodGet, "/market/listings?"+q, "", "", nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("empty result is an empty array", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("Listings", mock.Anything, domain.ListingFilter{}).Return([]domain.Listing{}, nil)

		rec := serve(HandleListListings(mockSvc), newRequest(http.MethodGet, "/market/listings", "", "", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestHandleMarketReads(t *testing.T) {
	params := map[string]string{"id": "7"}

	t.Run("lowest prices", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("LowestPrices", mock.Anything, 7).Return([]domain.Listing{*testListing()}, nil)

		rec := serve(HandleLowestPrices(mockSvc), newRequest(http.MethodGet, "/market/weapons/7/lowest", "", "", params))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("history uses default limit", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("History", mock.Anything, 7, market.DefaultHistoryLimit).Return([]domain.HistoryRecord{}, nil)

		rec := serve(HandleMarketHistory(mockSvc), newRequest(http.MethodGet, "/market/weapons/7/history", "", "", params))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stats for unknown weapon", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("WeaponStats", mock.Anything, 7).Return(nil, domain.ErrWeaponNotFound)

		rec := serve(HandleMarketStats(mockSvc), newRequest(http.MethodGet, "/market/weapons/7/stats", "", "", params))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgWeaponNotFoundError)
	})

	t.Run("my listings", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("MyListings", mock.Anything, testPlayerID).Return([]domain.Listing{*testListing()}, nil)

		rec := serve(HandleMyListings(mockSvc), newRequest(http.MethodGet, "/market/mine", "", testPlayerID, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("single listing", func(t *testing.T) {
		mockSvc := mocks.NewMockMarketService(t)
		mockSvc.On("Listing", mock.Anything, testListingID).Return(testListing(), nil)

		rec := serve(HandleGetListing(mockSvc), newRequest(http.MethodGet, "/market/listings/x", "", "", map[string]string{"id": testListingID}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), testListingID)
	})
}
