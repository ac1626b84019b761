//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type playerResponse struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
}

type openBoxResponse struct {
	Item struct {
		ID       string `json:"id"`
		WeaponID int    `json:"weapon_id"`
	} `json:"item"`
	Balance string `json:"balance"`
}

type listingResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func registerPlayer(t *testing.T, prefix string) string {
	t.Helper()
	username := fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano()%1_000_000_000)
	resp, body := makeRequest(t, "POST", "/api/v1/players", map[string]string{"username": username})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, resp.StatusCode, body)
	}
	var p playerResponse
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("Failed to unmarshal player: %v", err)
	}
	return p.ID
}

func TestBoxesAndWeaponsAreListed(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/weapons", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var weapons []map[string]any
	if err := json.Unmarshal(body, &weapons); err != nil || len(weapons) == 0 {
		t.Fatalf("Expected a non-empty weapon catalog, err=%v", err)
	}

	playerID := registerPlayer(t, "boxes")
	resp, body = makePlayerRequest(t, playerID, "GET", "/api/v1/boxes/1/odds", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("odds: expected status 200, got %d: %s", resp.StatusCode, body)
	}
}

func TestOpenListCancelFlow(t *testing.T) {
	playerID := registerPlayer(t, "flow")

	resp, body := makePlayerRequest(t, playerID, "POST", "/api/v1/boxes/1/open", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("open: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var opened openBoxResponse
	if err := json.Unmarshal(body, &opened); err != nil {
		t.Fatalf("Failed to unmarshal open result: %v", err)
	}

	resp, body = makePlayerRequest(t, playerID, "POST", "/api/v1/market/listings", map[string]any{
		"item_id": opened.Item.ID,
		"price":   "999.5",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("list: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		t.Fatalf("Failed to unmarshal listing: %v", err)
	}

	// A listed item cannot be sold to the system
	resp, _ = makePlayerRequest(t, playerID, "POST", "/api/v1/inventory/"+opened.Item.ID+"/sell", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("sell while listed: expected 409, got %d", resp.StatusCode)
	}

	resp, body = makePlayerRequest(t, playerID, "POST", "/api/v1/market/listings/"+listing.ID+"/cancel", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d: %s", resp.StatusCode, body)
	}

	resp, _ = makePlayerRequest(t, playerID, "POST", "/api/v1/market/listings/"+listing.ID+"/buy", nil)
	if resp.StatusCode != http.StatusNotFound && resp.StatusCode != http.StatusConflict && resp.StatusCode != http.StatusBadRequest {
		t.Errorf("buy cancelled listing: expected a rejection, got %d", resp.StatusCode)
	}
}

func TestMarketPurchaseBetweenPlayers(t *testing.T) {
	seller := registerPlayer(t, "seller")
	buyer := registerPlayer(t, "buyer")

	resp, body := makePlayerRequest(t, seller, "POST", "/api/v1/boxes/1/open", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("open: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var opened openBoxResponse
	if err := json.Unmarshal(body, &opened); err != nil {
		t.Fatalf("Failed to unmarshal open result: %v", err)
	}

	resp, body = makePlayerRequest(t, seller, "POST", "/api/v1/market/listings", map[string]any{
		"item_id": opened.Item.ID,
		"price":   "1.25",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("list: expected 201, got %d: %s", resp.StatusCode, body)
	}
	var listing listingResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		t.Fatalf("Failed to unmarshal listing: %v", err)
	}

	resp, _ = makePlayerRequest(t, seller, "POST", "/api/v1/market/listings/"+listing.ID+"/buy", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("self purchase: expected 400, got %d", resp.StatusCode)
	}

	resp, body = makePlayerRequest(t, buyer, "POST", "/api/v1/market/listings/"+listing.ID+"/buy", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("buy: expected 200, got %d: %s", resp.StatusCode, body)
	}

	resp, body = makePlayerRequest(t, buyer, "GET", "/api/v1/inventory", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("inventory: expected 200, got %d", resp.StatusCode)
	}
	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("Failed to unmarshal inventory: %v", err)
	}
	found := false
	for _, it := range items {
		if it.ID == opened.Item.ID {
			found = true
		}
	}
	if !found {
		t.Error("Expected the bought item in the buyer's inventory")
	}
}
