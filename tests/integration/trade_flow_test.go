package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestTradeFlow_Lifecycle walks a trade through its full lifecycle:
// create, list, update, and a forbidden delete by another user.
func TestTradeFlow_Lifecycle(t *testing.T) {
	app := setupApp(t)

	aliceToken, aliceID := app.registerUser(t, "alice", "password123")
	bobToken, _ := app.registerUser(t, "bob", "password123")

	// Create a trade as alice
	rec := app.request("POST", "/trades",
		`{"symbol":"AAPL","quantity":10,"price":150.5,"trade_type":"buy"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)["trade"].(map[string]interface{})
	tradeID := uint(created["id"].(float64))
	if tradeID == 0 {
		t.Fatal("expected generated trade ID")
	}
	if created["symbol"] != "AAPL" || created["quantity"].(float64) != 10 ||
		created["price"].(float64) != 150.5 || created["trade_type"] != "buy" {
		t.Errorf("trade fields do not match input: %v", created)
	}
	if uint(created["user_id"].(float64)) != aliceID {
		t.Errorf("expected owner %d, got %v", aliceID, created["user_id"])
	}
	createdAt := created["created_at"].(string)

	// Alice's listing contains exactly that trade
	rec = app.request("GET", "/trades", "", aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list trades failed: %d", rec.Code)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected exactly 1 trade for alice, got %d", len(data))
	}
	if uint(data[0].(map[string]interface{})["id"].(float64)) != tradeID {
		t.Errorf("listing does not contain the created trade")
	}

	// Bob's listing never includes it
	rec = app.request("GET", "/trades", "", bobToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list trades failed for bob: %d", rec.Code)
	}
	if bobData := parseJSON(t, rec)["data"].([]interface{}); len(bobData) != 0 {
		t.Errorf("expected no trades for bob, got %d", len(bobData))
	}

	// Update the quantity wholesale; created_at stays, updated_at moves
	time.Sleep(10 * time.Millisecond)
	rec = app.request("PUT", fmt.Sprintf("/trades/%d", tradeID),
		`{"symbol":"AAPL","quantity":20,"price":150.5,"trade_type":"buy"}`, aliceToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("update trade failed: %d %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["trade"].(map[string]interface{})
	if updated["quantity"].(float64) != 20 {
		t.Errorf("expected quantity 20, got %v", updated["quantity"])
	}
	if updated["created_at"].(string) != createdAt {
		t.Errorf("created_at changed on update: %v -> %v", createdAt, updated["created_at"])
	}
	if updated["updated_at"].(string) == createdAt {
		t.Error("expected updated_at to advance on update")
	}

	// Bob cannot delete alice's trade
	rec = app.request("DELETE", fmt.Sprintf("/trades/%d", tradeID), "", bobToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for bob, got %d: %s", rec.Code, rec.Body.String())
	}

	// Alice can
	rec = app.request("DELETE", fmt.Sprintf("/trades/%d", tradeID), "", aliceToken)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	// And it is gone
	rec = app.request("GET", fmt.Sprintf("/trades/%d", tradeID), "", aliceToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestTradeFlow_OwnershipOnSingleTrade(t *testing.T) {
	app := setupApp(t)

	aliceToken, _ := app.registerUser(t, "alice", "password123")
	bobToken, _ := app.registerUser(t, "bob", "password123")

	rec := app.request("POST", "/trades",
		`{"symbol":"TSLA","quantity":5,"price":220.75,"trade_type":"sell"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d", rec.Code)
	}
	tradeID := uint(parseJSON(t, rec)["trade"].(map[string]interface{})["id"].(float64))

	// Bob reading, updating, or deleting alice's trade is forbidden
	paths := fmt.Sprintf("/trades/%d", tradeID)
	if rec := app.request("GET", paths, "", bobToken); rec.Code != http.StatusForbidden {
		t.Errorf("GET: expected 403 for bob, got %d", rec.Code)
	}
	if rec := app.request("PATCH", paths,
		`{"symbol":"TSLA","quantity":1,"price":1,"trade_type":"buy"}`, bobToken); rec.Code != http.StatusForbidden {
		t.Errorf("PATCH: expected 403 for bob, got %d", rec.Code)
	}
	if rec := app.request("DELETE", paths, "", bobToken); rec.Code != http.StatusForbidden {
		t.Errorf("DELETE: expected 403 for bob, got %d", rec.Code)
	}
}

func TestTradeFlow_ValidationErrors(t *testing.T) {
	app := setupApp(t)

	token, _ := app.registerUser(t, "alice", "password123")

	cases := []struct {
		name string
		body string
	}{
		{"missing_symbol", `{"quantity":10,"price":150.5,"trade_type":"buy"}`},
		{"missing_quantity", `{"symbol":"AAPL","price":150.5,"trade_type":"buy"}`},
		{"bad_trade_type", `{"symbol":"AAPL","quantity":10,"price":150.5,"trade_type":"hold"}`},
		{"mistyped_price", `{"symbol":"AAPL","quantity":10,"price":"expensive","trade_type":"buy"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/trades", tc.body, token)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestTradeFlow_AuditTrail(t *testing.T) {
	app := setupApp(t)

	token, aliceID := app.registerUser(t, "alice", "password123")

	rec := app.request("POST", "/trades",
		`{"symbol":"AAPL","quantity":10,"price":150.5,"trade_type":"buy"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create trade failed: %d", rec.Code)
	}

	var count int64
	app.DB.Table("audit_logs").Where("user_id = ? AND action = ?", aliceID, "CREATE_TRADE").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 CREATE_TRADE audit row, got %d", count)
	}
}
