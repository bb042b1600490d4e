package integration

import (
	"net/http"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["status"] != "ok" {
		t.Errorf("expected status ok, got %v", result["status"])
	}
}

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	app := setupApp(t)

	token, userID := app.registerUser(t, "alice", "password123")
	if token == "" {
		t.Fatal("expected non-empty token from registration")
	}
	if userID == 0 {
		t.Fatal("expected non-zero user ID")
	}

	loginToken := app.loginUser(t, "alice", "password123")
	if loginToken == "" {
		t.Fatal("expected non-empty token from login")
	}

	rec := app.request("GET", "/users/me", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["username"] != "alice" {
		t.Errorf("expected username alice, got %v", user["username"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password leaked into profile response")
	}
}

func TestAuthFlow_RegisterDuplicateUsername(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "alice", "password123")

	rec := app.request("POST", "/users", `{"username":"alice","password":"otherpass1"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "USERNAME_TAKEN" {
		t.Errorf("expected USERNAME_TAKEN, got %v", errObj["code"])
	}
}

func TestAuthFlow_LoginFailuresIndistinguishable(t *testing.T) {
	app := setupApp(t)

	app.registerUser(t, "alice", "password123")

	// Wrong password for an existing user
	rec := app.request("POST", "/users/login", `{"username":"alice","password":"wrongpass"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	wrongPass := parseJSON(t, rec)["error"].(map[string]interface{})["code"]

	// Unknown user entirely
	rec = app.request("POST", "/users/login", `{"username":"nobody","password":"password123"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	noUser := parseJSON(t, rec)["error"].(map[string]interface{})["code"]

	if wrongPass != noUser {
		t.Errorf("login failure modes are distinguishable: %v vs %v", wrongPass, noUser)
	}
}

func TestAuthFlow_ProtectedRouteRequiresToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/trades", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}
