package integration

import (
	"net/http"
	"testing"
)

func TestAuthFlow_RegisterLoginProfileRefresh(t *testing.T) {
	app := setupApp(t)

	// Step 1: Register
	accessToken, refreshToken, userID := app.registerUser(t, "auth@test.com", "password123")
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens from registration")
	}
	if userID == "" {
		t.Fatal("expected non-empty user ID from registration")
	}

	// Step 2: Profile with the access token
	rec := app.request("GET", "/api/v1/profile", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["email"] != "auth@test.com" {
		t.Errorf("expected email auth@test.com, got %v", user["email"])
	}

	// Step 3: Login again
	loginAccess, _ := app.loginUser(t, "auth@test.com", "password123")
	if loginAccess == "" {
		t.Fatal("expected non-empty access token from login")
	}

	// Step 4: Login records last_login_at on the profile
	rec = app.request("GET", "/api/v1/profile", "", loginAccess)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	if result["last_login_at"] == nil {
		t.Error("expected last_login_at to be set after login")
	}
}

func TestAuthFlow_RefreshRotation(t *testing.T) {
	app := setupApp(t)
	_, refreshToken, _ := app.registerUser(t, "refresh@test.com", "password123")

	// A valid refresh token yields a fresh working pair
	rec := app.request("POST", "/api/v1/auth/refresh",
		`{"refresh_token":"`+refreshToken+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	newAccess := result["access_token"].(string)

	rec = app.request("GET", "/api/v1/profile", "", newAccess)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected refreshed access token to work, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthFlow_TokenMisuse(t *testing.T) {
	app := setupApp(t)
	accessToken, refreshToken, _ := app.registerUser(t, "misuse@test.com", "password123")

	t.Run("refresh token rejected as access token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/profile", "", refreshToken)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("access token rejected for refresh", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/refresh",
			`{"refresh_token":"`+accessToken+`"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage refresh token rejected", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/refresh",
			`{"refresh_token":"not-a-jwt"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("missing authorization header rejected", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/profile", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAuthFlow_DuplicateEmail(t *testing.T) {
	app := setupApp(t)
	app.registerUser(t, "dup@test.com", "password123")

	rec := app.request("POST", "/api/v1/auth/register",
		`{"email":"dup@test.com","password":"password123"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_EMAIL")
}
