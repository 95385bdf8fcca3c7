package integration

import (
	"net/http"
	"testing"
)

func TestTeamFlow_CreateAndManage(t *testing.T) {
	app := setupApp(t)
	token, _, userID := app.registerUser(t, "owner@test.com", "password123")

	// Step 1: budgeting routes are closed until the user has a team
	rec := app.request("GET", "/api/v1/plans", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 before joining a team, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 2: create a team
	teamID := app.createTeam(t, token, "Smith Household")
	if teamID == "" {
		t.Fatal("expected non-empty team ID")
	}

	// Step 3: the creator becomes owner and member
	rec = app.request("GET", "/api/v1/teams/me", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	team := parseJSON(t, rec)["team"].(map[string]interface{})
	if team["owner_id"] != userID {
		t.Errorf("expected owner_id %s, got %v", userID, team["owner_id"])
	}
	members := team["members"].([]interface{})
	if len(members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(members))
	}

	// Step 4: budgeting routes open up
	rec = app.request("GET", "/api/v1/plans", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after joining a team, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 5: owner can rename the team
	rec = app.request("PUT", "/api/v1/teams/me", `{"name":"Renamed Household"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	team = parseJSON(t, rec)["team"].(map[string]interface{})
	if team["name"] != "Renamed Household" {
		t.Errorf("expected renamed team, got %v", team["name"])
	}

	// Step 6: a second team for the same user is rejected
	rec = app.request("POST", "/api/v1/teams", `{"name":"Another"}`, token)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "ALREADY_IN_TEAM")
}

func TestTeamFlow_CrossTeamIsolation(t *testing.T) {
	app := setupApp(t)
	tokenA := app.registerMember(t, "alice@test.com")
	tokenB := app.registerMember(t, "bob@test.com")

	// Team A creates a bucket
	rec := app.request("POST", "/api/v1/buckets",
		`{"period":"2025-06","title":"Needs","percentage":50}`, tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	bucket := parseJSON(t, rec)["bucket"].(map[string]interface{})
	bucketID := bucket["id"].(string)

	// Team B cannot see it; the response reads the same as a missing bucket
	rec = app.request("GET", "/api/v1/buckets/"+bucketID, "", tokenB)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign bucket, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "BUCKET_NOT_FOUND")

	// Team B cannot modify it either
	rec = app.request("PUT", "/api/v1/buckets/"+bucketID, `{"title":"Stolen"}`, tokenB)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on foreign update, got %d: %s", rec.Code, rec.Body.String())
	}

	// Team B's plan list stays empty
	rec = app.request("GET", "/api/v1/plans", "", tokenB)
	plans := parseJSON(t, rec)["plans"].([]interface{})
	if len(plans) != 0 {
		t.Errorf("expected no plans for team B, got %d", len(plans))
	}
}
