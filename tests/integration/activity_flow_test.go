package integration

import (
	"net/http"
	"testing"
)

func TestActivityFlow_FeedRecordsMutations(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "activity@test.com")

	rec := app.request("POST", "/api/v1/buckets",
		`{"period":"2025-06","title":"Needs","percentage":50}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bucket setup failed: %d %s", rec.Code, rec.Body.String())
	}
	bucketID := parseJSON(t, rec)["bucket"].(map[string]interface{})["id"].(string)

	rec = app.request("PUT", "/api/v1/buckets/"+bucketID, `{"title":"Essentials"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("bucket update failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/activity", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	entries := parseJSON(t, rec)["activity"].([]interface{})
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 activity entries, got %d", len(entries))
	}

	// Newest first: the update precedes the creation
	newest := entries[0].(map[string]interface{})
	if newest["action"] != "updated" {
		t.Errorf("expected newest action 'updated', got %v", newest["action"])
	}
	if newest["entity_kind"] != "bucket" {
		t.Errorf("expected entity_kind 'bucket', got %v", newest["entity_kind"])
	}
	desc, _ := newest["description"].(string)
	if desc == "" {
		t.Error("expected a human-readable description")
	}
}

func TestActivityFlow_ScopedToTeam(t *testing.T) {
	app := setupApp(t)
	tokenA := app.registerMember(t, "act-a@test.com")
	tokenB := app.registerMember(t, "act-b@test.com")

	rec := app.request("POST", "/api/v1/buckets",
		`{"period":"2025-06","title":"Needs","percentage":50}`, tokenA)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bucket setup failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/activity", "", tokenB)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	entries, _ := result["activity"].([]interface{})
	for _, e := range entries {
		entry := e.(map[string]interface{})
		if entry["entity_kind"] == "bucket" {
			t.Error("expected team B's feed to exclude team A's bucket activity")
		}
	}
}
