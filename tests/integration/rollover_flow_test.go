package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestRolloverFlow_CopiesStructureOnly(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "rollover@test.com")

	// Build a June plan with structure, income, and spending
	rec := app.request("POST", "/api/v1/buckets",
		`{"period":"2025-06","title":"Needs","percentage":60,"line_items":[{"title":"Rent","percentage":70},{"title":"Groceries","percentage":30}]}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bucket setup failed: %d %s", rec.Code, rec.Body.String())
	}
	juneBucket := parseJSON(t, rec)["bucket"].(map[string]interface{})
	itemID := juneBucket["line_items"].([]interface{})[0].(map[string]interface{})["id"].(string)

	rec = app.request("POST", "/api/v1/buckets",
		`{"period":"2025-06","title":"Savings","percentage":40}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bucket setup failed: %d %s", rec.Code, rec.Body.String())
	}

	app.request("POST", "/api/v1/income-sources",
		`{"name":"Salary","amount":3000,"month_year":"2025-06-01T00:00:00Z"}`, token)
	app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"line_item_id":%q,"date":"2025-06-10T00:00:00Z","amount":900,"description":"Rent"}`, itemID), token)

	// Roll into July
	rec = app.request("POST", "/api/v1/plans/rollover", `{"period":"2025-07"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	julyPlan := parseJSON(t, rec)["plan"].(map[string]interface{})
	if julyPlan["period"] != "2025-07" {
		t.Errorf("expected period 2025-07, got %v", julyPlan["period"])
	}

	buckets := julyPlan["buckets"].([]interface{})
	if len(buckets) != 2 {
		t.Fatalf("expected 2 copied buckets, got %d", len(buckets))
	}
	var needs map[string]interface{}
	for _, b := range buckets {
		bucket := b.(map[string]interface{})
		if bucket["title"] == "Needs" {
			needs = bucket
		}
		// Copies are fresh rows, not shared ones
		if bucket["id"] == juneBucket["id"] {
			t.Error("expected copied bucket to have a new ID")
		}
	}
	if needs == nil {
		t.Fatal("expected a copied Needs bucket")
	}
	assertDecimalField(t, needs, "percentage", "60")
	copiedItems := needs["line_items"].([]interface{})
	if len(copiedItems) != 2 {
		t.Fatalf("expected 2 copied line items, got %d", len(copiedItems))
	}

	// Income and expenses stay behind in June
	rec = app.request("GET", "/api/v1/summary?from=2025-07-01&to=2025-07-31", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)
	assertDecimalField(t, summary, "total_income", "0")
	assertDecimalField(t, summary, "total_expenses", "0")
}

func TestRolloverFlow_Conflicts(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "rollover-conflict@test.com")

	t.Run("no prior plan to copy from", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/plans/rollover", `{"period":"2025-07"}`, token)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_PRIOR_PLAN")
	})

	t.Run("target period already has a plan", func(t *testing.T) {
		app.request("POST", "/api/v1/buckets",
			`{"period":"2025-06","title":"Needs","percentage":50}`, token)
		rec := app.request("POST", "/api/v1/plans", `{"period":"2025-07"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("plan setup failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = app.request("POST", "/api/v1/plans/rollover", `{"period":"2025-07"}`, token)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "PLAN_ALREADY_EXISTS")
	})

	t.Run("rollover skips gaps to the latest prior plan", func(t *testing.T) {
		// June exists; September should copy from July (the latest prior), not June
		rec := app.request("POST", "/api/v1/plans/rollover", `{"period":"2025-09"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		plan := parseJSON(t, rec)["plan"].(map[string]interface{})
		if plan["period"] != "2025-09" {
			t.Errorf("expected period 2025-09, got %v", plan["period"])
		}
	})
}

func TestRolloverFlow_ExplicitCopyOnCreate(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "copy-create@test.com")

	rec := app.request("POST", "/api/v1/buckets",
		`{"period":"2025-03","title":"Essentials","percentage":80}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bucket setup failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/plans", "", token)
	plans := parseJSON(t, rec)["plans"].([]interface{})
	marchID := plans[0].(map[string]interface{})["id"].(string)

	// Create a distant month copying March's structure explicitly
	rec = app.request("POST", "/api/v1/plans",
		fmt.Sprintf(`{"period":"2025-08","copy_from_plan_id":%q}`, marchID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	plan := parseJSON(t, rec)["plan"].(map[string]interface{})
	buckets := plan["buckets"].([]interface{})
	if len(buckets) != 1 {
		t.Fatalf("expected 1 copied bucket, got %d", len(buckets))
	}
	if buckets[0].(map[string]interface{})["title"] != "Essentials" {
		t.Errorf("expected copied Essentials bucket, got %v", buckets[0].(map[string]interface{})["title"])
	}
}
