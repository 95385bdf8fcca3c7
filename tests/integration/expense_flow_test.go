package integration

import (
	"fmt"
	"net/http"
	"testing"
)

// setupLineItem creates a plan, bucket, and line item and returns the line item ID.
func setupLineItem(t *testing.T, app *testApp, token string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/buckets",
		`{"period":"2025-06","title":"Needs","percentage":50,"line_items":[{"title":"Rent","percentage":100}]}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bucket setup failed: %d %s", rec.Code, rec.Body.String())
	}
	bucket := parseJSON(t, rec)["bucket"].(map[string]interface{})
	return bucket["line_items"].([]interface{})[0].(map[string]interface{})["id"].(string)
}

func TestExpenseFlow_CreateListUpdateDelete(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "expense@test.com")
	itemID := setupLineItem(t, app, token)

	// Step 1: record an expense; it lands on the plan of its date's month
	rec := app.request("POST", "/api/v1/expenses",
		fmt.Sprintf(`{"line_item_id":%q,"date":"2025-06-10T00:00:00Z","amount":42.99,"description":"Groceries"}`, itemID), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	expenseID := expense["id"].(string)
	assertDecimalField(t, expense, "amount", "42.99")

	// Step 2: list shows the expense with its line item
	rec = app.request("GET", "/api/v1/expenses", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["line_item"] == nil {
		t.Error("expected expense to include its line item")
	}

	// Step 3: date filter excludes the expense
	rec = app.request("GET", "/api/v1/expenses?from_date=2025-07-01T00:00:00Z", "", token)
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 0 {
		t.Errorf("expected 0 expenses after filter, got %v", result["total_items"])
	}

	// Step 4: moving the expense to another month re-homes it to that month's plan
	rec = app.request("PUT", "/api/v1/expenses/"+expenseID,
		`{"date":"2025-07-05T00:00:00Z","amount":50}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/plans", "", token)
	plans := parseJSON(t, rec)["plans"].([]interface{})
	if len(plans) != 2 {
		t.Fatalf("expected a July plan to be created by the move, got %d plans", len(plans))
	}

	// Step 5: delete
	rec = app.request("DELETE", "/api/v1/expenses/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/expenses", "", token)
	result = parseJSON(t, rec)
	if result["total_items"].(float64) != 0 {
		t.Errorf("expected 0 expenses after delete, got %v", result["total_items"])
	}
}

func TestExpenseFlow_UnknownLineItem(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "unknown-item@test.com")

	rec := app.request("POST", "/api/v1/expenses",
		`{"line_item_id":"00000000-0000-0000-0000-000000000000","date":"2025-06-10T00:00:00Z","amount":10}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "LINE_ITEM_NOT_FOUND")
}

func TestIncomeFlow_CreateListUpdate(t *testing.T) {
	app := setupApp(t)
	token := app.registerMember(t, "income@test.com")

	// Step 1: create an income source; the month's plan is resolved on demand
	rec := app.request("POST", "/api/v1/income-sources",
		`{"name":"Salary","amount":3000,"month_year":"2025-06-01T00:00:00Z"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	source := parseJSON(t, rec)["income_source"].(map[string]interface{})
	sourceID := source["id"].(string)
	if source["is_active"] != true {
		t.Error("expected income source to default to active")
	}
	assertDecimalField(t, source, "amount", "3000")

	rec = app.request("GET", "/api/v1/plans", "", token)
	plans := parseJSON(t, rec)["plans"].([]interface{})
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(plans))
	}

	// Step 2: list
	rec = app.request("GET", "/api/v1/income-sources", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Fatalf("expected 1 income source, got %v", result["total_items"])
	}

	// Step 3: deactivate
	rec = app.request("PUT", "/api/v1/income-sources/"+sourceID, `{"is_active":false}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	source = parseJSON(t, rec)["income_source"].(map[string]interface{})
	if source["is_active"] != false {
		t.Error("expected income source to be deactivated")
	}

	// Step 4: delete
	rec = app.request("DELETE", "/api/v1/income-sources/"+sourceID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
