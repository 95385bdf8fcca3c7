package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bucketwise/internal/handlers"
	"bucketwise/internal/logger"
	"bucketwise/internal/middleware"
	"bucketwise/internal/models"
	"bucketwise/internal/services"
	"bucketwise/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Team{},
		&models.BudgetPlan{},
		&models.Bucket{},
		&models.LineItem{},
		&models.IncomeSource{},
		&models.Expense{},
		&models.ActivityLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	activityService := services.NewActivityService(db)
	userService := services.NewUserService(db)
	teamService := services.NewTeamService(db, activityService)
	planService := services.NewPlanService(db, activityService)
	bucketService := services.NewBucketService(db, activityService)
	lineItemService := services.NewLineItemService(db, activityService)
	incomeService := services.NewIncomeService(db, activityService)
	expenseService := services.NewExpenseService(db, activityService)
	summaryService := services.NewSummaryService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	planHandler := handlers.NewPlanHandler(planService)
	bucketHandler := handlers.NewBucketHandler(bucketService, summaryService)
	lineItemHandler := handlers.NewLineItemHandler(lineItemService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(summaryService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/teams", teamHandler.CreateTeam)

	scoped := protected.Group("/")
	scoped.Use(middleware.RequireTeam(userService))

	scoped.GET("/teams/me", teamHandler.GetTeam)
	scoped.PUT("/teams/me", teamHandler.UpdateTeam)

	plans := scoped.Group("/plans")
	plans.POST("", planHandler.CreatePlan)
	plans.GET("", planHandler.ListPlans)
	plans.POST("/rollover", planHandler.Rollover)

	buckets := scoped.Group("/buckets")
	buckets.POST("", bucketHandler.CreateBucket)
	buckets.GET("/:id", bucketHandler.GetBucket)
	buckets.PUT("/:id", bucketHandler.UpdateBucket)
	buckets.DELETE("/:id", bucketHandler.DeleteBucket)

	lineItems := scoped.Group("/line-items")
	lineItems.POST("", lineItemHandler.CreateLineItem)
	lineItems.PUT("/:id", lineItemHandler.UpdateLineItem)
	lineItems.DELETE("/:id", lineItemHandler.DeleteLineItem)

	incomeSources := scoped.Group("/income-sources")
	incomeSources.POST("", incomeHandler.CreateIncomeSource)
	incomeSources.GET("", incomeHandler.ListIncomeSources)
	incomeSources.PUT("/:id", incomeHandler.UpdateIncomeSource)
	incomeSources.DELETE("/:id", incomeHandler.DeleteIncomeSource)

	expenses := scoped.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	scoped.GET("/dashboard", dashboardHandler.GetDashboard)
	scoped.GET("/summary", dashboardHandler.GetSummary)
	scoped.GET("/activity", activityHandler.GetActivity)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createTeam creates a team for the authenticated user and returns its ID.
func (app *testApp) createTeam(t *testing.T, token, name string) string {
	t.Helper()
	rec := app.request("POST", "/api/v1/teams", fmt.Sprintf(`{"name":%q}`, name), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team failed: %d %s", rec.Code, rec.Body.String())
	}
	team := parseJSON(t, rec)["team"].(map[string]interface{})
	return team["id"].(string)
}

// registerMember creates a user with a fresh team and returns the access token.
func (app *testApp) registerMember(t *testing.T, email string) string {
	t.Helper()
	token, _, _ := app.registerUser(t, email, "password123")
	app.createTeam(t, token, "Household")
	return token
}

// assertErrorCode asserts the structured error code in an error response.
func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// assertDecimalField asserts a decimal field serialized as a JSON string.
func assertDecimalField(t *testing.T, m map[string]interface{}, key, want string) {
	t.Helper()
	raw, ok := m[key].(string)
	if !ok {
		t.Fatalf("expected %s to be a decimal string, got %T (%v)", key, m[key], m[key])
	}
	got, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("field %s is not a decimal: %v", key, err)
	}
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s = %s, got %s", key, want, got)
	}
}
