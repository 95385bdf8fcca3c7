package main

import (
	"fmt"
	"net/http"
	"os"

	"bucketwise/internal/config"
	"bucketwise/internal/database"
	"bucketwise/internal/handlers"
	"bucketwise/internal/logger"
	"bucketwise/internal/middleware"
	"bucketwise/internal/services"
	"bucketwise/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bucketwise/internal/docs" // Import swagger docs
)

// @title           Bucketwise API
// @version         1.0
// @description     Bucketwise is a team-based budgeting application: monthly budget plans split income into percentage buckets and line items, with expense tracking against each line item.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	activityService := services.NewActivityService(db)
	userService := services.NewUserService(db)
	teamService := services.NewTeamService(db, activityService)
	planService := services.NewPlanService(db, activityService)
	bucketService := services.NewBucketService(db, activityService)
	lineItemService := services.NewLineItemService(db, activityService)
	incomeService := services.NewIncomeService(db, activityService)
	expenseService := services.NewExpenseService(db, activityService)
	summaryService := services.NewSummaryService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	planHandler := handlers.NewPlanHandler(planService)
	bucketHandler := handlers.NewBucketHandler(bucketService, summaryService)
	lineItemHandler := handlers.NewLineItemHandler(lineItemService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(summaryService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Team creation is allowed before the user belongs to one
	protected.POST("/teams", teamHandler.CreateTeam)

	// Team-scoped routes: everything below requires team membership
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

	log.Infof("Starting Bucketwise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
