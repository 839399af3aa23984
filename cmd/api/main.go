package main

import (
	"fmt"
	"net/http"
	"os"

	"atelier/internal/config"
	"atelier/internal/database"
	"atelier/internal/handlers"
	"atelier/internal/logger"
	"atelier/internal/middleware"
	"atelier/internal/services"
	"atelier/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "atelier/internal/docs" // Import swagger docs
)

// @title           Atelier API
// @version         1.0
// @description     Atelier is the back office for a creative studio: client and supplier registries, a financial ledger with recurring obligations, reports, an agenda, and internal chat.

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

	// Register custom binding validators
	validator.Register()

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	clientService := services.NewClientService(db)
	supplierService := services.NewSupplierService(db)
	categoryService := services.NewCategoryService(db)
	ledgerService := services.NewLedgerService(db)
	recurringService := services.NewRecurringService(db)
	reportService := services.NewReportService(db)
	activityService := services.NewActivityService(db)
	chatService := services.NewChatService(db)
	auditService := services.NewAuditService(db)
	contactService := services.NewContactService(appConfig)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService, auditService)
	clientHandler := handlers.NewClientHandler(clientService, auditService)
	supplierHandler := handlers.NewSupplierHandler(supplierService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, auditService)
	recurringHandler := handlers.NewRecurringHandler(recurringService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	activityHandler := handlers.NewActivityHandler(activityService, auditService)
	chatHandler := handlers.NewChatHandler(chatService)
	auditHandler := handlers.NewAuditHandler(auditService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

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
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	v1.POST("/contact", contactHandler.SendContact)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Client registry
	clients := protected.Group("/clients")
	clients.POST("", clientHandler.CreateClient)
	clients.GET("", clientHandler.ListClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PUT("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", clientHandler.DeleteClient)

	// Supplier registry
	suppliers := protected.Group("/suppliers")
	suppliers.POST("", supplierHandler.CreateSupplier)
	suppliers.GET("", supplierHandler.ListSuppliers)
	suppliers.GET("/:id", supplierHandler.GetSupplier)
	suppliers.PUT("/:id", supplierHandler.UpdateSupplier)
	suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)

	// Finance categories
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Ledger entries
	entries := protected.Group("/entries")
	entries.POST("", ledgerHandler.CreateEntry)
	entries.GET("", ledgerHandler.ListEntries)
	entries.GET("/:id", ledgerHandler.GetEntry)
	entries.PUT("/:id", ledgerHandler.UpdateEntry)
	entries.PATCH("/:id/status", ledgerHandler.SetEntryStatus)
	entries.DELETE("/:id", ledgerHandler.DeleteEntry)

	// Recurring obligations
	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateObligation)
	recurring.GET("", recurringHandler.ListObligations)
	recurring.GET("/:id", recurringHandler.GetObligation)
	recurring.PUT("/:id", recurringHandler.UpdateObligation)
	recurring.DELETE("/:id", recurringHandler.DeleteObligation)

	// Reports
	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/monthly", reportHandler.GetMonthly)
	reports.GET("/monthly/chart", reportHandler.GetMonthlyChart)
	reports.GET("/categories", reportHandler.GetCategories)
	reports.GET("/export", reportHandler.ExportEntries)

	// Agenda activities
	activities := protected.Group("/activities")
	activities.POST("", activityHandler.CreateActivity)
	activities.GET("", activityHandler.ListActivities)
	activities.GET("/:id", activityHandler.GetActivity)
	activities.PUT("/:id", activityHandler.UpdateActivity)
	activities.DELETE("/:id", activityHandler.DeleteActivity)

	// Internal chat
	chat := protected.Group("/chat")
	chat.GET("/partners", chatHandler.ListPartners)
	chat.GET("/conversations/:id", chatHandler.GetConversation)
	chat.POST("/messages", chatHandler.SendMessage)
	chat.PATCH("/messages/:id/read", chatHandler.MarkMessageRead)

	// Admin-only routes
	admin := protected.Group("/")
	admin.Use(middleware.RequireAdmin())

	users := admin.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	admin.GET("/audit", auditHandler.ListLogs)

	log.Infof("Starting Atelier backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
