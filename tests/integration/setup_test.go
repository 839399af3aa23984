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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"atelier/internal/handlers"
	"atelier/internal/logger"
	"atelier/internal/middleware"
	"atelier/internal/models"
	"atelier/internal/services"
	"atelier/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine

	userService services.UserServicer
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
		&models.Client{},
		&models.Supplier{},
		&models.Category{},
		&models.LedgerEntry{},
		&models.RecurringObligation{},
		&models.Activity{},
		&models.ChatMessage{},
		&models.AuditLog{},
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

	// Handlers
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

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	clients := protected.Group("/clients")
	clients.POST("", clientHandler.CreateClient)
	clients.GET("", clientHandler.ListClients)
	clients.GET("/:id", clientHandler.GetClient)
	clients.PUT("/:id", clientHandler.UpdateClient)
	clients.DELETE("/:id", clientHandler.DeleteClient)

	suppliers := protected.Group("/suppliers")
	suppliers.POST("", supplierHandler.CreateSupplier)
	suppliers.GET("", supplierHandler.ListSuppliers)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	entries := protected.Group("/entries")
	entries.POST("", ledgerHandler.CreateEntry)
	entries.GET("", ledgerHandler.ListEntries)
	entries.GET("/:id", ledgerHandler.GetEntry)
	entries.PUT("/:id", ledgerHandler.UpdateEntry)
	entries.PATCH("/:id/status", ledgerHandler.SetEntryStatus)
	entries.DELETE("/:id", ledgerHandler.DeleteEntry)

	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateObligation)
	recurring.GET("", recurringHandler.ListObligations)
	recurring.PUT("/:id", recurringHandler.UpdateObligation)
	recurring.DELETE("/:id", recurringHandler.DeleteObligation)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/monthly", reportHandler.GetMonthly)
	reports.GET("/monthly/chart", reportHandler.GetMonthlyChart)
	reports.GET("/categories", reportHandler.GetCategories)
	reports.GET("/export", reportHandler.ExportEntries)

	activities := protected.Group("/activities")
	activities.POST("", activityHandler.CreateActivity)
	activities.GET("", activityHandler.ListActivities)

	chat := protected.Group("/chat")
	chat.GET("/partners", chatHandler.ListPartners)
	chat.GET("/conversations/:id", chatHandler.GetConversation)
	chat.POST("/messages", chatHandler.SendMessage)
	chat.PATCH("/messages/:id/read", chatHandler.MarkMessageRead)

	admin := protected.Group("/")
	admin.Use(middleware.RequireAdmin())

	users := admin.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.DELETE("/:id", userHandler.DeleteUser)

	admin.GET("/audit", auditHandler.ListLogs)

	return &testApp{DB: db, Router: router, userService: userService}
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

// seedUser creates a user directly through the service layer and returns it.
func (app *testApp) seedUser(t *testing.T, name, email, password string, role models.UserRole) *models.User {
	t.Helper()
	user, err := app.userService.CreateUser(name, email, password, role, "")
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
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

// seedAndLogin seeds a user and logs them in, returning the access token.
func (app *testApp) seedAndLogin(t *testing.T, name, email string, role models.UserRole) string {
	t.Helper()
	app.seedUser(t, name, email, "password123", role)
	token, _ := app.loginUser(t, email, "password123")
	return token
}
