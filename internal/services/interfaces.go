package services

import (
	"time"

	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/report"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string, role models.UserRole, company string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers(filter UserFilter, page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	UpdateUser(id, name, email, password string, role models.UserRole, company string) (*models.User, error)
	DeleteUser(id string) error
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// UserFilter holds optional filter parameters for listing users.
type UserFilter struct {
	Name  string
	Email string
	Role  *models.UserRole
}

// ClientServicer defines the contract for client registry logic.
type ClientServicer interface {
	CreateClient(name, email, phone, company, notes, taxID string) (*models.Client, error)
	ListClients(name string, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error)
	GetClientByID(id string) (*models.Client, error)
	UpdateClient(id, name, email, phone, company, notes, taxID string) (*models.Client, error)
	DeleteClient(id string) error
}

// SupplierFilter holds optional filter parameters for listing suppliers.
type SupplierFilter struct {
	Name     string
	Kind     string
	Document string
}

// SupplierServicer defines the contract for supplier registry logic.
type SupplierServicer interface {
	CreateSupplier(supplier *models.Supplier) (*models.Supplier, error)
	ListSuppliers(filter SupplierFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Supplier], error)
	GetSupplierByID(id string) (*models.Supplier, error)
	UpdateSupplier(id string, supplier *models.Supplier) (*models.Supplier, error)
	DeleteSupplier(id string) error
}

// CategoryServicer defines the contract for finance category logic.
type CategoryServicer interface {
	CreateCategory(name string, kind models.EntryKind) (*models.Category, error)
	ListCategories(page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name string, kind models.EntryKind) (*models.Category, error)
	DeleteCategory(id string) error
}

// EntryFilter holds optional filter parameters for listing ledger entries.
// From and To bound the effective date: payment date for paid entries,
// due date otherwise.
type EntryFilter struct {
	Kind       *models.EntryKind
	Status     *models.EntryStatus
	CategoryID *string
	PayeeID    *string
	Search     *string
	From       *time.Time
	To         *time.Time
}

// LedgerServicer defines the contract for ledger entry logic.
type LedgerServicer interface {
	CreateEntry(entry *models.LedgerEntry) (*models.LedgerEntry, error)
	ListEntries(filter EntryFilter, page pagination.PageRequest) (*pagination.PageResponse[models.LedgerEntry], error)
	GetEntryByID(id string) (*models.LedgerEntry, error)
	UpdateEntry(id string, entry *models.LedgerEntry) (*models.LedgerEntry, error)
	SetEntryStatus(id string, status models.EntryStatus) (*models.LedgerEntry, error)
	DeleteEntry(id string) error
}

// RecurringServicer defines the contract for recurring obligations.
type RecurringServicer interface {
	CreateObligation(obligation *models.RecurringObligation) (*models.RecurringObligation, []models.LedgerEntry, error)
	ListObligations(page pagination.PageRequest) (*pagination.PageResponse[models.RecurringObligation], error)
	GetObligationByID(id string) (*models.RecurringObligation, error)
	UpdateObligation(id string, obligation *models.RecurringObligation) (*models.RecurringObligation, error)
	DeleteObligation(id string) error
}

// PeriodSummary pairs the filtered period totals with the all-time totals
// shown next to them on the dashboard.
type PeriodSummary struct {
	Period  report.Summary `json:"period"`
	Overall report.Summary `json:"overall"`
}

// ChartSeries is the label/value shape consumed by the dashboard charts.
type ChartSeries struct {
	Labels  []string `json:"labels"`
	Income  []int64  `json:"income"`
	Expense []int64  `json:"expense"`
	Balance []int64  `json:"balance"`
}

// ExportRow is one line of the CSV export.
type ExportRow struct {
	Date     string
	Kind     string
	Category string
	Payee    string
	Amount   int64
	Status   string
}

// ReportServicer defines the contract for financial reporting.
type ReportServicer interface {
	Summary(filter EntryFilter) (*PeriodSummary, error)
	Monthly(filter EntryFilter) (*ChartSeries, error)
	Categories(filter EntryFilter, kind models.EntryKind) ([]report.CategoryBucket, error)
	MonthlyChartPNG(filter EntryFilter) ([]byte, error)
	ExportRows(filter EntryFilter) ([]ExportRow, error)
}

// ActivityServicer defines the contract for agenda activities.
type ActivityServicer interface {
	CreateActivity(activity *models.Activity) (*models.Activity, error)
	ListActivities(page pagination.PageRequest) (*pagination.PageResponse[models.Activity], error)
	GetActivityByID(id string) (*models.Activity, error)
	UpdateActivity(id string, activity *models.Activity) (*models.Activity, error)
	DeleteActivity(id string) error
}

// ChatPartner is a user the caller can message, with their unread count.
type ChatPartner struct {
	UserID      string          `json:"user_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	UnreadCount int64           `json:"unread_count"`
}

// ChatServicer defines the contract for the internal chat.
type ChatServicer interface {
	ListPartners(userID string) ([]ChatPartner, error)
	Conversation(userID, withID string) ([]models.ChatMessage, error)
	SendMessage(senderID, recipientID, body string) (*models.ChatMessage, error)
	MarkRead(userID, messageID string) error
}

// AuditFilter holds optional filter parameters for listing audit logs.
type AuditFilter struct {
	UserName string
	Action   string
	Entity   string
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, userName, action, entity, entityID string, details map[string]any)
	ListLogs(filter AuditFilter) ([]models.AuditLog, error)
}

// ContactServicer defines the contract for the public contact form.
type ContactServicer interface {
	SendContactMail(name, email, subject, message string) error
}
