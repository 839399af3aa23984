package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"atelier/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
		Role:     models.UserRoleUser,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestClient creates a client with a unique name.
func CreateTestClient(t *testing.T, db *gorm.DB) *models.Client {
	t.Helper()

	client := &models.Client{
		Name:  fmt.Sprintf("Test Client %d", nextID()),
		Email: fmt.Sprintf("client%d@test.com", nextID()),
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

// CreateTestSupplier creates a supplier with a unique name.
func CreateTestSupplier(t *testing.T, db *gorm.DB) *models.Supplier {
	t.Helper()

	supplier := &models.Supplier{
		Name: fmt.Sprintf("Test Supplier %d", nextID()),
		Kind: "services",
	}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("failed to create test supplier: %v", err)
	}
	return supplier
}

// CreateTestCategory creates a category of the given kind with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, kind models.EntryKind) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
		Kind: kind,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestEntry creates a pending ledger entry of the given kind and
// amount (in cents) due on the given date.
func CreateTestEntry(t *testing.T, db *gorm.DB, kind models.EntryKind, amount int64, dueDate time.Time) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		Kind:        kind,
		Amount:      amount,
		DueDate:     dueDate,
		Description: fmt.Sprintf("Test Entry %d", nextID()),
		Status:      models.EntryStatusPending,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

// CreateTestPaidEntry creates a paid ledger entry with the given payment date.
func CreateTestPaidEntry(t *testing.T, db *gorm.DB, kind models.EntryKind, amount int64, dueDate, paymentDate time.Time) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		Kind:        kind,
		Amount:      amount,
		DueDate:     dueDate,
		PaymentDate: &paymentDate,
		Description: fmt.Sprintf("Test Entry %d", nextID()),
		Status:      models.EntryStatusPaid,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test paid entry: %v", err)
	}
	return entry
}

// CreateTestObligation creates an active monthly obligation starting on the
// given date with the given due day.
func CreateTestObligation(t *testing.T, db *gorm.DB, categoryID string, startDate time.Time, dueDay int) *models.RecurringObligation {
	t.Helper()

	obligation := &models.RecurringObligation{
		Description: fmt.Sprintf("Test Obligation %d", nextID()),
		Amount:      10000,
		Kind:        models.EntryKindExpense,
		CategoryID:  categoryID,
		DueDay:      dueDay,
		StartDate:   startDate,
		Status:      models.ObligationStatusActive,
	}
	if err := db.Create(obligation).Error; err != nil {
		t.Fatalf("failed to create test obligation: %v", err)
	}
	return obligation
}

// CreateTestActivity creates an agenda activity.
func CreateTestActivity(t *testing.T, db *gorm.DB) *models.Activity {
	t.Helper()

	now := time.Now()
	activity := &models.Activity{
		Responsible: fmt.Sprintf("Person %d", nextID()),
		Description: fmt.Sprintf("Test Activity %d", nextID()),
		RequestedAt: &now,
		Status:      "open",
	}
	if err := db.Create(activity).Error; err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return activity
}
