package services

import (
	"testing"

	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Ana", "ana@studio.com", "password123", models.UserRoleUser, "Studio")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Email != "ana@studio.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
		if user.Password == "password123" {
			t.Error("expected password to be hashed")
		}
	})

	t.Run("normalizes_email_case", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Ana", "Ana@Studio.COM", "password123", models.UserRoleUser, "")
		testutil.AssertNoError(t, err)
		if user.Email != "ana@studio.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("Ana", "ana@studio.com", "password123", models.UserRoleUser, "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Other", "ANA@studio.com", "password123", models.UserRoleUser, "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("invalid_role", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("Ana", "ana@studio.com", "password123", models.UserRole("superadmin"), "")
		testutil.AssertAppError(t, err, "INVALID_ROLE")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "ana@studio.com", "password123", models.UserRoleUser, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("valid_credentials", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		loggedIn, err := svc.AttemptLogin(user.Email, "password123")
		testutil.AssertNoError(t, err)

		if loggedIn.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, loggedIn.ID)
		}

		stored, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if stored.LastLoginAt == nil {
			t.Error("expected last login timestamp to be set")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AttemptLogin(user.Email, "wrong")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_email_same_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("nobody@studio.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("inactive_user_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)
		db.Model(user).Update("is_active", false)

		_, err := svc.AttemptLogin(user.Email, "password123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestListUsers(t *testing.T) {
	t.Run("filters_by_role", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.CreateTestUser(t, db)
		testutil.CreateTestUser(t, db)
		admin := testutil.CreateTestUser(t, db)
		db.Model(admin).Update("role", models.UserRoleAdmin)

		role := models.UserRoleAdmin
		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.ListUsers(UserFilter{Role: &role}, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 admin, got %d", result.TotalItems)
		}
	})

	t.Run("filters_by_email_substring", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		testutil.CreateTestUserWithEmail(t, db, "joana@agency.com")
		testutil.CreateTestUserWithEmail(t, db, "marco@agency.com")

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.ListUsers(UserFilter{Email: "JOANA"}, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 match, got %d", result.TotalItems)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("keeps_password_when_blank", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)
		originalHash := user.Password

		updated, err := svc.UpdateUser(user.ID, "New Name", user.Email, "", user.Role, "")
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" {
			t.Errorf("expected name update, got %s", updated.Name)
		}
		stored, _ := svc.GetUserByID(user.ID)
		if stored.Password != originalHash {
			t.Error("expected password hash to be unchanged")
		}
	})

	t.Run("email_taken_by_other", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		first := testutil.CreateTestUserWithEmail(t, db, "first@agency.com")
		second := testutil.CreateTestUserWithEmail(t, db, "second@agency.com")

		_, err := svc.UpdateUser(second.ID, second.Name, first.Email, "", second.Role, "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestRefreshTokenHash(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.StoreRefreshTokenHash(user.ID, "abc123")
		testutil.AssertNoError(t, err)

		hash, err := svc.GetRefreshTokenHash(user.ID)
		testutil.AssertNoError(t, err)
		if hash != "abc123" {
			t.Errorf("expected stored hash abc123, got %s", hash)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("soft_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteUser(user.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetUserByID(user.ID)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
