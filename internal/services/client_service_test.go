package services

import (
	"testing"

	"atelier/internal/pagination"
	"atelier/internal/testutil"
)

func TestCreateClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		client, err := svc.CreateClient("Acme Studio", "hello@acme.com", "+55 11 99999-0000", "Acme", "vip", "12.345.678/0001-00")
		testutil.AssertNoError(t, err)

		if client.ID == "" {
			t.Fatal("expected non-empty client ID")
		}
		if client.TaxID != "12.345.678/0001-00" {
			t.Errorf("expected tax ID to be stored, got %s", client.TaxID)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.CreateClient("", "", "", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListClients(t *testing.T) {
	t.Run("name_filter_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.CreateClient("Acme Studio", "", "", "", "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateClient("Borealis Films", "", "", "", "", "")
		testutil.AssertNoError(t, err)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.ListClients("ACME", page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 match, got %d", result.TotalItems)
		}
		if result.Data[0].Name != "Acme Studio" {
			t.Errorf("expected Acme Studio, got %s", result.Data[0].Name)
		}
	})
}

func TestUpdateClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		client := testutil.CreateTestClient(t, db)

		updated, err := svc.UpdateClient(client.ID, "Renamed", "new@mail.com", "", "", "", "")
		testutil.AssertNoError(t, err)

		if updated.Name != "Renamed" || updated.Email != "new@mail.com" {
			t.Errorf("unexpected update result %+v", updated)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)

		_, err := svc.UpdateClient("00000000-0000-0000-0000-000000000000", "Name", "", "", "", "", "")
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("soft_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClientService(db)
		client := testutil.CreateTestClient(t, db)

		err := svc.DeleteClient(client.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetClientByID(client.ID)
		testutil.AssertAppError(t, err, "CLIENT_NOT_FOUND")
	})
}
