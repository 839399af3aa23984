package services

import (
	"testing"

	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/testutil"
)

func TestCreateSupplier(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSupplierService(db)

		supplier, err := svc.CreateSupplier(&models.Supplier{
			Name:     "Print Shop",
			Kind:     "printing",
			Document: "98.765.432/0001-00",
			City:     "São Paulo",
		})
		testutil.AssertNoError(t, err)

		if supplier.ID == "" {
			t.Fatal("expected non-empty supplier ID")
		}
	})

	t.Run("missing_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSupplierService(db)

		_, err := svc.CreateSupplier(&models.Supplier{Name: "No Kind"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListSuppliers(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSupplierService(db)

		_, err := svc.CreateSupplier(&models.Supplier{Name: "Print Shop", Kind: "printing"})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateSupplier(&models.Supplier{Name: "Courier Co", Kind: "logistics"})
		testutil.AssertNoError(t, err)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.ListSuppliers(SupplierFilter{Kind: "printing"}, page)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 printing supplier, got %d", result.TotalItems)
		}
		if result.Data[0].Name != "Print Shop" {
			t.Errorf("expected Print Shop, got %s", result.Data[0].Name)
		}
	})
}

func TestUpdateSupplier(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSupplierService(db)
		supplier := testutil.CreateTestSupplier(t, db)

		updated, err := svc.UpdateSupplier(supplier.ID, &models.Supplier{
			Name: "Renamed",
			Kind: "services",
			City: "Rio de Janeiro",
		})
		testutil.AssertNoError(t, err)

		if updated.Name != "Renamed" || updated.City != "Rio de Janeiro" {
			t.Errorf("unexpected update result %+v", updated)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSupplierService(db)

		_, err := svc.UpdateSupplier("00000000-0000-0000-0000-000000000000", &models.Supplier{Name: "X", Kind: "y"})
		testutil.AssertAppError(t, err, "SUPPLIER_NOT_FOUND")
	})
}

func TestDeleteSupplier(t *testing.T) {
	t.Run("soft_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSupplierService(db)
		supplier := testutil.CreateTestSupplier(t, db)

		err := svc.DeleteSupplier(supplier.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetSupplierByID(supplier.ID)
		testutil.AssertAppError(t, err, "SUPPLIER_NOT_FOUND")
	})
}
