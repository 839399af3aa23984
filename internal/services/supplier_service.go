package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
)

// supplierService handles supplier registry logic.
type supplierService struct {
	db *gorm.DB
}

// NewSupplierService creates a new SupplierServicer.
func NewSupplierService(db *gorm.DB) SupplierServicer {
	return &supplierService{db: db}
}

// CreateSupplier creates a new supplier record
func (s *supplierService) CreateSupplier(supplier *models.Supplier) (*models.Supplier, error) {
	if supplier.Name == "" || supplier.Kind == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "supplier name and kind are required")
	}

	if err := s.db.Create(supplier).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves a paginated list of suppliers matching the filter, ordered by name.
func (s *supplierService) ListSuppliers(filter SupplierFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Supplier], error) {
	page.Defaults()

	base := s.db.Model(&models.Supplier{})
	if filter.Name != "" {
		base = base.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(filter.Name))+"%")
	}
	if filter.Kind != "" {
		base = base.Where("kind = ?", filter.Kind)
	}
	if filter.Document != "" {
		base = base.Where("document = ?", filter.Document)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var suppliers []models.Supplier
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&suppliers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(suppliers, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetSupplierByID retrieves a supplier by ID
func (s *supplierService) GetSupplierByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.Where("id = ?", id).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &supplier, nil
}

// UpdateSupplier updates an existing supplier
func (s *supplierService) UpdateSupplier(id string, supplier *models.Supplier) (*models.Supplier, error) {
	if supplier.Name == "" || supplier.Kind == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "supplier name and kind are required")
	}

	existing, err := s.GetSupplierByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        supplier.Name,
		"kind":        supplier.Kind,
		"document":    supplier.Document,
		"email":       supplier.Email,
		"phone":       supplier.Phone,
		"address":     supplier.Address,
		"city":        supplier.City,
		"state":       supplier.State,
		"postal_code": supplier.PostalCode,
		"notes":       supplier.Notes,
	}
	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeleteSupplier soft-deletes a supplier
func (s *supplierService) DeleteSupplier(id string) error {
	supplier, err := s.GetSupplierByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(supplier).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
