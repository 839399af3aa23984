package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
)

// clientService handles client registry logic.
type clientService struct {
	db *gorm.DB
}

// NewClientService creates a new ClientServicer.
func NewClientService(db *gorm.DB) ClientServicer {
	return &clientService{db: db}
}

// CreateClient creates a new client record
func (s *clientService) CreateClient(name, email, phone, company, notes, taxID string) (*models.Client, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}

	client := &models.Client{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: company,
		Notes:   notes,
		TaxID:   taxID,
	}

	if err := s.db.Create(client).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return client, nil
}

// ListClients retrieves a paginated list of clients, optionally filtered
// by a case-insensitive name substring, ordered by name.
func (s *clientService) ListClients(name string, page pagination.PageRequest) (*pagination.PageResponse[models.Client], error) {
	page.Defaults()

	base := s.db.Model(&models.Client{})
	if name != "" {
		base = base.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(name))+"%")
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var clients []models.Client
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&clients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(clients, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetClientByID retrieves a client by ID
func (s *clientService) GetClientByID(id string) (*models.Client, error) {
	var client models.Client
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &client, nil
}

// UpdateClient updates an existing client
func (s *clientService) UpdateClient(id, name, email, phone, company, notes, taxID string) (*models.Client, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "client name is required")
	}

	client, err := s.GetClientByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":    name,
		"email":   email,
		"phone":   phone,
		"company": company,
		"notes":   notes,
		"tax_id":  taxID,
	}
	if err := s.db.Model(client).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return client, nil
}

// DeleteClient soft-deletes a client
func (s *clientService) DeleteClient(id string) error {
	client, err := s.GetClientByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(client).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
