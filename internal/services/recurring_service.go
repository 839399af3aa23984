package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/logger"
	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/recurrence"
)

// recurringService handles recurring obligation logic, including the
// expansion of a new obligation into concrete ledger entries.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

func (s *recurringService) validateObligation(obligation *models.RecurringObligation) error {
	if obligation.Description == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if obligation.Kind != models.EntryKindIncome && obligation.Kind != models.EntryKindExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
	}
	if obligation.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if obligation.DueDay < 1 || obligation.DueDay > 31 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "due day must be between 1 and 31")
	}
	if obligation.StartDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "start date is required")
	}
	if obligation.CategoryID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", obligation.CategoryID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// defaultPayeeKind fills in the counterparty registry when a payee was
// given without saying which registry it lives in: expenses are assumed
// to be owed to suppliers, incomes to clients.
func defaultPayeeKind(obligation *models.RecurringObligation) {
	if obligation.PayeeID == nil || obligation.PayeeKind != nil {
		return
	}
	kind := models.PayeeKindSupplier
	if obligation.Kind == models.EntryKindIncome {
		kind = models.PayeeKindClient
	}
	obligation.PayeeKind = &kind
}

// CreateObligation persists the obligation and expands it into pending
// ledger entries, one per emitted due date. Inserts run sequentially and
// are not wrapped in a transaction: if one fails, the obligation and the
// entries created so far are kept and the error reports how far it got.
func (s *recurringService) CreateObligation(obligation *models.RecurringObligation) (*models.RecurringObligation, []models.LedgerEntry, error) {
	if err := s.validateObligation(obligation); err != nil {
		return nil, nil, err
	}
	if obligation.Status == "" {
		obligation.Status = models.ObligationStatusActive
	}
	defaultPayeeKind(obligation)

	if err := s.db.Create(obligation).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	dates := recurrence.Expand(obligation.StartDate, obligation.EndDate, obligation.DueDay)

	created := make([]models.LedgerEntry, 0, len(dates))
	for _, due := range dates {
		categoryID := obligation.CategoryID
		entry := models.LedgerEntry{
			Kind:        obligation.Kind,
			Amount:      obligation.Amount,
			DueDate:     due,
			CategoryID:  &categoryID,
			PayeeID:     obligation.PayeeID,
			PayeeKind:   obligation.PayeeKind,
			Description: obligation.Description,
			Status:      models.EntryStatusPending,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			logger.Get().Errorw("recurring expansion aborted",
				"obligation_id", obligation.ID,
				"created", len(created),
				"planned", len(dates),
				"error", err)
			return obligation, created, apperrors.Wrap(apperrors.ErrExpansionAborted, err)
		}
		created = append(created, entry)
	}

	logger.Get().Infow("recurring obligation expanded",
		"obligation_id", obligation.ID,
		"entries", len(created))
	return obligation, created, nil
}

// ListObligations retrieves a paginated list of obligations, newest first.
func (s *recurringService) ListObligations(page pagination.PageRequest) (*pagination.PageResponse[models.RecurringObligation], error) {
	page.Defaults()

	base := s.db.Model(&models.RecurringObligation{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var obligations []models.RecurringObligation
	if err := base.Preload("Category").Scopes(pagination.Paginate(page)).
		Order("created_at DESC").Find(&obligations).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(obligations, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetObligationByID retrieves an obligation by ID
func (s *recurringService) GetObligationByID(id string) (*models.RecurringObligation, error) {
	var obligation models.RecurringObligation
	if err := s.db.Preload("Category").Where("id = ?", id).First(&obligation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObligationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &obligation, nil
}

// UpdateObligation updates the template only. Entries already generated
// from it are left untouched and no new expansion happens.
func (s *recurringService) UpdateObligation(id string, obligation *models.RecurringObligation) (*models.RecurringObligation, error) {
	if err := s.validateObligation(obligation); err != nil {
		return nil, err
	}
	if obligation.Status != "" &&
		obligation.Status != models.ObligationStatusActive &&
		obligation.Status != models.ObligationStatusInactive {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active or inactive")
	}

	existing, err := s.GetObligationByID(id)
	if err != nil {
		return nil, err
	}
	defaultPayeeKind(obligation)

	updates := map[string]interface{}{
		"description": obligation.Description,
		"amount":      obligation.Amount,
		"kind":        obligation.Kind,
		"category_id": obligation.CategoryID,
		"payee_id":    obligation.PayeeID,
		"payee_kind":  obligation.PayeeKind,
		"due_day":     obligation.DueDay,
		"start_date":  obligation.StartDate,
		"end_date":    obligation.EndDate,
	}
	if obligation.Status != "" {
		updates["status"] = obligation.Status
	}
	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetObligationByID(id)
}

// DeleteObligation soft-deletes the template. Generated entries survive;
// they have no link back to the obligation.
func (s *recurringService) DeleteObligation(id string) error {
	obligation, err := s.GetObligationByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(obligation).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
