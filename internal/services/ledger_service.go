package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
	"atelier/internal/report"
)

// nowFunc is swapped in tests to pin the payment timestamp.
var nowFunc = time.Now

// ledgerService handles ledger entry business logic.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

func validateEntry(entry *models.LedgerEntry) error {
	if entry.Kind != models.EntryKindIncome && entry.Kind != models.EntryKindExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "entry kind must be income or expense")
	}
	if entry.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if entry.DueDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}
	if entry.Status != "" && entry.Status != models.EntryStatusPending && entry.Status != models.EntryStatusPaid {
		return apperrors.ErrInvalidEntryStatus
	}
	return nil
}

// CreateEntry creates a new ledger entry, defaulting the status to pending.
func (s *ledgerService) CreateEntry(entry *models.LedgerEntry) (*models.LedgerEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if entry.Status == "" {
		entry.Status = models.EntryStatusPending
	}
	if entry.CategoryID != nil {
		var count int64
		if err := s.db.Model(&models.Category{}).Where("id = ?", *entry.CategoryID).Count(&count).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return nil, apperrors.ErrCategoryNotFound
		}
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetEntryByID(entry.ID)
}

// ListEntries retrieves a paginated list of entries matching the filter,
// newest due date first. Kind, status, category and payee narrow the query
// in SQL; a date bound is applied in memory because the bounding date
// depends on each entry's status.
func (s *ledgerService) ListEntries(filter EntryFilter, page pagination.PageRequest) (*pagination.PageResponse[models.LedgerEntry], error) {
	page.Defaults()

	base := s.db.Model(&models.LedgerEntry{})
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.Status != nil {
		base = base.Where("status = ?", *filter.Status)
	}
	if filter.CategoryID != nil {
		base = base.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.PayeeID != nil {
		base = base.Where("payee_id = ?", *filter.PayeeID)
	}
	if filter.Search != nil {
		like := "%" + strings.ToLower(*filter.Search) + "%"
		base = base.Where("payee_id IN (?) OR payee_id IN (?)",
			s.db.Model(&models.Client{}).Select("id").Where("lower(name) LIKE ?", like),
			s.db.Model(&models.Supplier{}).Select("id").Where("lower(name) LIKE ?", like),
		)
	}

	// Without a date bound the database counts and pages directly.
	if filter.From == nil && filter.To == nil {
		var totalItems int64
		if err := base.Count(&totalItems).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var entries []models.LedgerEntry
		if err := base.Preload("Category").Scopes(pagination.Paginate(page)).
			Order("due_date DESC").Find(&entries).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
		return &result, nil
	}

	var entries []models.LedgerEntry
	if err := base.Preload("Category").Order("due_date DESC").Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	entries = report.FilterRange(entries, filter.From, filter.To)

	totalItems := int64(len(entries))
	start := (page.Page - 1) * page.PageSize
	if start > len(entries) {
		start = len(entries)
	}
	end := start + page.PageSize
	if end > len(entries) {
		end = len(entries)
	}

	result := pagination.NewPageResponse(entries[start:end], page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetEntryByID retrieves a ledger entry by ID with its category preloaded.
func (s *ledgerService) GetEntryByID(id string) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := s.db.Preload("Category").Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// UpdateEntry updates an existing entry's fields. Status transitions go
// through SetEntryStatus so the payment date stays consistent.
func (s *ledgerService) UpdateEntry(id string, entry *models.LedgerEntry) (*models.LedgerEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	existing, err := s.GetEntryByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"kind":        entry.Kind,
		"amount":      entry.Amount,
		"due_date":    entry.DueDate,
		"category_id": entry.CategoryID,
		"payee_id":    entry.PayeeID,
		"payee_kind":  entry.PayeeKind,
		"description": entry.Description,
	}
	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetEntryByID(id)
}

// SetEntryStatus transitions an entry between pending and paid. Marking
// paid stamps the payment date when one is not already set; marking
// pending clears it.
func (s *ledgerService) SetEntryStatus(id string, status models.EntryStatus) (*models.LedgerEntry, error) {
	if status != models.EntryStatusPending && status != models.EntryStatusPaid {
		return nil, apperrors.ErrInvalidEntryStatus
	}

	entry, err := s.GetEntryByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": status}
	if status == models.EntryStatusPaid {
		if entry.PaymentDate == nil {
			updates["payment_date"] = nowFunc()
		}
	} else {
		updates["payment_date"] = nil
	}
	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetEntryByID(id)
}

// DeleteEntry soft-deletes a ledger entry
func (s *ledgerService) DeleteEntry(id string) error {
	entry, err := s.GetEntryByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
