package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/models"
	"atelier/internal/pagination"
)

// activityService handles agenda activity logic.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// CreateActivity creates a new agenda activity
func (s *activityService) CreateActivity(activity *models.Activity) (*models.Activity, error) {
	if activity.Responsible == "" || activity.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "responsible and description are required")
	}

	if err := s.db.Create(activity).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return activity, nil
}

// ListActivities retrieves a paginated list of activities, most recently
// requested first; activities without a request date sort last.
func (s *activityService) ListActivities(page pagination.PageRequest) (*pagination.PageResponse[models.Activity], error) {
	page.Defaults()

	base := s.db.Model(&models.Activity{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var activities []models.Activity
	if err := base.Scopes(pagination.Paginate(page)).
		Order("requested_at DESC NULLS LAST").Find(&activities).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(activities, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetActivityByID retrieves an activity by ID
func (s *activityService) GetActivityByID(id string) (*models.Activity, error) {
	var activity models.Activity
	if err := s.db.Where("id = ?", id).First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &activity, nil
}

// UpdateActivity updates an existing activity
func (s *activityService) UpdateActivity(id string, activity *models.Activity) (*models.Activity, error) {
	if activity.Responsible == "" || activity.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "responsible and description are required")
	}

	existing, err := s.GetActivityByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"responsible":  activity.Responsible,
		"description":  activity.Description,
		"client_name":  activity.ClientName,
		"requested_at": activity.RequestedAt,
		"performed_at": activity.PerformedAt,
		"delivered_at": activity.DeliveredAt,
		"status":       activity.Status,
		"attachment":   activity.Attachment,
	}
	if err := s.db.Model(existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return existing, nil
}

// DeleteActivity soft-deletes an activity
func (s *activityService) DeleteActivity(id string) error {
	activity, err := s.GetActivityByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(activity).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
