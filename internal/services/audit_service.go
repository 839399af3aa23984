package services

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	apperrors "atelier/internal/errors"
	"atelier/internal/logger"
	"atelier/internal/models"
)

// auditLogLimit caps how many log rows a listing returns.
const auditLogLimit = 100

// auditService records who changed what. Writes are best-effort: a failed
// audit insert must never fail the business operation it describes.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an action against an entity. Errors are logged and swallowed.
func (s *auditService) Log(userID, userName, action, entity, entityID string, details map[string]any) {
	var encoded string
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			logger.Get().Warnw("audit details not serializable", "action", action, "entity", entity, "error", err)
		} else {
			encoded = string(raw)
		}
	}

	entry := models.AuditLog{
		UserID:   userID,
		UserName: userName,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Details:  encoded,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		logger.Get().Errorw("audit log write failed",
			"action", action,
			"entity", entity,
			"entity_id", entityID,
			"error", err)
	}
}

// ListLogs returns the newest matching log rows, at most auditLogLimit.
func (s *auditService) ListLogs(filter AuditFilter) ([]models.AuditLog, error) {
	base := s.db.Model(&models.AuditLog{})
	if filter.UserName != "" {
		base = base.Where("LOWER(user_name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(filter.UserName))+"%")
	}
	if filter.Action != "" {
		base = base.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		base = base.Where("entity = ?", filter.Entity)
	}

	var logs []models.AuditLog
	if err := base.Order("created_at DESC").Limit(auditLogLimit).Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return logs, nil
}
