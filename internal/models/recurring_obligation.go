package models

import "time"

// ObligationStatus represents whether a recurring obligation is in effect
type ObligationStatus string

const (
	ObligationStatusActive   ObligationStatus = "active"
	ObligationStatusInactive ObligationStatus = "inactive"
)

// RecurringObligation is a template for a monthly bill: on creation it is
// expanded into concrete pending ledger entries, one per elapsed month.
type RecurringObligation struct {
	Base
	Description string           `gorm:"not null" json:"description"`
	Amount      int64            `gorm:"type:bigint;not null" json:"amount"`
	Kind        EntryKind        `gorm:"not null" json:"kind"`
	CategoryID  string           `gorm:"type:uuid;not null" json:"category_id"`
	PayeeID     *string          `gorm:"type:uuid" json:"payee_id,omitempty"`
	PayeeKind   *PayeeKind       `json:"payee_kind,omitempty"`
	DueDay      int              `gorm:"not null" json:"due_day"`
	StartDate   time.Time        `gorm:"not null" json:"start_date"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	Status      ObligationStatus `gorm:"not null;default:'active'" json:"status"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
