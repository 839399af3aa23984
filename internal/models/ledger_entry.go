package models

import "time"

// EntryStatus represents the payment state of a ledger entry
type EntryStatus string

const (
	EntryStatusPending EntryStatus = "pending"
	EntryStatusPaid    EntryStatus = "paid"
)

// PayeeKind identifies which registry a ledger entry's counterparty lives in
type PayeeKind string

const (
	PayeeKindClient   PayeeKind = "client"
	PayeeKindSupplier PayeeKind = "supplier"
)

// LedgerEntry represents one concrete dated financial transaction.
// Amounts are stored in cents to avoid floating-point drift; entries
// generated from a recurring obligation keep no link back to it.
type LedgerEntry struct {
	Base
	Kind        EntryKind   `gorm:"not null;index" json:"kind"`
	Amount      int64       `gorm:"type:bigint;not null" json:"amount"`
	DueDate     time.Time   `gorm:"not null;index" json:"due_date"`
	PaymentDate *time.Time  `json:"payment_date,omitempty"`
	CategoryID  *string     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	PayeeID     *string     `gorm:"type:uuid" json:"payee_id,omitempty"`
	PayeeKind   *PayeeKind  `json:"payee_kind,omitempty"`
	Description string      `json:"description"`
	Status      EntryStatus `gorm:"not null;default:'pending';index" json:"status"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// EffectiveDate returns the date an entry is bucketed by: paid entries by
// when they were paid, pending entries by when they are due.
func (e *LedgerEntry) EffectiveDate() time.Time {
	if e.Status == EntryStatusPaid && e.PaymentDate != nil {
		return *e.PaymentDate
	}
	return e.DueDate
}
