package models

// EntryKind classifies a financial record as money in or money out.
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// Category represents a financial category used to group ledger entries
type Category struct {
	Base
	Name string    `gorm:"not null;uniqueIndex" json:"name"`
	Kind EntryKind `gorm:"not null" json:"kind"`

	// Relationships
	Entries []LedgerEntry `gorm:"foreignKey:CategoryID" json:"entries,omitempty"`
}
