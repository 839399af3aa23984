package models

// AuditLog records create/update/delete operations on business records.
// UserName is denormalized so entries survive user deletion.
type AuditLog struct {
	Base
	UserID   string `gorm:"type:uuid;index" json:"user_id"`
	UserName string `gorm:"not null" json:"user_name"`
	Action   string `gorm:"not null" json:"action"`
	Entity   string `gorm:"not null" json:"entity"`
	EntityID string `json:"entity_id"`
	Details  string `json:"details,omitempty"`
}
