package models

// ChatMessage is a direct message between two users of the dashboard
type ChatMessage struct {
	Base
	SenderID    string `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID string `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Body        string `gorm:"not null" json:"body"`
	Read        bool   `gorm:"default:false" json:"read"`

	// Relationships
	Sender    User `gorm:"foreignKey:SenderID" json:"sender"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient"`
}
