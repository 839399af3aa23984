package models

import "time"

// Activity represents an agenda item: a piece of work requested by a client
type Activity struct {
	Base
	Responsible string     `gorm:"not null" json:"responsible"`
	Description string     `gorm:"not null" json:"description"`
	ClientName  string     `json:"client_name"`
	RequestedAt *time.Time `json:"requested_at,omitempty"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	Status      string     `json:"status"`
	Attachment  string     `json:"attachment"`
}
