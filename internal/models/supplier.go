package models

// Supplier represents a vendor the agency buys services or goods from
type Supplier struct {
	Base
	Name       string `gorm:"not null" json:"name"`
	Kind       string `gorm:"not null" json:"kind"`
	Document   string `json:"document"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes"`
}
