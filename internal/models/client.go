package models

// Client represents a customer of the agency
type Client struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
	TaxID   string `json:"tax_id"` // CPF or CNPJ
}
