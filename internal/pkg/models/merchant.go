package models

import "time"

// MerchantStatus tells whether a merchant takes orders
type MerchantStatus string

const (
	MerchantStatusActive   MerchantStatus = "active"
	MerchantStatusInactive MerchantStatus = "inactive"
)

// Merchant is an affiliated business customers can order from
type Merchant struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Category  string         `json:"category" db:"category"`
	ImageURL  *string        `json:"image_url,omitempty" db:"image_url"`
	Status    MerchantStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}
