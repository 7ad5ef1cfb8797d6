package models

import "time"

// CartLine holds one (user, variant) entry of the cart. Quantity is always
// positive; setting it to zero deletes the row instead.
type CartLine struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	VariantID uint      `gorm:"primaryKey;autoIncrement:false" json:"variant_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
