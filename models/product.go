package models

import "time"

type Product struct {
	ProductID   uint      `gorm:"primaryKey" json:"product_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	SKU         string    `gorm:"uniqueIndex" json:"sku"`
	Weight      float64   `json:"weight"`
	Variants    []Variant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Variant is the purchasable SKU-level unit; price lives here, stock lives
// on the Inventory row keyed by the same variant_id.
type Variant struct {
	VariantID uint      `gorm:"primaryKey" json:"variant_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Inventory struct {
	VariantID         uint `gorm:"primaryKey;autoIncrement:false" json:"variant_id"`
	QuantityAvailable int  `json:"quantity_available"`
}
