package models

const (
	LocationTypeCity  = "city"  // home delivery destination
	LocationTypeStore = "store" // pickup point
)

type DeliveryLocation struct {
	DeliveryLocationID       uint   `gorm:"primaryKey" json:"delivery_location_id"`
	LocationName             string `gorm:"not null" json:"location_name"`
	LocationType             string `gorm:"type:VARCHAR(10);not null" json:"location_type"`
	WithStockDeliveryDays    int    `json:"with_stock_delivery_days"`
	WithoutStockDeliveryDays int    `json:"without_stock_delivery_days"`
}
