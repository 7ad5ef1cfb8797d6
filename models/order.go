package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // created by checkout, awaiting details
	OrderStatusConfirmed  OrderStatus = "Confirmed"  // finalized successfully, terminal
	OrderStatusFailed     OrderStatus = "Failed"     // finalize failed, terminal
)

// CanTransitionTo enforces the one-way status flow:
// Processing -> Confirmed | Failed. Terminal statuses never move again.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderStatusProcessing &&
		(next == OrderStatusConfirmed || next == OrderStatusFailed)
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusFailed
}

const (
	DeliveryMethodDelivery    = "delivery"
	DeliveryMethodStorePickup = "store_pickup"

	PaymentMethodCard           = "card"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

type Order struct {
	OrderID            uint        `gorm:"primaryKey" json:"order_id"`
	CustomerID         uint        `gorm:"index;not null" json:"customer_id"`
	OrderRef           string      `gorm:"uniqueIndex" json:"order_ref"`
	ContactEmail       *string     `json:"contact_email"`
	ContactPhone       *string     `json:"contact_phone"`
	DeliveryAddress    *string     `json:"delivery_address"`
	DeliveryMethod     *string     `json:"delivery_method"`
	DeliveryLocationID *uint       `json:"delivery_location_id"`
	PaymentMethod      *string     `json:"payment_method"`
	TotalAmount        float64     `json:"total_amount"`
	OrderStatus        OrderStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"order_status"`
	PurchasedTime      time.Time   `json:"purchased_time"`
	// Day count chosen from the delivery location's lead times; nil until
	// the order is finalized.
	DeliveryEstimate *int        `json:"delivery_estimate"`
	Items            []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// OrderItem snapshots the variant's name and price at checkout time.
// Rows are immutable after creation; later price changes never touch them.
type OrderItem struct {
	OrderItemID uint    `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint    `gorm:"index;not null" json:"order_id"`
	VariantID   uint    `gorm:"not null" json:"variant_id"`
	VariantName string  `json:"variant_name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Price       float64 `gorm:"not null" json:"price"`
}
