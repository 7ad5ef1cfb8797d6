package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"gorm.io/gorm"
)

// OrderItemView is an order item joined with the variant's live stock, for
// display and for the frontend's own estimate preview.
type OrderItemView struct {
	VariantID         uint    `json:"variant_id"`
	VariantName       string  `json:"variant_name"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"quantity"`
	QuantityAvailable int     `json:"quantity_available"`
	TotalPrice        float64 `json:"total_price"`
}

type OrderDetail struct {
	models.Order
	Items []OrderItemView `json:"items"`
}

// GetOrderByID returns the order with its item views. Only the owner may
// read it unless the caller is an admin.
func GetOrderByID(db *gorm.DB, orderID, callerID uint, isAdmin bool) (*OrderDetail, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, apperrors.ErrNotFound)
		}
		return nil, apperrors.Storage(err)
	}
	if order.CustomerID != callerID && !isAdmin {
		return nil, fmt.Errorf("order %d belongs to another customer: %w", orderID, apperrors.ErrForbidden)
	}

	items := []OrderItemView{}
	err := db.Table("order_items").
		Select(`order_items.variant_id,
			order_items.variant_name,
			order_items.price,
			order_items.quantity,
			COALESCE(inventories.quantity_available, 0) AS quantity_available,
			order_items.price * order_items.quantity AS total_price`).
		Joins("LEFT JOIN inventories ON inventories.variant_id = order_items.variant_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.order_item_id").
		Scan(&items).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	// nil the raw rows so the joined views are the only "items" marshalled
	order.Items = nil
	return &OrderDetail{Order: order, Items: items}, nil
}

// GetUserOrders returns the user's orders with nested items, newest purchase
// first.
func GetUserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.
		Where("customer_id = ?", userID).
		Preload("Items").
		Order("purchased_time DESC").
		Find(&orders).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return orders, nil
}

// GetAllOrders returns every order without item nesting, newest purchase
// first. Admin only; enforced at the route.
func GetAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Order("purchased_time DESC").Find(&orders).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return orders, nil
}

// UpdateOrderStatus performs an administrative status change, holding the
// same forward-only transition rule as finalization.
func UpdateOrderStatus(db *gorm.DB, orderID uint, status models.OrderStatus) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockForUpdate(tx).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, apperrors.ErrNotFound)
			}
			return apperrors.Storage(err)
		}
		if !order.OrderStatus.CanTransitionTo(status) {
			return apperrors.Validation(fmt.Sprintf(
				"cannot move order %d from %s to %s", orderID, order.OrderStatus, status))
		}
		if err := tx.Model(&models.Order{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"order_status": status,
				"updated_at":   time.Now(),
			}).Error; err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	broadcastOrderChange(db, orderID)
	return nil
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusProcessing:
		return models.OrderStatusProcessing, nil
	case models.OrderStatusConfirmed:
		return models.OrderStatusConfirmed, nil
	case models.OrderStatusFailed:
		return models.OrderStatusFailed, nil
	default:
		return "", apperrors.Validation("invalid order status: " + status)
	}
}
