package orderControllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcessOrderInput carries the delivery, contact and payment details the
// customer submits to finalize a Processing order. Field names follow the
// checkout form payload.
type ProcessOrderInput struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	DeliveryMethod     string `json:"deliveryMethod"`
	DeliveryLocationID uint   `json:"deliveryLocationId"`
	PaymentMethod      string `json:"paymentMethod"`
	CardNumber         string `json:"cardNumber"`
	CardExpiry         string `json:"cardExpiry"`
	CardCVC            string `json:"cardCVC"`
}

// validate checks everything that does not need the database. Card details
// are re-validated server-side but never persisted.
func (in *ProcessOrderInput) validate() error {
	if in.Name == "" || in.Phone == "" || in.Email == "" || in.Address == "" {
		return apperrors.Validation("name, phone, email and address are required")
	}
	switch in.DeliveryMethod {
	case models.DeliveryMethodDelivery, models.DeliveryMethodStorePickup:
	default:
		return apperrors.Validation("invalid delivery method")
	}
	switch in.PaymentMethod {
	case models.PaymentMethodCashOnDelivery:
	case models.PaymentMethodCard:
		if in.CardNumber == "" || in.CardExpiry == "" || in.CardCVC == "" {
			return apperrors.Validation("card number, expiry and CVC are required for card payment")
		}
	default:
		return apperrors.Validation("invalid payment method")
	}
	return nil
}

// locationMatchesMethod pairs city locations with home delivery and store
// locations with pickup.
func locationMatchesMethod(location *models.DeliveryLocation, method string) bool {
	switch method {
	case models.DeliveryMethodDelivery:
		return location.LocationType == models.LocationTypeCity
	case models.DeliveryMethodStorePickup:
		return location.LocationType == models.LocationTypeStore
	}
	return false
}

// ProcessOrder finalizes a Processing order owned by userID: it validates the
// submitted details, computes the delivery estimate from the chosen location's
// lead times and the live stock of every item, and moves the order to
// Confirmed.
//
// A validation failure is terminal: the order is committed as Failed and the
// validation error is returned. Precondition failures (missing order, wrong
// owner, already finalized) leave the order untouched.
func ProcessOrder(db *gorm.DB, orderID, userID uint, input ProcessOrderInput) error {
	var failure error

	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockForUpdate(tx).First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, apperrors.ErrNotFound)
			}
			return apperrors.Storage(err)
		}
		if order.CustomerID != userID {
			return fmt.Errorf("order %d belongs to another customer: %w", orderID, apperrors.ErrForbidden)
		}
		if order.OrderStatus != models.OrderStatusProcessing {
			return apperrors.Validation(
				fmt.Sprintf("order %d is already %s", orderID, order.OrderStatus))
		}

		if err := input.validate(); err != nil {
			failure = err
			return markFailed(tx, order.OrderID)
		}

		var location models.DeliveryLocation
		if err := tx.First(&location, input.DeliveryLocationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				failure = fmt.Errorf("delivery location %d: %w",
					input.DeliveryLocationID, apperrors.ErrNotFound)
				return markFailed(tx, order.OrderID)
			}
			return apperrors.Storage(err)
		}
		if !locationMatchesMethod(&location, input.DeliveryMethod) {
			failure = apperrors.Validation(fmt.Sprintf(
				"delivery location %q does not support %s",
				location.LocationName, input.DeliveryMethod))
			return markFailed(tx, order.OrderID)
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.OrderID).Find(&items).Error; err != nil {
			return apperrors.Storage(err)
		}

		estimate, err := deliveryEstimate(tx, items, &location)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"contact_email":        input.Email,
			"contact_phone":        input.Phone,
			"delivery_address":     input.Address,
			"delivery_method":      input.DeliveryMethod,
			"delivery_location_id": location.DeliveryLocationID,
			"payment_method":       input.PaymentMethod,
			"delivery_estimate":    estimate,
			"order_status":         models.OrderStatusConfirmed,
			"updated_at":           time.Now(),
		}
		if err := tx.Model(&models.Order{}).
			Where("order_id = ?", order.OrderID).
			Updates(updates).Error; err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// both outcomes (Confirmed and Failed) are pushed to the feed
	broadcastOrderChange(db, orderID)
	return failure
}

// deliveryEstimate picks the location's with-stock lead time when every item
// is fully coverable by available inventory, otherwise the without-stock one.
// A variant with no inventory row counts as out of stock.
func deliveryEstimate(tx *gorm.DB, items []models.OrderItem, location *models.DeliveryLocation) (int, error) {
	allInStock := true
	for _, item := range items {
		var inv models.Inventory
		err := tx.First(&inv, "variant_id = ?", item.VariantID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			allInStock = false
		case err != nil:
			return 0, apperrors.Storage(err)
		case inv.QuantityAvailable < item.Quantity:
			allInStock = false
		}
		if !allInStock {
			break
		}
	}
	if allInStock {
		return location.WithStockDeliveryDays, nil
	}
	return location.WithoutStockDeliveryDays, nil
}

// markFailed commits the terminal Failed status. It must return nil so the
// surrounding transaction commits the write; the caller reports the original
// validation failure separately.
func markFailed(tx *gorm.DB, orderID uint) error {
	err := tx.Model(&models.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"order_status": models.OrderStatusFailed,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
