package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Checkout converts the user's cart into a new Processing order in a single
// transaction: lock the cart lines, snapshot each variant's current price
// into an order item, persist the total and clear the cart. Any failure
// rolls the whole sequence back and leaves the cart untouched.
//
// The row locks serialize concurrent checkouts for the same user, so two
// requests can never both turn the same cart snapshot into orders.
//
// Inventory is not read or reserved here; stock only feeds the delivery
// estimate during finalization.
func Checkout(db *gorm.DB, userID uint) (uint, error) {
	var orderID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		var lines []models.CartLine
		if err := lockForUpdate(tx).
			Where("user_id = ?", userID).
			Order("variant_id").
			Find(&lines).Error; err != nil {
			return apperrors.Storage(err)
		}
		if len(lines) == 0 {
			return apperrors.ErrEmptyCart
		}

		order := models.Order{
			CustomerID:    userID,
			OrderRef:      newOrderRef(),
			OrderStatus:   models.OrderStatusProcessing,
			PurchasedTime: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperrors.Storage(err)
		}

		var total float64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			var variant models.Variant
			if err := tx.First(&variant, line.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("variant %d: %w", line.VariantID, apperrors.ErrNotFound)
				}
				return apperrors.Storage(err)
			}

			items = append(items, models.OrderItem{
				OrderID:     order.OrderID,
				VariantID:   variant.VariantID,
				VariantName: variant.Name,
				Quantity:    line.Quantity,
				Price:       variant.Price,
			})
			total += variant.Price * float64(line.Quantity)
		}

		if err := tx.Create(&items).Error; err != nil {
			return apperrors.Storage(err)
		}
		if err := tx.Model(&models.Order{}).
			Where("order_id = ?", order.OrderID).
			Update("total_amount", total).Error; err != nil {
			return apperrors.Storage(err)
		}
		if err := tx.Where("user_id = ?", userID).
			Delete(&models.CartLine{}).Error; err != nil {
			return apperrors.Storage(err)
		}

		orderID = order.OrderID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// lockForUpdate applies SELECT ... FOR UPDATE. SQLite (used by the tests)
// has no row locks; its single-writer transaction already serializes there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /cart/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		orderID, err := Checkout(db, userID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Checkout successful!",
			"order_id": orderID,
		})
	}
}
