package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"gorm.io/gorm"
)

type CartLineInput struct {
	VariantID uint `json:"variant_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CartLineView is one cart row joined with the variant display fields the
// storefront needs (name, price, image, live stock) plus the line total.
type CartLineView struct {
	VariantID         uint    `json:"variant_id"`
	VariantName       string  `json:"variant_name"`
	Price             float64 `json:"price"`
	ImageURL          string  `json:"image_url"`
	Quantity          int     `json:"quantity"`
	QuantityAvailable int     `json:"quantity_available"`
	TotalPrice        float64 `json:"total_price"`
}

// AddToCart places a variant in the user's cart or increments the existing
// line. It can only grow a line; use SetQuantity to shrink or remove one.
func AddToCart(db *gorm.DB, userID, variantID uint, quantity int) error {
	if quantity <= 0 {
		return apperrors.Validation("quantity must be at least 1")
	}

	var variant models.Variant
	if err := db.First(&variant, variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("variant %d: %w", variantID, apperrors.ErrNotFound)
		}
		return apperrors.Storage(err)
	}

	var line models.CartLine
	err := db.Where("user_id = ? AND variant_id = ?", userID, variantID).First(&line).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = models.CartLine{
			UserID:    userID,
			VariantID: variantID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&line).Error; err != nil {
			return apperrors.Storage(err)
		}
	case err != nil:
		return apperrors.Storage(err)
	default:
		line.Quantity += quantity
		if err := db.Save(&line).Error; err != nil {
			return apperrors.Storage(err)
		}
	}
	return nil
}

// SetQuantity sets the absolute quantity of a cart line. Zero deletes the
// line; negative values are rejected without mutation.
func SetQuantity(db *gorm.DB, userID, variantID uint, quantity int) error {
	if quantity < 0 {
		return apperrors.Validation("quantity must not be negative")
	}
	if quantity == 0 {
		return RemoveFromCart(db, userID, variantID)
	}

	var line models.CartLine
	err := db.Where("user_id = ? AND variant_id = ?", userID, variantID).First(&line).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		var variant models.Variant
		if err := db.First(&variant, variantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("variant %d: %w", variantID, apperrors.ErrNotFound)
			}
			return apperrors.Storage(err)
		}
		line = models.CartLine{
			UserID:    userID,
			VariantID: variantID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}
		if err := db.Create(&line).Error; err != nil {
			return apperrors.Storage(err)
		}
	case err != nil:
		return apperrors.Storage(err)
	default:
		line.Quantity = quantity
		if err := db.Save(&line).Error; err != nil {
			return apperrors.Storage(err)
		}
	}
	return nil
}

// RemoveFromCart deletes a cart line. Removing an absent line is a no-op.
func RemoveFromCart(db *gorm.DB, userID, variantID uint) error {
	result := db.Where("user_id = ? AND variant_id = ?", userID, variantID).
		Delete(&models.CartLine{})
	if result.Error != nil {
		return apperrors.Storage(result.Error)
	}
	return nil
}

// ShowCart returns the user's cart lines joined with variant display data.
func ShowCart(db *gorm.DB, userID uint) ([]CartLineView, error) {
	lines := []CartLineView{}
	err := db.Table("cart_lines").
		Select(`cart_lines.variant_id,
			variants.name AS variant_name,
			variants.price,
			variants.image_url,
			cart_lines.quantity,
			COALESCE(inventories.quantity_available, 0) AS quantity_available,
			variants.price * cart_lines.quantity AS total_price`).
		Joins("JOIN variants ON variants.variant_id = cart_lines.variant_id").
		Joins("LEFT JOIN inventories ON inventories.variant_id = cart_lines.variant_id").
		Where("cart_lines.user_id = ?", userID).
		Order("cart_lines.variant_id").
		Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return lines, nil
}

// -------- Handlers --------

// POST /cart
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		if err := AddToCart(db, userID, input.VariantID, input.Quantity); err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to cart successfully!"})
	}
}

// PUT /cart
func SetQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		if err := SetQuantity(db, userID, input.VariantID, input.Quantity); err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully!"})
	}
}

// DELETE /cart/:variant_id
func RemoveFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		variantID, err := strconv.Atoi(c.Param("variant_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid variant id"})
			return
		}

		if err := RemoveFromCart(db, userID, uint(variantID)); err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from cart successfully!"})
	}
}

// GET /cart
func ShowCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		lines, err := ShowCart(db, userID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}
