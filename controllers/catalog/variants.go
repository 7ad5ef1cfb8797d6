package catalogControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"gorm.io/gorm"
)

type VariantInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	ImageURL  string  `json:"image_url"`
}

type StockInput struct {
	QuantityAvailable *int `json:"quantity_available" binding:"required"`
}

// VariantView joins a variant with its available stock.
type VariantView struct {
	ProductID         uint    `json:"product_id"`
	VariantID         uint    `json:"variant_id"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	ImageURL          string  `json:"image_url"`
	QuantityAvailable int     `json:"quantity_available"`
}

// GET /variants
func GetVariants(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		variants := []VariantView{}
		err := db.Table("variants").
			Select(`variants.product_id,
				variants.variant_id,
				variants.name,
				variants.price,
				variants.image_url,
				COALESCE(inventories.quantity_available, 0) AS quantity_available`).
			Joins("LEFT JOIN inventories ON inventories.variant_id = variants.variant_id").
			Order("variants.product_id, variants.variant_id").
			Scan(&variants).Error
		if err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, variants)
	}
}

// POST /variants (admin) — also opens the inventory row at zero stock.
func CreateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("product %d: %w", input.ProductID, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}

		variant := models.Variant{
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			ImageURL:  input.ImageURL,
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&variant).Error; err != nil {
				return err
			}
			return tx.Create(&models.Inventory{VariantID: variant.VariantID}).Error
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusCreated, variant)
	}
}

// PUT /variants/:id (admin)
func UpdateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid variant id"})
			return
		}

		var input VariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		var variant models.Variant
		if err := db.First(&variant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("variant %d: %w", id, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}

		variant.Name = input.Name
		variant.Price = input.Price
		variant.ImageURL = input.ImageURL
		if err := db.Save(&variant).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, variant)
	}
}

// PUT /variants/:id/stock (admin) — the single write path into Inventory.
// The order pipeline never mutates stock.
func UpdateStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid variant id"})
			return
		}

		var input StockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}
		if *input.QuantityAvailable < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity_available must not be negative"})
			return
		}

		var variant models.Variant
		if err := db.First(&variant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("variant %d: %w", id, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}

		inv := models.Inventory{VariantID: uint(id), QuantityAvailable: *input.QuantityAvailable}
		if err := db.Save(&inv).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, inv)
	}
}
