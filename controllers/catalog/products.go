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

type ProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	SKU         string  `json:"sku" binding:"required"`
	Weight      float64 `json:"weight"`
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Variants").Order("product_id").Find(&products).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}

		var product models.Product
		if err := db.Preload("Variants").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Title:       input.Title,
			Description: input.Description,
			SKU:         input.SKU,
			Weight:      input.Weight,
		}
		if err := db.Create(&product).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /products/:id (admin)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}

		product.Title = input.Title
		product.Description = input.Description
		product.SKU = input.SKU
		product.Weight = input.Weight
		if err := db.Save(&product).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /products/:id (admin)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			apperrors.Respond(c, apperrors.Storage(result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apperrors.Respond(c, fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
	}
}
