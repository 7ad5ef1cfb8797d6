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

type DeliveryLocationInput struct {
	LocationName             string `json:"location_name" binding:"required"`
	LocationType             string `json:"location_type" binding:"required"`
	WithStockDeliveryDays    int    `json:"with_stock_delivery_days"`
	WithoutStockDeliveryDays int    `json:"without_stock_delivery_days"`
}

func (in *DeliveryLocationInput) validate() error {
	if in.LocationType != models.LocationTypeCity && in.LocationType != models.LocationTypeStore {
		return apperrors.Validation("location_type must be city or store")
	}
	if in.WithStockDeliveryDays < 0 || in.WithoutStockDeliveryDays < 0 {
		return apperrors.Validation("delivery day counts must not be negative")
	}
	return nil
}

// GET /delivery-locations
func GetDeliveryLocations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		locations := []models.DeliveryLocation{}
		if err := db.Order("delivery_location_id").Find(&locations).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"deliveryLocations": locations})
	}
}

// POST /delivery-locations (admin)
func CreateDeliveryLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DeliveryLocationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			apperrors.Respond(c, err)
			return
		}

		location := models.DeliveryLocation{
			LocationName:             input.LocationName,
			LocationType:             input.LocationType,
			WithStockDeliveryDays:    input.WithStockDeliveryDays,
			WithoutStockDeliveryDays: input.WithoutStockDeliveryDays,
		}
		if err := db.Create(&location).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusCreated, location)
	}
}

// PUT /delivery-locations/:id (admin)
func UpdateDeliveryLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid delivery location id"})
			return
		}

		var input DeliveryLocationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input: " + err.Error()})
			return
		}
		if err := input.validate(); err != nil {
			apperrors.Respond(c, err)
			return
		}

		var location models.DeliveryLocation
		if err := db.First(&location, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("delivery location %d: %w", id, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}

		location.LocationName = input.LocationName
		location.LocationType = input.LocationType
		location.WithStockDeliveryDays = input.WithStockDeliveryDays
		location.WithoutStockDeliveryDays = input.WithoutStockDeliveryDays
		if err := db.Save(&location).Error; err != nil {
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, location)
	}
}

// DELETE /delivery-locations/:id (admin)
func DeleteDeliveryLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid delivery location id"})
			return
		}

		result := db.Delete(&models.DeliveryLocation{}, id)
		if result.Error != nil {
			apperrors.Respond(c, apperrors.Storage(result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apperrors.Respond(c, fmt.Errorf("delivery location %d: %w", id, apperrors.ErrNotFound))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Delivery location deleted successfully!"})
	}
}
