package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kavienanj/single-vendor-ecommerce/apperrors"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"github.com/kavienanj/single-vendor-ecommerce/models"
	"gorm.io/gorm"
)

// GET /user
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, fmt.Errorf("user %d: %w", userID, apperrors.ErrNotFound))
				return
			}
			apperrors.Respond(c, apperrors.Storage(err))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
