package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kavienanj/single-vendor-ecommerce/controllers/cart"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/cart" endpoints. Every cart operation
// needs an identity, guest or customer, so the whole group requires auth.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireAuth)
	{
		cartGroup.GET("", cartControllers.ShowCartHandler(db))
		cartGroup.POST("", cartControllers.AddToCartHandler(db))               // increment or insert
		cartGroup.PUT("", cartControllers.SetQuantityHandler(db))              // absolute quantity, 0 deletes
		cartGroup.DELETE("/:variant_id", cartControllers.RemoveFromCartHandler(db))
		cartGroup.POST("/checkout", cartControllers.CheckoutHandler(db))
	}
}
