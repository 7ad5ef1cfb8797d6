package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/kavienanj/single-vendor-ecommerce/controllers/catalog"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public browse endpoints. They allow
// anonymous access; a present token still attaches the caller's identity.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	browse := r.Group("/")
	browse.Use(middleware.OptionalAuth)
	{
		browse.GET("/products", catalogControllers.GetProducts(db))
		browse.GET("/products/:id", catalogControllers.GetProductByID(db))
		browse.GET("/variants", catalogControllers.GetVariants(db))
		browse.GET("/delivery-locations", catalogControllers.GetDeliveryLocations(db))
	}
}
