package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/kavienanj/single-vendor-ecommerce/controllers/catalog"
	orderControllers "github.com/kavienanj/single-vendor-ecommerce/controllers/order"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers everything behind the admin role: catalog
// writes, stock updates, delivery location management and order oversight.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/")
	admin.Use(middleware.RequireAdmin)
	{
		admin.POST("/products", catalogControllers.CreateProduct(db))
		admin.PUT("/products/:id", catalogControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", catalogControllers.DeleteProduct(db))

		admin.POST("/variants", catalogControllers.CreateVariant(db))
		admin.PUT("/variants/:id", catalogControllers.UpdateVariant(db))
		admin.PUT("/variants/:id/stock", catalogControllers.UpdateStock(db))

		admin.POST("/delivery-locations", catalogControllers.CreateDeliveryLocation(db))
		admin.PUT("/delivery-locations/:id", catalogControllers.UpdateDeliveryLocation(db))
		admin.DELETE("/delivery-locations/:id", catalogControllers.DeleteDeliveryLocation(db))

		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/orders/users/:userID", orderControllers.GetUserOrdersHandler(db))
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}
}
