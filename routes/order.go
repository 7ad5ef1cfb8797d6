package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/kavienanj/single-vendor-ecommerce/controllers/order"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// websocket feed for live order updates
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		// owner (or admin) reads and finalizes a specific order
		orders.GET("/:orderID", middleware.RequireAuth, orderControllers.GetOrderByIDHandler(db))
		orders.POST("/:orderID/process", middleware.RequireAuth, orderControllers.ProcessOrderHandler(db))
	}

	r.GET("/my-orders", middleware.RequireAuth, orderControllers.GetMyOrdersHandler(db))
}
