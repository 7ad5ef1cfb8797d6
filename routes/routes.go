package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, Cart, Order,
// Catalog and Admin route groups. Every route declares its capability
// explicitly: RequireAuth, OptionalAuth or RequireAdmin.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupCatalogRoutes(r, db)
	SetupAdminRoutes(r, db)
}
