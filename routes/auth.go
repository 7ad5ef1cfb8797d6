package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kavienanj/single-vendor-ecommerce/auth"
	"github.com/kavienanj/single-vendor-ecommerce/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration/login (anonymous) and the profile
// endpoint (authenticated).
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db)) // customer or guest bootstrap
		authGroup.POST("/login", auth.Login(db))
	}

	r.GET("/user", middleware.RequireAuth, auth.GetProfile(db))
}
