package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/surampallyshivasai/Wearsy/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints plus the admin login.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
	}

	r.POST("/admin/login", auth.AdminLogin(db))
}
