package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up Auth, Catalog, User,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Catalog browsing (public) + product management (admin)
	SetupProductRoutes(r, db)

	// Cart, orders, and address book (JWT-protected)
	SetupUserRoutes(r, db)

	// Order management + export (admin-token-protected)
	SetupAdminRoutes(r, db)
}
