package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/surampallyshivasai/Wearsy/controllers/order"
	productcontroller "github.com/surampallyshivasai/Wearsy/controllers/product"
	"github.com/surampallyshivasai/Wearsy/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. All of them require a
// token carrying the admin claim.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		orderMgmt := adminGroup.Group("/orders")
		{
			orderMgmt.GET("", orderControllers.GetAllOrdersHandler(db))
			orderMgmt.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
			orderMgmt.GET("/ws", orderControllers.OrderFeedHandler)
		}

		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}
