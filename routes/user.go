package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/surampallyshivasai/Wearsy/controllers/address"
	cartControllers "github.com/surampallyshivasai/Wearsy/controllers/cart"
	orderControllers "github.com/surampallyshivasai/Wearsy/controllers/order"
	"github.com/surampallyshivasai/Wearsy/middleware"
)

// SetupUserRoutes registers the token-protected storefront endpoints: cart,
// orders, and the address book.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetUserCart(db))
		cartGroup.POST("", cartControllers.AddCartItem(db))
		cartGroup.PUT("/:id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/:id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearUserCart(db))
	}

	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))
		orderGroup.POST("", orderControllers.PlaceOrderHandler(db))
	}

	addressGroup := r.Group("/addresses")
	addressGroup.Use(middleware.ValidateToken)
	{
		addressGroup.GET("", addressControllers.GetAddresses(db))
		addressGroup.POST("", addressControllers.CreateAddress(db))
		addressGroup.DELETE("/:id", addressControllers.DeleteAddressHandler(db))
	}
}
