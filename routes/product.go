package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/surampallyshivasai/Wearsy/controllers/product"
	"github.com/surampallyshivasai/Wearsy/middleware"
)

// SetupProductRoutes registers catalog browsing (public) and product
// management (admin token required) under "/products".
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))        // GET /products?gender=&category=&search=
		products.GET("/:id", productcontroller.GetProductByID(db)) // GET /products/:id

		mutations := products.Group("")
		mutations.Use(middleware.ValidateToken, middleware.RequireAdmin)
		{
			mutations.POST("", productcontroller.CreateProduct(db))
			mutations.PUT("/:id", productcontroller.UpdateProduct(db))
			mutations.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
