package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/surampallyshivasai/Wearsy/models"
)

type ProductInput struct {
	Name     string   `json:"name" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
	Image    string   `json:"image" binding:"required"`
	Gender   string   `json:"gender" binding:"required"`
	Category string   `json:"category" binding:"required"`
}

// POST /products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
			return
		}
		if !models.ValidGender(input.Gender) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Gender must be one of men, women, kids"})
			return
		}

		product := models.Product{
			Name:     input.Name,
			Price:    *input.Price,
			Image:    input.Image,
			Gender:   input.Gender,
			Category: input.Category,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
