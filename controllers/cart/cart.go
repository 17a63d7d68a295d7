package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/surampallyshivasai/Wearsy/middleware"
	"github.com/surampallyshivasai/Wearsy/models"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrProductNotFound = errors.New("product does not exist")
	ErrLineNotFound    = errors.New("cart item not found")
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// -------- Core Logic --------

// AddItem increments the existing (user, product) line by quantity, or
// inserts a new line when none exists.
func AddItem(db *gorm.DB, userID, productID uint, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, ErrProductNotFound
		}
		return models.CartItem{}, err
	}

	var item models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
		return item, db.Create(&item).Error
	}
	if err != nil {
		return models.CartItem{}, err
	}

	item.Quantity += quantity
	return item, db.Save(&item).Error
}

// SetQuantity is an absolute set on a line the user owns.
func SetQuantity(db *gorm.DB, userID, lineID uint, quantity int) (models.CartItem, error) {
	if quantity <= 0 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	var item models.CartItem
	err := db.Where("id = ? AND user_id = ?", lineID, userID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, ErrLineNotFound
	}
	if err != nil {
		return models.CartItem{}, err
	}

	item.Quantity = quantity
	return item, db.Save(&item).Error
}

func RemoveItem(db *gorm.DB, userID, lineID uint) error {
	result := db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

func Clear(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// ListItems returns the user's lines joined with the current product record.
func ListItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// -------- Handlers --------

// GET /cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := ListItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddItem(db, userID, input.ProductID, input.Quantity)
		switch {
		case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrProductNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Added to cart successfully", "item": item})
		}
	}
}

// PUT /cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lineID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := SetQuantity(db, userID, uint(lineID), input.Quantity)
		switch {
		case errors.Is(err, ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "item": item})
		}
	}
}

// DELETE /cart/:id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lineID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		switch err := RemoveItem(db, userID, uint(lineID)); {
		case errors.Is(err, ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
		}
	}
}

// DELETE /cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := Clear(db, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
