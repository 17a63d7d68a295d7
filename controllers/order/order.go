package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/surampallyshivasai/Wearsy/middleware"
	"github.com/surampallyshivasai/Wearsy/models"
)

var (
	ErrEmptyOrder     = errors.New("order must contain at least one item")
	ErrInvalidPayment = errors.New("invalid payment method")
	ErrInvalidItem    = errors.New("invalid order item")
	ErrTotalMismatch  = errors.New("total does not match item prices")
	ErrInvalidStatus  = errors.New("invalid order status")
	ErrOrderNotFound  = errors.New("order not found")
)

// totalTolerance absorbs float rounding between client and server arithmetic.
const totalTolerance = 0.01

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type ShippingInput struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

type PlaceOrderRequest struct {
	Items         []OrderItemInput `json:"items"`
	Total         float64          `json:"total"`
	PaymentMethod string           `json:"payment_method"`
	Shipping      ShippingInput    `json:"shipping"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "processing":
		return models.OrderStatusProcessing, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "in transit":
		return models.OrderStatusInTransit, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	default:
		return "", ErrInvalidStatus
	}
}

func mapPaymentMethod(method string) (string, error) {
	switch strings.ToLower(method) {
	case "upi":
		return models.PaymentMethodUPI, nil
	case "card":
		return models.PaymentMethodCard, nil
	case "cod":
		return models.PaymentMethodCOD, nil
	default:
		return "", ErrInvalidPayment
	}
}

// generateOrderRef builds the externally visible order identifier. The
// millisecond prefix keeps refs sorting in creation order; the random suffix
// guards against two checkouts landing in the same millisecond.
func generateOrderRef() string {
	return fmt.Sprintf("ORDER%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// summarizeItems renders "Shirt (x2), Jeans (x1)" for order listings.
func summarizeItems(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", it.ProductName, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

// -------- Core Logic --------

// PlaceOrder creates an order from the submitted items. Prices are read from
// the catalog, never from the client, and the client total must agree with
// the recomputed sum. The order row, its items, and the cart clear commit as
// one transaction; any failure leaves cart and orders untouched.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}
	paymentMethod, err := mapPaymentMethod(req.PaymentMethod)
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return ErrInvalidItem
			}
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidItem
				}
				return err
			}

			total += product.Price * float64(item.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       product.Price,
			})
		}

		if math.Abs(total-req.Total) > totalTolerance {
			return ErrTotalMismatch
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			Items:           orderItems,
			TotalAmount:     total,
			PaymentMethod:   paymentMethod,
			Status:          models.OrderStatusProcessing,
			ShippingAddress: req.Shipping.Address,
			ShippingName:    req.Shipping.Name,
			ShippingPhone:   req.Shipping.Phone,
			ShippingCity:    req.Shipping.City,
			ShippingPincode: req.Shipping.Pincode,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Checkout empties the cart as part of the same unit of work.
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// ListUserOrders returns the user's orders newest first.
func ListUserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListAllOrders returns every order with the owning user, newest first.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("User").
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// SetStatus updates the one mutable order field. An unrecognized status
// leaves the stored value unchanged.
func SetStatus(db *gorm.DB, orderID uint, status string) (models.Order, error) {
	newStatus, err := mapOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}

	result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
	if result.Error != nil {
		return models.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Order{}, ErrOrderNotFound
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// -------- Handlers --------

type orderView struct {
	models.Order
	ItemsSummary string `json:"items_summary"`
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		switch {
		case errors.Is(err, ErrEmptyOrder),
			errors.Is(err, ErrInvalidPayment),
			errors.Is(err, ErrInvalidItem),
			errors.Is(err, ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastOrderEvent("order_created", order)
		c.JSON(http.StatusOK, gin.H{"orderId": order.OrderRef, "message": "Order created successfully"})
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := ListUserOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		views := make([]orderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, orderView{Order: o, ItemsSummary: summarizeItems(o.Items)})
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		views := make([]orderView, 0, len(orders))
		for _, o := range orders {
			views = append(views, orderView{
				Order:        o,
				ItemsSummary: summarizeItems(o.Items),
				UserName:     o.User.Name,
				UserEmail:    o.User.Email,
			})
		}
		c.JSON(http.StatusOK, views)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := SetStatus(db, uint(orderID), req.Status)
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderEvent("status_updated", order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
