package orderControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/surampallyshivasai/Wearsy/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{Name: "Test User", Email: email, Password: "digest", Role: models.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	p := models.Product{Name: name, Price: price, Image: "https://example.com/p.jpg", Gender: models.GenderMen, Category: "tshirt"}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func fillCart(t *testing.T, db *gorm.DB, userID uint, products ...models.Product) {
	t.Helper()
	for _, p := range products {
		require.NoError(t, db.Create(&models.CartItem{UserID: userID, ProductID: p.ID, Quantity: 1}).Error)
	}
}

func TestPlaceOrderCreatesOrderAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@x.com")
	shirt := seedProduct(t, db, "Men's T-Shirt", 499)
	jeans := seedProduct(t, db, "Men's Jeans", 999)
	fillCart(t, db, user.ID, shirt, jeans)

	req := PlaceOrderRequest{
		Items: []OrderItemInput{
			{ProductID: shirt.ID, Quantity: 2},
			{ProductID: jeans.ID, Quantity: 1},
		},
		Total:         2*499 + 999,
		PaymentMethod: "UPI",
		Shipping:      ShippingInput{Address: "12 MG Road", Name: "A", Phone: "9876543210", City: "Pune", Pincode: "411001"},
	}

	order, err := PlaceOrder(db, user.ID, req)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(order.OrderRef, "ORDER"))
	require.Equal(t, models.OrderStatusProcessing, order.Status)
	require.Equal(t, models.PaymentMethodUPI, order.PaymentMethod)
	require.Equal(t, 1997.0, order.TotalAmount)
	require.Equal(t, "12 MG Road", order.ShippingAddress)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	require.EqualValues(t, len(req.Items), itemCount)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	require.Zero(t, cartCount)
}

func TestPlaceOrderValidation(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@x.com")
	shirt := seedProduct(t, db, "Men's T-Shirt", 499)

	_, err := PlaceOrder(db, user.ID, PlaceOrderRequest{PaymentMethod: "Card"})
	require.ErrorIs(t, err, ErrEmptyOrder)

	_, err = PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items:         []OrderItemInput{{ProductID: shirt.ID, Quantity: 1}},
		Total:         499,
		PaymentMethod: "Cheque",
	})
	require.ErrorIs(t, err, ErrInvalidPayment)

	_, err = PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items:         []OrderItemInput{{ProductID: shirt.ID, Quantity: 0}},
		Total:         0,
		PaymentMethod: "COD",
	})
	require.ErrorIs(t, err, ErrInvalidItem)

	_, err = PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items:         []OrderItemInput{{ProductID: 999, Quantity: 1}},
		Total:         499,
		PaymentMethod: "COD",
	})
	require.ErrorIs(t, err, ErrInvalidItem)
}

func TestPlaceOrderRejectsTamperedTotal(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@x.com")
	shirt := seedProduct(t, db, "Men's T-Shirt", 499)
	fillCart(t, db, user.ID, shirt)

	_, err := PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items:         []OrderItemInput{{ProductID: shirt.ID, Quantity: 2}},
		Total:         1, // client lies
		PaymentMethod: "Card",
	})
	require.ErrorIs(t, err, ErrTotalMismatch)

	// A rejected checkout must not touch the cart.
	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	require.EqualValues(t, 1, cartCount)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)
}

func TestOrderItemsSnapshotSurvivesCatalogChanges(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@x.com")
	shirt := seedProduct(t, db, "Men's T-Shirt", 499)

	order, err := PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items:         []OrderItemInput{{ProductID: shirt.ID, Quantity: 2}},
		Total:         998,
		PaymentMethod: "Card",
	})
	require.NoError(t, err)

	// Reprice and then hard-delete the product.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", shirt.ID).Update("price", 9999).Error)
	require.NoError(t, db.Delete(&models.Product{}, shirt.ID).Error)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, 499.0, items[0].Price)
	require.Equal(t, "Men's T-Shirt", items[0].ProductName)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	require.Equal(t, 998.0, reloaded.TotalAmount)
}

func TestListUserOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@x.com")
	other := seedUser(t, db, "b@x.com")
	shirt := seedProduct(t, db, "Men's T-Shirt", 499)

	first, err := PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{{ProductID: shirt.ID, Quantity: 1}}, Total: 499, PaymentMethod: "COD",
	})
	require.NoError(t, err)
	second, err := PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{{ProductID: shirt.ID, Quantity: 2}}, Total: 998, PaymentMethod: "COD",
	})
	require.NoError(t, err)
	_, err = PlaceOrder(db, other.ID, PlaceOrderRequest{
		Items: []OrderItemInput{{ProductID: shirt.ID, Quantity: 1}}, Total: 499, PaymentMethod: "COD",
	})
	require.NoError(t, err)

	orders, err := ListUserOrders(db, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, second.OrderRef, orders[0].OrderRef)
	require.Equal(t, first.OrderRef, orders[1].OrderRef)
	require.Len(t, orders[0].Items, 1)
}

func TestSetStatus(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@x.com")
	shirt := seedProduct(t, db, "Men's T-Shirt", 499)

	order, err := PlaceOrder(db, user.ID, PlaceOrderRequest{
		Items: []OrderItemInput{{ProductID: shirt.ID, Quantity: 1}}, Total: 499, PaymentMethod: "Card",
	})
	require.NoError(t, err)

	updated, err := SetStatus(db, order.ID, "Shipped")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	// Status strings are matched case-insensitively.
	updated, err = SetStatus(db, order.ID, "in transit")
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusInTransit, updated.Status)

	// An unrecognized status is rejected and the stored value survives.
	_, err = SetStatus(db, order.ID, "Lost In Space")
	require.ErrorIs(t, err, ErrInvalidStatus)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	require.Equal(t, models.OrderStatusInTransit, reloaded.Status)

	_, err = SetStatus(db, 9999, "Delivered")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSummarizeItems(t *testing.T) {
	summary := summarizeItems([]models.OrderItem{
		{ProductName: "Men's T-Shirt", Quantity: 2},
		{ProductName: "Men's Jeans", Quantity: 1},
	})
	require.Equal(t, "Men's T-Shirt (x2), Men's Jeans (x1)", summary)

	require.Equal(t, "", summarizeItems(nil))
}

func TestOrderRefsIncreaseWithCreationTime(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	require.True(t, strings.HasPrefix(a, "ORDER"))
	require.LessOrEqual(t, a[:18], b[:18])
	require.NotEqual(t, a, b)
}
