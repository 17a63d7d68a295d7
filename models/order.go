package models

import "time"

type OrderStatus string

const (
	// Order statuses, in the usual fulfilment sequence. Transitions are
	// admin-driven and unconstrained in direction.
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusInTransit  OrderStatus = "In Transit"
	OrderStatusDelivered  OrderStatus = "Delivered"

	// Recognized payment methods. Payment itself is simulated; only the
	// chosen method is recorded on the order.
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "Card"
	PaymentMethodCOD  = "COD"
)

// Order is immutable once created, except for Status. OrderRef is the
// externally visible identifier: a time-based token, unique and sorting in
// creation order. The Shipping* fields are a snapshot taken at checkout,
// independent of the user's address book.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID        uint        `gorm:"not null;index" json:"user_id"`
	User          User        `gorm:"foreignKey:UserID" json:"-"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64     `json:"total_amount"`
	PaymentMethod string      `gorm:"not null" json:"payment_method"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"status"`

	ShippingAddress string `json:"shipping_address"`
	ShippingName    string `json:"shipping_name"`
	ShippingPhone   string `json:"shipping_phone"`
	ShippingCity    string `json:"shipping_city"`
	ShippingPincode string `json:"shipping_pincode"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem carries its own name and price snapshot so later catalog edits or
// deletes never alter historical orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
