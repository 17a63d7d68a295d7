package models

import "time"

// CartItem is one pending-purchase line. The composite unique index keeps a
// single row per (user, product); adding the same product again increments
// Quantity instead of inserting a duplicate line.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	Product Product `json:"product"`
}
