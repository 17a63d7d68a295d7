package models

import "time"

// SavedAddress is a shipping profile the user keeps for reuse at checkout.
// Independent of Order shipping snapshots.
type SavedAddress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `gorm:"not null" json:"address"`
	Phone     string    `gorm:"not null" json:"phone"`
	City      string    `gorm:"not null" json:"city"`
	Pincode   string    `gorm:"not null" json:"pincode"`
	CreatedAt time.Time `json:"created_at"`
}
