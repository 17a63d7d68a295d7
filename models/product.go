package models

import "time"

// Recognized gender values for the catalog.
const (
	GenderMen   = "men"
	GenderWomen = "women"
	GenderKids  = "kids"
)

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Image     string    `gorm:"not null" json:"image"`
	Gender    string    `gorm:"not null;index" json:"gender"`
	Category  string    `gorm:"not null;index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidGender(g string) bool {
	switch g {
	case GenderMen, GenderWomen, GenderKids:
		return true
	}
	return false
}
