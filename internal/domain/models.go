package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Order references its restaurant and item by id in the store; the
// resolved names travel with it because API callers speak in names.
type Order struct {
	ID             int             `json:"id"`
	UserID         int             `json:"user_id"`
	RestaurantID   int             `json:"-"`
	RestaurantName string          `json:"restaurant"`
	ItemID         int             `json:"-"`
	ItemName       string          `json:"item"`
	Quantity       int             `json:"quantity"`
	Comments       string          `json:"comments"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	CreatedAt      time.Time       `json:"created_at"`
}
