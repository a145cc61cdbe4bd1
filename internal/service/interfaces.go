package service

import (
	"context"
	"time"

	"restaurant-orders/internal/domain"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByUsername(username string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
}

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants() ([]domain.Restaurant, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	GetRestaurantByName(name string) (*domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	DeleteRestaurant(id int) (int64, error)
}

type MenuItemRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems(restaurantID int) ([]domain.MenuItem, error)
	GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error)
	GetMenuItemByName(name string) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(restaurantID, itemID int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id int) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error)
	ListOrdersByUser(userID int) ([]domain.Order, error)
	SumTotalPrice(restaurantID int) (decimal.Decimal, error)
	// AverageQuantity reports ok=false when the restaurant has no orders.
	AverageQuantity(restaurantID int) (avg float64, ok bool, err error)
}

type TokenStore interface {
	Save(ctx context.Context, token string, userID int, ttl time.Duration) error
	// Lookup reports ok=false for unknown or expired tokens.
	Lookup(ctx context.Context, token string) (userID int, ok bool, err error)
}

type ReceiptGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	IssueToken(ctx context.Context, username, password string) (string, error)
	Authenticate(ctx context.Context, token string) (int, error)
}

type OrderServiceInterface interface {
	Create(userID int, restaurant, item string, quantity int, comments string) (*domain.Order, error)
	Get(id int) (*domain.Order, error)
	List() ([]domain.Order, error)
	ListByRestaurant(name string) ([]domain.Order, error)
	ListByCustomer(userID int) ([]domain.Order, error)
	TotalCost(name string) (decimal.Decimal, error)
	AverageQuantity(name string) (float64, error)
	Receipt(orderID int) ([]byte, error)
}

type RestaurantServiceInterface interface {
	Create(rest *domain.Restaurant) error
	List() ([]domain.Restaurant, error)
	Get(id int) (*domain.Restaurant, error)
	Update(rest *domain.Restaurant) error
	Delete(id int) (int64, error)
}

type MenuItemServiceInterface interface {
	Create(item *domain.MenuItem) error
	List(restaurantID int) ([]domain.MenuItem, error)
	Get(restaurantID, itemID int) (*domain.MenuItem, error)
	Update(item *domain.MenuItem) error
	Delete(restaurantID, itemID int) (int64, error)
}
