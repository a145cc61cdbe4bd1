package service

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant-orders/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders      OrderRepository
	restaurants RestaurantRepository
	items       MenuItemRepository
	users       UserRepository
	receipts    ReceiptGenerator
}

func NewOrderService(orders OrderRepository, restaurants RestaurantRepository, items MenuItemRepository, users UserRepository, receipts ReceiptGenerator) *OrderService {
	return &OrderService{
		orders:      orders,
		restaurants: restaurants,
		items:       items,
		users:       users,
		receipts:    receipts,
	}
}

// Create validates and persists a new order for the given user. The item must
// be sold by the stated restaurant, and the total price is locked in at
// creation time from the item's current price.
func (s *OrderService) Create(userID int, restaurant, item string, quantity int, comments string) (*domain.Order, error) {
	if quantity < 0 {
		return nil, &domain.ValidationError{Message: "quantity must be a non-negative integer"}
	}

	rest, err := s.restaurants.GetRestaurantByName(restaurant)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ValidationError{Message: "restaurant or item not valid"}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve restaurant: %w", err)
	}

	menuItem, err := s.items.GetMenuItemByName(item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.ValidationError{Message: "restaurant or item not valid"}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve menu item: %w", err)
	}

	if menuItem.RestaurantID != rest.ID {
		return nil, &domain.OwnershipConflictError{Restaurant: rest.Name, Item: menuItem.Name}
	}

	order := &domain.Order{
		UserID:         userID,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		ItemID:         menuItem.ID,
		ItemName:       menuItem.Name,
		Quantity:       quantity,
		Comments:       comments,
		TotalPrice:     menuItem.Price.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) Get(id int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.OrderNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.orders.ListOrders()
}

func (s *OrderService) ListByRestaurant(name string) ([]domain.Order, error) {
	rest, err := s.lookupRestaurant(name)
	if err != nil {
		return nil, err
	}
	return s.orders.ListOrdersByRestaurant(rest.ID)
}

func (s *OrderService) ListByCustomer(userID int) ([]domain.Order, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.CustomerNotFound(userID)
		}
		return nil, err
	}
	return s.orders.ListOrdersByUser(userID)
}

// TotalCost sums total_price across a restaurant's orders in a single query.
// A known restaurant with no orders costs zero.
func (s *OrderService) TotalCost(name string) (decimal.Decimal, error) {
	rest, err := s.lookupRestaurant(name)
	if err != nil {
		return decimal.Zero, err
	}
	return s.orders.SumTotalPrice(rest.ID)
}

// AverageQuantity is undefined over an empty order set and returns
// domain.ErrNoOrders in that case rather than a NULL or a crash.
func (s *OrderService) AverageQuantity(name string) (float64, error) {
	rest, err := s.lookupRestaurant(name)
	if err != nil {
		return 0, err
	}
	avg, ok, err := s.orders.AverageQuantity(rest.ID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.ErrNoOrders
	}
	return avg, nil
}

func (s *OrderService) Receipt(orderID int) ([]byte, error) {
	if _, err := s.Get(orderID); err != nil {
		return nil, err
	}
	return s.receipts.Generate(orderID)
}

func (s *OrderService) lookupRestaurant(name string) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetRestaurantByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.RestaurantNotFound(name)
	}
	if err != nil {
		return nil, err
	}
	return rest, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
