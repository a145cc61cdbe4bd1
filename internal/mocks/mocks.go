package mocks

import (
	"context"
	"time"

	"restaurant-orders/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) CreateUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) GetUserByUsername(username string) (*domain.User, error) {
	ret := m.Called(username)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

func (m *UserRepository) GetUserByID(id int) (*domain.User, error) {
	ret := m.Called(id)
	user, _ := ret.Get(0).(*domain.User)
	return user, ret.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) ListRestaurants() ([]domain.Restaurant, error) {
	ret := m.Called()
	restaurants, _ := ret.Get(0).([]domain.Restaurant)
	return restaurants, ret.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	ret := m.Called(id)
	rest, _ := ret.Get(0).(*domain.Restaurant)
	return rest, ret.Error(1)
}

func (m *RestaurantRepository) GetRestaurantByName(name string) (*domain.Restaurant, error) {
	ret := m.Called(name)
	rest, _ := ret.Get(0).(*domain.Restaurant)
	return rest, ret.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(id int) (int64, error) {
	ret := m.Called(id)
	return ret.Get(0).(int64), ret.Error(1)
}

type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuItemRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	ret := m.Called(restaurantID)
	items, _ := ret.Get(0).([]domain.MenuItem)
	return items, ret.Error(1)
}

func (m *MenuItemRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	ret := m.Called(restaurantID, itemID)
	item, _ := ret.Get(0).(*domain.MenuItem)
	return item, ret.Error(1)
}

func (m *MenuItemRepository) GetMenuItemByName(name string) (*domain.MenuItem, error) {
	ret := m.Called(name)
	item, _ := ret.Get(0).(*domain.MenuItem)
	return item, ret.Error(1)
}

func (m *MenuItemRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuItemRepository) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	ret := m.Called(restaurantID, itemID)
	return ret.Get(0).(int64), ret.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	return m.Called(order).Error(0)
}

func (m *OrderRepository) GetOrder(id int) (*domain.Order, error) {
	ret := m.Called(id)
	order, _ := ret.Get(0).(*domain.Order)
	return order, ret.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	ret := m.Called()
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}

func (m *OrderRepository) ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error) {
	ret := m.Called(restaurantID)
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	ret := m.Called(userID)
	orders, _ := ret.Get(0).([]domain.Order)
	return orders, ret.Error(1)
}

func (m *OrderRepository) SumTotalPrice(restaurantID int) (decimal.Decimal, error) {
	ret := m.Called(restaurantID)
	return ret.Get(0).(decimal.Decimal), ret.Error(1)
}

func (m *OrderRepository) AverageQuantity(restaurantID int) (float64, bool, error) {
	ret := m.Called(restaurantID)
	return ret.Get(0).(float64), ret.Get(1).(bool), ret.Error(2)
}

type TokenStore struct {
	mock.Mock
}

func NewTokenStore(t testingT) *TokenStore {
	m := &TokenStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TokenStore) Save(ctx context.Context, token string, userID int, ttl time.Duration) error {
	return m.Called(ctx, token, userID, ttl).Error(0)
}

func (m *TokenStore) Lookup(ctx context.Context, token string) (int, bool, error) {
	ret := m.Called(ctx, token)
	return ret.Get(0).(int), ret.Get(1).(bool), ret.Error(2)
}

type ReceiptGenerator struct {
	mock.Mock
}

func NewReceiptGenerator(t testingT) *ReceiptGenerator {
	m := &ReceiptGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ReceiptGenerator) Generate(orderID int) ([]byte, error) {
	ret := m.Called(orderID)
	receipt, _ := ret.Get(0).([]byte)
	return receipt, ret.Error(1)
}
