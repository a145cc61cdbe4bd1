package service

import (
	"restaurant-orders/internal/domain"

	"github.com/shopspring/decimal"
)

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Create(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return &domain.ValidationError{Message: "name is required"}
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *RestaurantService) List() ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants()
}

func (s *RestaurantService) Get(id int) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(id)
}

func (s *RestaurantService) Update(rest *domain.Restaurant) error {
	if rest.Name == "" {
		return &domain.ValidationError{Message: "name is required"}
	}
	return s.repo.UpdateRestaurant(rest)
}

func (s *RestaurantService) Delete(id int) (int64, error) {
	return s.repo.DeleteRestaurant(id)
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

type MenuItemService struct {
	repo MenuItemRepository
}

func NewMenuItemService(repo MenuItemRepository) *MenuItemService {
	return &MenuItemService{repo: repo}
}

func (s *MenuItemService) Create(item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(item)
}

func (s *MenuItemService) List(restaurantID int) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(restaurantID)
}

func (s *MenuItemService) Get(restaurantID, itemID int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(restaurantID, itemID)
}

func (s *MenuItemService) Update(item *domain.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(item)
}

func (s *MenuItemService) Delete(restaurantID, itemID int) (int64, error) {
	return s.repo.DeleteMenuItem(restaurantID, itemID)
}

func validateMenuItem(item *domain.MenuItem) error {
	if item.Name == "" {
		return &domain.ValidationError{Message: "name is required"}
	}
	if item.Price.LessThan(decimal.Zero) {
		return &domain.ValidationError{Message: "price must be non-negative"}
	}
	return nil
}

var _ MenuItemServiceInterface = (*MenuItemService)(nil)
