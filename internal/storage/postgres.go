package storage

import (
	"database/sql"
	"fmt"

	"restaurant-orders/internal/domain"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL UNIQUE,
			price NUMERIC(32,2) NOT NULL CHECK (price >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			item_id INT NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			quantity INT NOT NULL CHECK (quantity >= 0),
			comments VARCHAR(255) NOT NULL DEFAULT '',
			total_price NUMERIC(32,2) NOT NULL CHECK (total_price >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, created_at",
		user.Username, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *PostgresRepository) GetUserByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, username, password_hash, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUserByID(id int) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, username, password_hash, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name) VALUES ($1) RETURNING id, created_at",
		rest.Name,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query("SELECT id, name, created_at FROM restaurants ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(
		"SELECT id, name, created_at FROM restaurants WHERE id = $1", id,
	).Scan(&rest.ID, &rest.Name, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantByName(name string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(
		"SELECT id, name, created_at FROM restaurants WHERE name = $1", name,
	).Scan(&rest.ID, &rest.Name, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"UPDATE restaurants SET name = $1 WHERE id = $2 RETURNING id, name, created_at",
		rest.Name, rest.ID,
	).Scan(&rest.ID, &rest.Name, &rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		"INSERT INTO menu_items (restaurant_id, name, price) VALUES ($1, $2, $3) RETURNING id, created_at",
		item.RestaurantID, item.Name, item.Price,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(
		"SELECT id, restaurant_id, name, price, created_at FROM menu_items WHERE id = $1 AND restaurant_id = $2",
		itemID, restaurantID,
	).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) GetMenuItemByName(name string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(
		"SELECT id, restaurant_id, name, price, created_at FROM menu_items WHERE name = $1",
		name,
	).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(
		`UPDATE menu_items SET name = $1, price = $2
		 WHERE id = $3 AND restaurant_id = $4
		 RETURNING id, restaurant_id, name, price, created_at`,
		item.Name, item.Price, item.ID, item.RestaurantID,
	).Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.CreatedAt)
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1 AND restaurant_id = $2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	return r.DB.QueryRow(
		`INSERT INTO orders (user_id, restaurant_id, item_id, quantity, comments, total_price)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		order.UserID, order.RestaurantID, order.ItemID, order.Quantity, order.Comments, order.TotalPrice,
	).Scan(&order.ID, &order.CreatedAt)
}

const selectOrders = `
	SELECT o.id, o.user_id, o.restaurant_id, r.name, o.item_id, m.name,
	       o.quantity, o.comments, o.total_price, o.created_at
	FROM orders o
	JOIN restaurants r ON o.restaurant_id = r.id
	JOIN menu_items m ON o.item_id = m.id`

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(selectOrders+" WHERE o.id = $1", id).Scan(
		&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
		&order.ItemID, &order.ItemName, &order.Quantity, &order.Comments,
		&order.TotalPrice, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	return r.queryOrders(selectOrders + " ORDER BY o.id")
}

func (r *PostgresRepository) ListOrdersByRestaurant(restaurantID int) ([]domain.Order, error) {
	return r.queryOrders(selectOrders+" WHERE o.restaurant_id = $1 ORDER BY o.created_at, o.id", restaurantID)
}

func (r *PostgresRepository) ListOrdersByUser(userID int) ([]domain.Order, error) {
	return r.queryOrders(selectOrders+" WHERE o.user_id = $1 ORDER BY o.id", userID)
}

func (r *PostgresRepository) queryOrders(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName,
			&order.ItemID, &order.ItemName, &order.Quantity, &order.Comments,
			&order.TotalPrice, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// SumTotalPrice aggregates in the database so the decimal arithmetic stays
// exact regardless of how many orders a restaurant has.
func (r *PostgresRepository) SumTotalPrice(restaurantID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.DB.QueryRow(
		"SELECT COALESCE(SUM(total_price), 0) FROM orders WHERE restaurant_id = $1",
		restaurantID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *PostgresRepository) AverageQuantity(restaurantID int) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.DB.QueryRow(
		"SELECT AVG(quantity) FROM orders WHERE restaurant_id = $1",
		restaurantID,
	).Scan(&avg)
	if err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}
