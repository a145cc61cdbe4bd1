package tests

import (
	"database/sql"
	"testing"
	"time"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS menu_items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_PersistsDerivedTotal(t *testing.T) {
	repo, mock := setupRepo(t)

	order := &domain.Order{
		UserID:       7,
		RestaurantID: 1,
		ItemID:       10,
		Quantity:     3,
		Comments:     "no onions",
		TotalPrice:   price(t, "6.00"),
	}

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, 1, 10, 3, "no onions", "6.00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

	assert.NoError(t, repo.CreateOrder(order))
	assert.Equal(t, 1, order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_JoinsNames(t *testing.T) {
	repo, mock := setupRepo(t)

	created := time.Now()
	mock.ExpectQuery("SELECT o.id, o.user_id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "restaurant_id", "name", "item_id", "name",
			"quantity", "comments", "total_price", "created_at",
		}).AddRow(1, 7, 1, "Burger", 10, "beef", 3, "", "6.00", created))

	order, err := repo.GetOrder(1)

	assert.NoError(t, err)
	assert.Equal(t, "Burger", order.RestaurantName)
	assert.Equal(t, "beef", order.ItemName)
	assert.Equal(t, "6.00", order.TotalPrice.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT o.id, o.user_id").
		WithArgs(1000).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOrder(1000)

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListOrdersByRestaurant_OrdersByCreation(t *testing.T) {
	repo, mock := setupRepo(t)

	earlier := time.Now().Add(-time.Hour)
	later := time.Now()
	mock.ExpectQuery("ORDER BY o.created_at, o.id").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "restaurant_id", "name", "item_id", "name",
			"quantity", "comments", "total_price", "created_at",
		}).
			AddRow(1, 7, 1, "Burger", 10, "beef", 3, "", "6.00", earlier).
			AddRow(2, 7, 1, "Burger", 11, "chicken", 6, "", "9.00", later))

	orders, err := repo.ListOrdersByRestaurant(1)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.True(t, orders[0].CreatedAt.Before(orders[1].CreatedAt))
}

func TestSumTotalPrice_SingleAggregateQuery(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("15.00"))

	sum, err := repo.SumTotalPrice(1)

	assert.NoError(t, err)
	assert.Equal(t, "15.00", sum.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSumTotalPrice_ZeroWithoutOrders(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("0"))

	sum, err := repo.SumTotalPrice(1)

	assert.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestAverageQuantity(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT AVG").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.5))

	avg, ok, err := repo.AverageQuantity(1)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4.5, avg)
}

func TestAverageQuantity_NullWithoutOrders(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT AVG").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	_, ok, err := repo.AverageQuantity(1)

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestGetRestaurantByName(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT id, name, created_at FROM restaurants WHERE name").
		WithArgs("Burger").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(1, "Burger", time.Now()))

	rest, err := repo.GetRestaurantByName("Burger")

	assert.NoError(t, err)
	assert.Equal(t, 1, rest.ID)
}

func TestCreateMenuItem(t *testing.T) {
	repo, mock := setupRepo(t)

	item := &domain.MenuItem{RestaurantID: 1, Name: "beef", Price: price(t, "2.00")}

	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs(1, "beef", "2.00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, time.Now()))

	assert.NoError(t, repo.CreateMenuItem(item))
	assert.Equal(t, 10, item.ID)
}

func TestDeleteRestaurant(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("DELETE FROM restaurants").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteRestaurant(1)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}
