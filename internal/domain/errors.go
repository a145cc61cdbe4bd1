package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoOrders is returned by aggregates that are undefined over an empty
// order set, such as the average quantity for a restaurant with no orders.
var ErrNoOrders = errors.New("no orders")

// NotFoundError reports a missing entity. The message format is part of the
// API contract, so it is built here once and reused by every handler.
type NotFoundError struct {
	Entity string
	Attr   string
	Value  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s: %s does not exist", e.Entity, e.Attr, e.Value)
}

func OrderNotFound(id int) *NotFoundError {
	return &NotFoundError{Entity: "Order", Attr: "id", Value: strconv.Itoa(id)}
}

func RestaurantNotFound(name string) *NotFoundError {
	return &NotFoundError{Entity: "Restaurant", Attr: "name", Value: name}
}

func CustomerNotFound(id int) *NotFoundError {
	return &NotFoundError{Entity: "Customer", Attr: "id", Value: strconv.Itoa(id)}
}

func MenuItemNotFound(id int) *NotFoundError {
	return &NotFoundError{Entity: "Menu item", Attr: "id", Value: strconv.Itoa(id)}
}

// OwnershipConflictError reports an order whose item is not sold by the
// stated restaurant.
type OwnershipConflictError struct {
	Restaurant string
	Item       string
}

func (e *OwnershipConflictError) Error() string {
	return fmt.Sprintf("%s does not sell %s", e.Restaurant, e.Item)
}

// ValidationError covers missing or malformed request fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
