package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant-orders/internal/domain"
	"restaurant-orders/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders      service.OrderServiceInterface
	Restaurants service.RestaurantServiceInterface
	MenuItems   service.MenuItemServiceInterface
	Auth        service.AuthServiceInterface
}

func NewHandler(orderSvc service.OrderServiceInterface, restSvc service.RestaurantServiceInterface, itemSvc service.MenuItemServiceInterface, authSvc service.AuthServiceInterface) *Handler {
	return &Handler{
		Orders:      orderSvc,
		Restaurants: restSvc,
		MenuItems:   itemSvc,
		Auth:        authSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/auth/register", h.register).Methods("POST")
	r.HandleFunc("/auth/token", h.issueToken).Methods("POST")

	r.HandleFunc("/orders", h.requireAuth(h.listOrders)).Methods("GET")
	r.HandleFunc("/orders", h.requireAuth(h.createOrder)).Methods("POST")
	r.HandleFunc("/orders/restaurant/{restaurant}", h.requireAuth(h.listOrdersByRestaurant)).Methods("GET")
	r.HandleFunc("/orders/customer/{customer:[0-9]+}", h.requireAuth(h.listOrdersByCustomer)).Methods("GET")
	r.HandleFunc("/orders/cost/{restaurant}", h.requireAuth(h.totalCost)).Methods("GET")
	r.HandleFunc("/orders/stats/average-quantity/{restaurant}", h.requireAuth(h.averageQuantity)).Methods("GET")
	r.HandleFunc("/orders/{id:[0-9]+}", h.requireAuth(h.getOrder)).Methods("GET")
	r.HandleFunc("/orders/{id:[0-9]+}/receipt", h.requireAuth(h.getOrderReceipt)).Methods("GET")

	r.HandleFunc("/restaurants", h.requireAuth(h.createRestaurant)).Methods("POST")
	r.HandleFunc("/restaurants", h.requireAuth(h.listRestaurants)).Methods("GET")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.requireAuth(h.getRestaurant)).Methods("GET")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.requireAuth(h.updateRestaurant)).Methods("PUT")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.requireAuth(h.deleteRestaurant)).Methods("DELETE")

	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/items", h.requireAuth(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/items", h.requireAuth(h.listMenuItems)).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/items/{itemId:[0-9]+}", h.requireAuth(h.getMenuItem)).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/items/{itemId:[0-9]+}", h.requireAuth(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/items/{itemId:[0-9]+}", h.requireAuth(h.deleteMenuItem)).Methods("DELETE")
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps domain errors onto the API's status codes. Internal
// failures never leak their details to the caller.
func writeError(w http.ResponseWriter, err error) {
	var notFound *domain.NotFoundError
	var conflict *domain.OwnershipConflictError
	var invalid *domain.ValidationError

	switch {
	case errors.As(err, &notFound):
		writeMessage(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		writeMessage(w, http.StatusBadRequest, conflict.Error())
	case errors.As(err, &invalid):
		writeMessage(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-orders",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	user, err := h.Auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "username and password are required")
		return
	}
	token, err := h.Auth.IssueToken(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

type createOrderRequest struct {
	Restaurant string `json:"restaurant"`
	Quantity   *int   `json:"quantity"`
	Item       string `json:"item"`
	Comments   string `json:"comments"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Restaurant == "" || req.Quantity == nil || req.Item == "" {
		writeMessage(w, http.StatusBadRequest, "restaurant, quantity and item are required")
		return
	}

	order, err := h.Orders.Create(callerID(r), req.Restaurant, req.Item, *req.Quantity, req.Comments)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listOrdersByRestaurant(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListByRestaurant(mux.Vars(r)["restaurant"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) listOrdersByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, _ := strconv.Atoi(mux.Vars(r)["customer"])
	orders, err := h.Orders.ListByCustomer(customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) totalCost(w http.ResponseWriter, r *http.Request) {
	cost, err := h.Orders.TotalCost(mux.Vars(r)["restaurant"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"cost": cost})
}

func (h *Handler) averageQuantity(w http.ResponseWriter, r *http.Request) {
	restaurant := mux.Vars(r)["restaurant"]
	average, err := h.Orders.AverageQuantity(restaurant)
	if errors.Is(err, domain.ErrNoOrders) {
		writeMessage(w, http.StatusNotFound, restaurant+" has no orders")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"average": average})
}

func (h *Handler) getOrderReceipt(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	receipt, err := h.Orders.Receipt(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(receipt)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.Restaurants.Create(&rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Restaurants.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeMessage(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	rest.ID = id
	if err := h.Restaurants.Update(&rest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Restaurants.Delete(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == 0 {
		writeMessage(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	item.RestaurantID = restaurantID
	if err := h.MenuItems.Create(&item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	items, err := h.MenuItems.List(restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])
	item, err := h.MenuItems.Get(restaurantID, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		writeMessage(w, http.StatusNotFound, "Menu item not found")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	item.ID = itemID
	item.RestaurantID = restaurantID
	if err := h.MenuItems.Update(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeMessage(w, http.StatusNotFound, "Menu item not found")
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])
	rows, err := h.MenuItems.Delete(restaurantID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	if rows == 0 {
		writeMessage(w, http.StatusNotFound, "Menu item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
