// controllers/order.go
package controllers

import (
	"net/http"
	"time"

	"elara-server/models"
	"elara-server/repository"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// OrderNotifier tells a customer their order was placed
type OrderNotifier interface {
	SendOrderConfirmation(order models.Order) error
}

// OrderController handles order-related requests
type OrderController struct {
	Orders   repository.OrderRepository
	Notifier OrderNotifier // optional
	Timeout  time.Duration
}

// NewOrderController creates a new OrderController. notifier may be nil.
func NewOrderController(orders repository.OrderRepository, notifier OrderNotifier, timeout time.Duration) *OrderController {
	return &OrderController{
		Orders:   orders,
		Notifier: notifier,
		Timeout:  timeout,
	}
}

type deleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// GetOrders lists orders, optionally filtered by ?status=
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r, oc.Timeout)
	defer cancel()

	orders, err := oc.Orders.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err, "Failed to retrieve orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves a single order
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "order ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, oc.Timeout)
	defer cancel()
	order, err := oc.Orders.Get(ctx, id)
	if err != nil {
		writeError(w, r, err, "Failed to retrieve order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// CreateOrder stores a new order and, when configured, emails a confirmation
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := decodeJSON(r, &order, ""); err != nil {
		writeError(w, r, err, "Failed to create order")
		return
	}

	ctx, cancel := storeContext(r, oc.Timeout)
	defer cancel()
	id, err := oc.Orders.Create(ctx, &order)
	if err != nil {
		writeError(w, r, err, "Failed to create order")
		return
	}

	if oc.Notifier != nil && order.Email != "" {
		go func(order models.Order) {
			if err := oc.Notifier.SendOrderConfirmation(order); err != nil {
				zap.L().Warn("failed to send order confirmation",
					zap.String("order", order.ID.Hex()),
					zap.String("email", order.Email),
					zap.Error(err))
			}
		}(order)
	}

	writeJSON(w, http.StatusCreated, insertAck{Acknowledged: true, InsertedID: id})
}

// UpdateOrder replaces the customer and status fields of an order, creating
// it when the id is unknown.
func (oc *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "order ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	var update models.OrderUpdate
	if err := decodeJSON(r, &update, ""); err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, oc.Timeout)
	defer cancel()
	res, err := oc.Orders.Upsert(ctx, id, update)
	if err != nil {
		writeError(w, r, err, "Failed to update order")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteOrder removes an order
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "order ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, oc.Timeout)
	defer cancel()
	n, err := oc.Orders.Delete(ctx, id)
	if err != nil {
		writeError(w, r, err, "Failed to delete order")
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Order not found"})
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Acknowledged: true, DeletedCount: n})
}
