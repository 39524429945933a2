// Package http exposes the dish and order use cases over echo.
package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server adapts HTTP requests to the command and query handlers.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	deleteDishHandler  commands.DeleteDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// Handlers groups the use case handlers the server needs.
type Handlers struct {
	CreateDish  commands.CreateDishCommandHandler
	UpdateDish  commands.UpdateDishCommandHandler
	DeleteDish  commands.DeleteDishCommandHandler
	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler
	ListDishes  queries.ListDishesQueryHandler
	GetDish     queries.GetDishQueryHandler
	ListOrders  queries.ListOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
}

// NewServer creates a server over the given handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createDishHandler:  h.CreateDish,
		updateDishHandler:  h.UpdateDish,
		deleteDishHandler:  h.DeleteDish,
		createOrderHandler: h.CreateOrder,
		updateOrderHandler: h.UpdateOrder,
		deleteOrderHandler: h.DeleteOrder,
		listDishesHandler:  h.ListDishes,
		getDishHandler:     h.GetDish,
		listOrdersHandler:  h.ListOrders,
		getOrderHandler:    h.GetOrder,
	}
}

// RegisterRoutes binds the dish and order routes. Every method a path does not
// support is bound to a MethodNotAllowed responder.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	s.route(e, "/dishes", map[string]echo.HandlerFunc{
		http.MethodGet:  s.ListDishes,
		http.MethodPost: s.CreateDish,
	})
	s.route(e, "/dishes/:dishId", map[string]echo.HandlerFunc{
		http.MethodGet:    s.GetDish,
		http.MethodPut:    s.UpdateDish,
		http.MethodDelete: s.DeleteDish,
	})
	s.route(e, "/orders", map[string]echo.HandlerFunc{
		http.MethodGet:  s.ListOrders,
		http.MethodPost: s.CreateOrder,
	})
	s.route(e, "/orders/:orderId", map[string]echo.HandlerFunc{
		http.MethodGet:    s.GetOrder,
		http.MethodPut:    s.UpdateOrder,
		http.MethodDelete: s.DeleteOrder,
	})
}

func (s *Server) route(e *echo.Echo, path string, handlers map[string]echo.HandlerFunc) {
	for method, h := range handlers {
		e.Add(method, path, h)
	}

	rest := make([]string, 0, len(routableMethods))
	for _, method := range routableMethods {
		if _, ok := handlers[method]; !ok {
			rest = append(rest, method)
		}
	}
	for _, r := range e.Match(rest, path, methodNotAllowed) {
		r.Name = NotAllowedRouteName
	}
}
