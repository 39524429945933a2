package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return c.JSON(http.StatusOK, envelope{Data: response})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	cmd := commands.NewCreateOrderCommand(readData(c))

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope{Data: toOrderResponse(created)})
}

// GetOrder handles GET /orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(c.Param("orderId"))
	if err != nil {
		return echo.ErrNotFound
	}

	o, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Data: toOrderResponse(o)})
}

// UpdateOrder handles PUT /orders/:orderId.
func (s *Server) UpdateOrder(c echo.Context) error {
	cmd, err := commands.NewUpdateOrderCommand(c.Param("orderId"), readData(c))
	if err != nil {
		return echo.ErrNotFound
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Data: toOrderResponse(updated)})
}

// DeleteOrder handles DELETE /orders/:orderId and answers 204 with no body.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Param("orderId"))
	if err != nil {
		return echo.ErrNotFound
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
