package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListDishes handles GET /dishes.
func (s *Server) ListDishes(c echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(c.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}

	response := make([]DishResponse, len(dishes))
	for i, d := range dishes {
		response[i] = toDishResponse(d)
	}
	return c.JSON(http.StatusOK, envelope{Data: response})
}

// CreateDish handles POST /dishes.
func (s *Server) CreateDish(c echo.Context) error {
	cmd := commands.NewCreateDishCommand(readData(c))

	created, err := s.createDishHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, envelope{Data: toDishResponse(created)})
}

// GetDish handles GET /dishes/:dishId.
func (s *Server) GetDish(c echo.Context) error {
	query, err := queries.NewGetDishQuery(c.Param("dishId"))
	if err != nil {
		return echo.ErrNotFound
	}

	d, err := s.getDishHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Data: toDishResponse(d)})
}

// UpdateDish handles PUT /dishes/:dishId.
func (s *Server) UpdateDish(c echo.Context) error {
	cmd, err := commands.NewUpdateDishCommand(c.Param("dishId"), readData(c))
	if err != nil {
		return echo.ErrNotFound
	}

	updated, err := s.updateDishHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Data: toDishResponse(updated)})
}

// DeleteDish handles DELETE /dishes/:dishId. It never succeeds.
func (s *Server) DeleteDish(c echo.Context) error {
	cmd, err := commands.NewDeleteDishCommand(c.Param("dishId"))
	if err != nil {
		return echo.ErrNotFound
	}

	if err = s.deleteDishHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
