package queries

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// GetDishQueryHandler returns the dish resolved from the route.
//
// Stages: DishExists, read.
type GetDishQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetDishQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDishQueryHandler {
	return GetDishQueryHandler{uowFactory: uowFactory}
}

// Handle resolves the dish or fails with a NotFound request error.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := &request.DishScope{DishID: query.DishID()}
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		return pipeline.New(resolver.DishExists(uow.DishRepository())).Run(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	return scope.Dish, nil
}
