package queries

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// ListDishesQueryHandler returns a snapshot of the dish collection.
type ListDishesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewListDishesQueryHandler creates a handler reading through uowFactory.
func NewListDishesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListDishesQueryHandler {
	return ListDishesQueryHandler{uowFactory: uowFactory}
}

// Handle returns every dish in insertion order. An empty menu yields an empty slice.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var dishes []*dish.Dish
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		dishes, err = uow.DishRepository().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return dishes, nil
}
