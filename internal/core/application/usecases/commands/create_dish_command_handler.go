package commands

import (
	"context"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// CreateDishCommandHandler validates a dish payload and appends the new dish.
//
// Stages: RequireData, name, description, price, image_url, create.
type CreateDishCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	ids        ports.IDGenerator
}

// NewCreateDishCommandHandler creates a handler that assigns ids from ids.
func NewCreateDishCommandHandler(uowFactory ports.UnitOfWorkFactory, ids ports.IDGenerator) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory, ids: ids}
}

// Handle runs the create pipeline and returns the stored dish.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	scope := &request.DishScope{Data: cmd.Data()}
	err := inUnitOfWork(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		repo := uow.DishRepository()
		chain := pipeline.New(validation.RequireData[*request.DishScope]()).
			Then(pipeline.Map(validation.DishFields, validation.RequireDishField)...).
			Then(h.create(repo))
		return chain.Run(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	return scope.Dish, nil
}

func (h CreateDishCommandHandler) create(repo ports.DishRepository) pipeline.Stage[*request.DishScope] {
	return func(ctx context.Context, scope *request.DishScope) error {
		data := scope.Data
		d, err := dish.NewDish(
			h.ids.NextID(),
			data.String("name"),
			data.String("description"),
			data.Int("price"),
			data.String("image_url"),
		)
		if err != nil {
			return fmt.Errorf("build dish: %w", err)
		}

		if err = repo.Add(ctx, d); err != nil {
			return err
		}

		scope.Dish = d
		return nil
	}
}
