package commands

import (
	"context"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// UpdateDishCommandHandler performs a full replace of a stored dish.
//
// Stages: DishExists, DishIDMatchesPath, name, description, price, image_url, update.
type UpdateDishCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewUpdateDishCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{uowFactory: uowFactory}
}

// Handle runs the update pipeline and returns the updated dish. The id never changes.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	scope := &request.DishScope{DishID: cmd.DishID(), Data: cmd.Data()}
	err := inUnitOfWork(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		repo := uow.DishRepository()
		chain := pipeline.New(
			resolver.DishExists(repo),
			validation.DishIDMatchesPath(),
		).
			Then(pipeline.Map(validation.DishFields, validation.RequireDishField)...).
			Then(replaceDish(repo))
		return chain.Run(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	return scope.Dish, nil
}

func replaceDish(repo ports.DishRepository) pipeline.Stage[*request.DishScope] {
	return func(ctx context.Context, scope *request.DishScope) error {
		data := scope.Data
		if err := scope.Dish.Replace(
			data.String("name"),
			data.String("description"),
			data.Int("price"),
			data.String("image_url"),
		); err != nil {
			return fmt.Errorf("replace dish %s: %w", scope.DishID, err)
		}
		return repo.Update(ctx, scope.Dish)
	}
}
