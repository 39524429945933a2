package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/ports"
)

// DeleteDishCommandHandler guards DELETE on a dish.
//
// Stages: DishExistsForDelete. The guard always fails, so Handle returns a
// MethodNotAllowed error whether or not the dish exists.
type DeleteDishCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewDeleteDishCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteDishCommandHandler {
	return DeleteDishCommandHandler{uowFactory: uowFactory}
}

func (h DeleteDishCommandHandler) Handle(ctx context.Context, cmd DeleteDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	scope := &request.DishScope{DishID: cmd.DishID()}
	return inUnitOfWork(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		return pipeline.New(resolver.DishExistsForDelete(uow.DishRepository())).Run(ctx, scope)
	})
}
