package commands

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order that is still pending.
//
// Stages: OrderExists, OrderIsPending, destroy.
type DeleteOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewDeleteOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle runs the delete pipeline. Orders in any status other than pending are kept
// and a Validation error is returned.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	scope := &request.OrderScope{OrderID: cmd.OrderID()}
	return inUnitOfWork(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		repo := uow.OrderRepository()
		chain := pipeline.New(
			resolver.OrderExists(repo),
			validation.OrderIsPending(),
			func(ctx context.Context, s *request.OrderScope) error {
				return repo.Remove(ctx, s.OrderID)
			},
		)
		return chain.Run(ctx, scope)
	})
}
