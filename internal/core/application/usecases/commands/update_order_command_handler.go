package commands

import (
	"context"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// UpdateOrderCommandHandler performs a full replace of a stored order, including
// its status.
//
// Stages: OrderExists, OrderIDMatchesPath, deliverTo, mobileNumber, dishes,
// DishesNonEmpty, QuantitiesValid, StatusTransition, update.
type UpdateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewUpdateOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle runs the update pipeline and returns the updated order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	scope := &request.OrderScope{OrderID: cmd.OrderID(), Data: cmd.Data()}
	err := inUnitOfWork(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		repo := uow.OrderRepository()
		chain := pipeline.New(
			resolver.OrderExists(repo),
			validation.OrderIDMatchesPath(),
		).
			Then(orderPayloadStages()...).
			Then(validation.StatusTransition(), replaceOrder(repo))
		return chain.Run(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	return scope.Order, nil
}

func replaceOrder(repo ports.OrderRepository) pipeline.Stage[*request.OrderScope] {
	return func(ctx context.Context, scope *request.OrderScope) error {
		items, err := itemsFromPayload(scope.Data)
		if err != nil {
			return err
		}

		status, err := order.ParseStatus(scope.Data.String("status"))
		if err != nil {
			return err
		}

		if err = scope.Order.Replace(
			scope.Data.String("deliverTo"),
			scope.Data.String("mobileNumber"),
			items,
			status,
		); err != nil {
			return fmt.Errorf("replace order %s: %w", scope.OrderID, err)
		}

		return repo.Update(ctx, scope.Order)
	}
}
