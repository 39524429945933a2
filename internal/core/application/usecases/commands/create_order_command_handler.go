package commands

import (
	"context"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderCommandHandler validates an order payload and places the order in
// pending status.
//
// Stages: RequireData, deliverTo, mobileNumber, dishes, DishesNonEmpty,
// QuantitiesValid, create.
type CreateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	ids        ports.IDGenerator
}

// NewCreateOrderCommandHandler creates a handler that assigns ids from ids.
func NewCreateOrderCommandHandler(uowFactory ports.UnitOfWorkFactory, ids ports.IDGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory, ids: ids}
}

// Handle runs the create pipeline and returns the stored order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	scope := &request.OrderScope{Data: cmd.Data()}
	err := inUnitOfWork(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		repo := uow.OrderRepository()
		chain := pipeline.New(validation.RequireData[*request.OrderScope]()).
			Then(orderPayloadStages()...).
			Then(h.create(repo))
		return chain.Run(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	return scope.Order, nil
}

func (h CreateOrderCommandHandler) create(repo ports.OrderRepository) pipeline.Stage[*request.OrderScope] {
	return func(ctx context.Context, scope *request.OrderScope) error {
		items, err := itemsFromPayload(scope.Data)
		if err != nil {
			return err
		}

		o, err := order.NewOrder(h.ids.NextID(), scope.Data.String("deliverTo"), scope.Data.String("mobileNumber"), items)
		if err != nil {
			return fmt.Errorf("build order: %w", err)
		}

		if err = repo.Add(ctx, o); err != nil {
			return err
		}

		scope.Order = o
		return nil
	}
}

// orderPayloadStages are the field checks shared by create and update.
func orderPayloadStages() []pipeline.Stage[*request.OrderScope] {
	stages := pipeline.Map(validation.OrderFields, validation.RequireOrderField)
	return append(stages, validation.DishesNonEmpty(), validation.QuantitiesValid())
}

// itemsFromPayload converts the validated dishes array into order lines.
func itemsFromPayload(data request.Payload) ([]order.Item, error) {
	list, _ := data.List("dishes")
	items := make([]order.Item, 0, len(list))
	for i, raw := range list {
		line := request.NewPayload(raw)
		item, err := order.NewItem(line.String("dishId"), line.Int("quantity"))
		if err != nil {
			return nil, fmt.Errorf("build order line %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
