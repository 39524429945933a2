package queries

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// ListOrdersQueryHandler returns a snapshot of the order collection.
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns every order in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orders []*order.Order
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		var err error
		orders, err = uow.OrderRepository().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
