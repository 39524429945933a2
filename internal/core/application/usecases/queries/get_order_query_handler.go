package queries

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// GetOrderQueryHandler returns the order resolved from the route.
//
// Stages: OrderExists, read.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope := &request.OrderScope{OrderID: query.OrderID()}
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		return pipeline.New(resolver.OrderExists(uow.OrderRepository())).Run(ctx, scope)
	})
	if err != nil {
		return nil, err
	}

	return scope.Order, nil
}
