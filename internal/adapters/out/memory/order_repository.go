package memory

import (
	"context"
	"fmt"
	"slices"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// OrderRepository reads and writes orders in a unit of work's working copy.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrUnitOfWorkIsNotActive
	}

	orders := make([]*order.Order, 0, len(r.uow.orders))
	for _, o := range r.uow.orders {
		orders = append(orders, o.Clone())
	}
	return orders, nil
}

func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, int, error) {
	if !r.uow.active {
		return nil, -1, ErrUnitOfWorkIsNotActive
	}

	index := r.indexOf(id)
	if index < 0 {
		return nil, -1, errs.NewObjectNotFoundError("orderId", id)
	}
	return r.uow.orders[index].Clone(), index, nil
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	r.uow.orders = append(r.uow.orders, aggregate.Clone())
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	index := r.indexOf(aggregate.ID())
	if index < 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}
	r.uow.orders[index] = aggregate.Clone()
	return nil
}

func (r *OrderRepository) Remove(_ context.Context, id string) error {
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}

	index := r.indexOf(id)
	if index < 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}
	r.uow.orders = slices.Delete(r.uow.orders, index, index+1)
	return nil
}

func (r *OrderRepository) indexOf(id string) int {
	for i, o := range r.uow.orders {
		if o.ID() == id {
			return i
		}
	}
	return -1
}
