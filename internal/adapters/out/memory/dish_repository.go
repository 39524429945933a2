package memory

import (
	"context"
	"fmt"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"
)

// DishRepository reads and writes dishes in a unit of work's working copy.
type DishRepository struct {
	uow *UnitOfWork
}

func (r *DishRepository) List(_ context.Context) ([]*dish.Dish, error) {
	if !r.uow.active {
		return nil, ErrUnitOfWorkIsNotActive
	}

	dishes := make([]*dish.Dish, 0, len(r.uow.dishes))
	for _, d := range r.uow.dishes {
		dishes = append(dishes, d.Clone())
	}
	return dishes, nil
}

func (r *DishRepository) Get(_ context.Context, id string) (*dish.Dish, int, error) {
	if !r.uow.active {
		return nil, -1, ErrUnitOfWorkIsNotActive
	}

	index := r.indexOf(id)
	if index < 0 {
		return nil, -1, errs.NewObjectNotFoundError("dishId", id)
	}
	return r.uow.dishes[index].Clone(), index, nil
}

func (r *DishRepository) Add(_ context.Context, aggregate *dish.Dish) error {
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if r.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("dish %s already exists", aggregate.ID()))
	}

	r.uow.dishes = append(r.uow.dishes, aggregate.Clone())
	return nil
}

func (r *DishRepository) Update(_ context.Context, aggregate *dish.Dish) error {
	if !r.uow.active {
		return ErrUnitOfWorkIsNotActive
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	index := r.indexOf(aggregate.ID())
	if index < 0 {
		return errs.NewObjectNotFoundError("dishId", aggregate.ID())
	}
	r.uow.dishes[index] = aggregate.Clone()
	return nil
}

func (r *DishRepository) indexOf(id string) int {
	for i, d := range r.uow.dishes {
		if d.ID() == id {
			return i
		}
	}
	return -1
}
