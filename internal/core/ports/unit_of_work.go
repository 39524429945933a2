package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the boundary of one request pipeline.
// Everything a pipeline reads or writes goes through the repositories it hands out,
// and nothing becomes visible to other requests before Commit.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// run the pipeline against uow.OrderRepository()
//
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts the unit of work.
	Begin(ctx context.Context) error

	// Commit makes the changes permanent.
	// Returns error if the unit of work is not active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the changes.
	// Returns error if the unit of work is not active.
	Rollback(ctx context.Context) error

	// DishRepository returns a DishRepository bound to this unit of work.
	DishRepository() DishRepository

	// OrderRepository returns an OrderRepository bound to this unit of work.
	OrderRepository() OrderRepository
}
