// Package commands contains the operations that modify the dish and order collections.
// Every handler follows the same shape: validate the command, open a unit of work,
// run the route's pipeline against the unit of work's repositories and commit.
// A pipeline that fails partway is rolled back and leaves the store untouched.
package commands

import (
	"context"

	"grubdash/internal/core/ports"
)

// inUnitOfWork runs fn inside a fresh unit of work and commits when fn succeeds.
// The unit of work is always rolled back on the way out; after a commit that is a no-op.
func inUnitOfWork(ctx context.Context, factory ports.UnitOfWorkFactory, fn func(uow ports.UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
