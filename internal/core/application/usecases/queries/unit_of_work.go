// Package queries contains the read operations on dishes and orders.
// Queries open a unit of work like commands do but never commit it.
package queries

import (
	"context"

	"grubdash/internal/core/ports"
)

func readOnly(ctx context.Context, factory ports.UnitOfWorkFactory, fn func(uow ports.UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}
