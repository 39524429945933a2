// Package resolver looks up the entity named by a request path and attaches it,
// with its position in the collection, to the request scope.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"
)

// DishExists resolves scope.DishID or fails with NotFound.
func DishExists(repo ports.DishRepository) pipeline.Stage[*request.DishScope] {
	return func(ctx context.Context, scope *request.DishScope) error {
		d, index, err := repo.Get(ctx, scope.DishID)
		if err != nil {
			return dishLookupError(scope.DishID, err)
		}

		scope.Dish = d
		scope.Index = index
		return nil
	}
}

// DishExistsForDelete guards DELETE on a dish. Dishes are never deleted, so the stage
// always fails with MethodNotAllowed; resolving first only decides the message.
func DishExistsForDelete(repo ports.DishRepository) pipeline.Stage[*request.DishScope] {
	return func(ctx context.Context, scope *request.DishScope) error {
		d, index, err := repo.Get(ctx, scope.DishID)
		if err != nil {
			lookupErr := dishLookupError(scope.DishID, err)
			if reqErr, ok := errs.AsRequestError(lookupErr); ok {
				return errs.NewMethodNotAllowedError(reqErr.Message)
			}
			return lookupErr
		}

		scope.Dish = d
		scope.Index = index
		return errs.NewMethodNotAllowedError(fmt.Sprintf("DELETE not allowed for dish %s.", scope.DishID))
	}
}

// OrderExists resolves scope.OrderID or fails with NotFound.
func OrderExists(repo ports.OrderRepository) pipeline.Stage[*request.OrderScope] {
	return func(ctx context.Context, scope *request.OrderScope) error {
		o, index, err := repo.Get(ctx, scope.OrderID)
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if errors.As(err, &notFound) {
				return errs.NewNotFoundErrorWithCause(
					fmt.Sprintf("Could not find order with id %s.", scope.OrderID), err)
			}
			return fmt.Errorf("resolve order %s: %w", scope.OrderID, err)
		}

		scope.Order = o
		scope.Index = index
		return nil
	}
}

func dishLookupError(id string, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return errs.NewNotFoundErrorWithCause(fmt.Sprintf("Could not find dish with id %s.", id), err)
	}
	return fmt.Errorf("resolve dish %s: %w", id, err)
}
