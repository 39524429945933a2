// Package ports defines the store contracts the application core depends on.
// These interfaces establish contracts between the use cases and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// DishRepository defines the persistence contract for dishes.
// Entries keep their insertion order.
type DishRepository interface {
	// List returns every dish in insertion order.
	List(ctx context.Context) ([]*dish.Dish, error)

	// Get returns the first dish whose id equals id exactly, together with its
	// zero-based position in the collection.
	// Returns *errs.ObjectNotFoundError when no dish matches.
	Get(ctx context.Context, id string) (*dish.Dish, int, error)

	// Add appends a new dish.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update replaces the stored dish that has the same id.
	Update(ctx context.Context, aggregate *dish.Dish) error
}
