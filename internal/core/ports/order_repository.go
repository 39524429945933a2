package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders.
// Entries keep their insertion order.
type OrderRepository interface {
	// List returns every order in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// Get returns the first order whose id equals id exactly, together with its
	// zero-based position in the collection.
	// Returns *errs.ObjectNotFoundError when no order matches.
	Get(ctx context.Context, id string) (*order.Order, int, error)

	// Add appends a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order that has the same id.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes the order with the given id.
	// Returns *errs.ObjectNotFoundError when no order matches.
	Remove(ctx context.Context, id string) error
}
