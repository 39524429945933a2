// Package memory provides the default process-local store for dishes and orders.
//
// The store owns its entries and only hands out copies. Every access goes through a
// UnitOfWork: Begin takes the store lock and snapshots both collections, repositories
// work on the snapshot, and Commit publishes it. The lock is held until Commit or
// Rollback, so request pipelines run one at a time.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

var (
	ErrUnitOfWorkIsNotActive    = errors.New("unit of work is not active")
	ErrUnitOfWorkAlreadyStarted  = errors.New("unit of work already started")
)

// Store holds both collections in insertion order.
type Store struct {
	mu     sync.Mutex
	dishes []*dish.Dish
	orders []*order.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		dishes: make([]*dish.Dish, 0),
		orders: make([]*order.Order, 0),
	}
}

// Create returns a new unit of work bound to the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// UnitOfWork is a serialised, all-or-nothing view of the store.
type UnitOfWork struct {
	store  *Store
	active bool

	dishes []*dish.Dish
	orders []*order.Order
}

// Begin locks the store and takes a working copy of both collections.
// It blocks while another unit of work is active.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return ErrUnitOfWorkAlreadyStarted
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	u.active = true
	u.dishes = slices.Clone(u.store.dishes)
	u.orders = slices.Clone(u.store.orders)
	return nil
}

// Commit publishes the working copy and releases the store.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrUnitOfWorkIsNotActive
	}

	u.store.dishes = u.dishes
	u.store.orders = u.orders
	u.release()
	return nil
}

// Rollback discards the working copy and releases the store.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrUnitOfWorkIsNotActive
	}

	u.release()
	return nil
}

func (u *UnitOfWork) release() {
	u.active = false
	u.dishes = nil
	u.orders = nil
	u.store.mu.Unlock()
}

// DishRepository returns a repository over the working copy.
func (u *UnitOfWork) DishRepository() ports.DishRepository {
	return &DishRepository{uow: u}
}

// OrderRepository returns a repository over the working copy.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}
