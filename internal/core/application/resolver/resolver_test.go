package resolver_test

import (
	"context"
	"errors"
	"testing"

	"grubdash/internal/core/application/request"
	"grubdash/internal/core/application/resolver"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) List(_ context.Context) ([]*dish.Dish, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDishRepository) Get(ctx context.Context, id string) (*dish.Dish, int, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Int(1), args.Error(2)
}
func (m *MockDishRepository) Add(_ context.Context, _ *dish.Dish) error    { return nil }
func (m *MockDishRepository) Update(_ context.Context, _ *dish.Dish) error { return nil }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) List(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, int, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Int(1), args.Error(2)
}
func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error    { return nil }
func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockOrderRepository) Remove(_ context.Context, _ string) error       { return nil }

func newDish(t *testing.T, id string) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(id, "Broccoli and beetroot stir fry", "Crunchy stir fry", 15, "https://images.example.com/stirfry.jpg")
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	item, err := order.NewItem("d1", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(id, "Rick Sanchez (C-132)", "(202) 456-1111", []order.Item{item})
	require.NoError(t, err)
	return o
}

func TestDishExists(t *testing.T) {
	t.Run("attaches dish and index", func(t *testing.T) {
		ctx := t.Context()
		d := newDish(t, "d2")
		repo := new(MockDishRepository)
		repo.On("Get", ctx, "d2").Return(d, 1, nil).Once()
		scope := &request.DishScope{DishID: "d2"}

		err := resolver.DishExists(repo)(ctx, scope)

		require.NoError(t, err)
		assert.Same(t, d, scope.Dish)
		assert.Equal(t, 1, scope.Index)
		assert.True(t, scope.Resolved())
		repo.AssertExpectations(t)
	})

	t.Run("fails with not found", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDishRepository)
		repo.On("Get", ctx, "nope").Return(nil, -1, errs.NewObjectNotFoundError("dish", "nope")).Once()
		scope := &request.DishScope{DishID: "nope"}

		err := resolver.DishExists(repo)(ctx, scope)

		require.ErrorIs(t, err, errs.ErrNotFound)
		reqErr, ok := errs.AsRequestError(err)
		require.True(t, ok)
		assert.Equal(t, "Could not find dish with id nope.", reqErr.Message)
		assert.False(t, scope.Resolved())
	})

	t.Run("passes through store failures", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDishRepository)
		storeErr := errors.New("connection reset")
		repo.On("Get", ctx, "d1").Return(nil, -1, storeErr).Once()

		err := resolver.DishExists(repo)(ctx, &request.DishScope{DishID: "d1"})

		require.ErrorIs(t, err, storeErr)
		_, ok := errs.AsRequestError(err)
		assert.False(t, ok)
	})
}

func TestDishExistsForDelete(t *testing.T) {
	t.Run("existing dish is method not allowed", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDishRepository)
		repo.On("Get", ctx, "d1").Return(newDish(t, "d1"), 0, nil).Once()
		scope := &request.DishScope{DishID: "d1"}

		err := resolver.DishExistsForDelete(repo)(ctx, scope)

		require.ErrorIs(t, err, errs.ErrMethodNotAllowed)
		reqErr, _ := errs.AsRequestError(err)
		assert.Equal(t, "DELETE not allowed for dish d1.", reqErr.Message)
		assert.True(t, scope.Resolved())
	})

	t.Run("missing dish is method not allowed with not found message", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockDishRepository)
		repo.On("Get", ctx, "ghost").Return(nil, -1, errs.NewObjectNotFoundError("dish", "ghost")).Once()

		err := resolver.DishExistsForDelete(repo)(ctx, &request.DishScope{DishID: "ghost"})

		require.ErrorIs(t, err, errs.ErrMethodNotAllowed)
		require.NotErrorIs(t, err, errs.ErrNotFound)
		reqErr, _ := errs.AsRequestError(err)
		assert.Equal(t, "Could not find dish with id ghost.", reqErr.Message)
	})
}

func TestOrderExists(t *testing.T) {
	t.Run("attaches order and index", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, "o3")
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, "o3").Return(o, 2, nil).Once()
		scope := &request.OrderScope{OrderID: "o3"}

		require.NoError(t, resolver.OrderExists(repo)(ctx, scope))

		assert.Same(t, o, scope.Order)
		assert.Equal(t, 2, scope.Index)
	})

	t.Run("fails with not found", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockOrderRepository)
		repo.On("Get", ctx, "o9").Return(nil, -1, errs.NewObjectNotFoundError("order", "o9")).Once()

		err := resolver.OrderExists(repo)(ctx, &request.OrderScope{OrderID: "o9"})

		require.ErrorIs(t, err, errs.ErrNotFound)
		reqErr, _ := errs.AsRequestError(err)
		assert.Equal(t, "Could not find order with id o9.", reqErr.Message)
	})
}
