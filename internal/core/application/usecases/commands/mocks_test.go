package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/core/application/request"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIDGenerator struct{ mock.Mock }

func (m *MockIDGenerator) NextID() string {
	args := m.Called()
	return args.String(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) List(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*dish.Dish)
	return d, args.Error(1)
}
func (m *MockDishRepository) Get(ctx context.Context, id string) (*dish.Dish, int, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*dish.Dish)
	return d, args.Int(1), args.Error(2)
}
func (m *MockDishRepository) Add(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func payload(t *testing.T, doc string) request.Payload {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return request.NewPayload(raw)
}

// sequenceIDs hands out ids in order and fails the test when it runs out.
type sequenceIDs struct {
	t   *testing.T
	ids []string
}

func (s *sequenceIDs) NextID() string {
	s.t.Helper()
	require.NotEmpty(s.t, s.ids, "NextID called more often than expected")
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func seededStore(t *testing.T, dishes []*dish.Dish, orders []*order.Order) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	uow := store.Create()
	require.NoError(t, uow.Begin(t.Context()))
	for _, d := range dishes {
		require.NoError(t, uow.DishRepository().Add(t.Context(), d))
	}
	for _, o := range orders {
		require.NoError(t, uow.OrderRepository().Add(t.Context(), o))
	}
	require.NoError(t, uow.Commit(t.Context()))
	return store
}

func storedDishes(t *testing.T, store *memory.Store) []*dish.Dish {
	t.Helper()
	uow := store.Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	dishes, err := uow.DishRepository().List(t.Context())
	require.NoError(t, err)
	return dishes
}

func storedOrders(t *testing.T, store *memory.Store) []*order.Order {
	t.Helper()
	uow := store.Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	orders, err := uow.OrderRepository().List(t.Context())
	require.NoError(t, err)
	return orders
}

func mustDish(t *testing.T, id string) *dish.Dish {
	t.Helper()
	d, err := dish.NewDish(id, "Dolcelatte and chickpea spaghetti", "Spaghetti topped with a blend of dolcelatte and fresh chickpeas", 19, "https://images.example.com/spaghetti.jpg")
	require.NoError(t, err)
	return d
}

func mustOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem("d1", 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "1600 Pennsylvania Avenue NW", "(202) 456-1111", status, []order.Item{item})
	require.NoError(t, err)
	return o
}
