package cmd

import (
	"fmt"
	"log/slog"

	"grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/memory"
	"grubdash/internal/adapters/out/postgres"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	ids        ports.IDGenerator
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		ids:        kernel.NewUUIDGenerator(),
		logger:     logger,
	}
}

// NewUnitOfWorkFactory builds the store selected by STORE_DRIVER.
// The returned close function releases the database connection, if any.
func NewUnitOfWorkFactory(config Config) (ports.UnitOfWorkFactory, func() error, error) {
	switch config.StoreDriver {
	case StoreDriverPostgres:
		db, err := postgres.Open(config.DSN())
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("database handle: %w", err)
		}
		return postgres.NewGormUnitOfWorkFactory(db), sqlDB.Close, nil

	case StoreDriverMemory:
		store := memory.NewStore()
		if config.SeedPath != "" {
			seed, err := memory.ReadSeedFile(config.SeedPath)
			if err != nil {
				return nil, nil, err
			}
			if err := store.Load(seed); err != nil {
				return nil, nil, fmt.Errorf("load seed %s: %w", config.SeedPath, err)
			}
		}
		return store, func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unsupported STORE_DRIVER %q", config.StoreDriver)
	}
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.uowFactory, c.ids)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	return commands.NewDeleteDishCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactory, c.ids)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateDish:  c.CreateCreateDishCommandHandler(),
		UpdateDish:  c.CreateUpdateDishCommandHandler(),
		DeleteDish:  c.CreateDeleteDishCommandHandler(),
		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		DeleteOrder: c.CreateDeleteOrderCommandHandler(),
		ListDishes:  c.CreateListDishesQueryHandler(),
		GetDish:     c.CreateGetDishQueryHandler(),
		ListOrders:  c.CreateListOrdersQueryHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),
	})
}

// CreateRouter builds the echo instance with metrics registered on a fresh registry.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	metrics, err := http.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	return http.NewRouter(c.CreateServer(), c.logger, metrics), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.config.ReportSchedule,
		c.CreateListDishesQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.logger,
	)
}
