package cmd

import (
	"log/slog"

	httpin "logistrans/internal/adapters/in/http"
	"logistrans/internal/adapters/out/postgres"
	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. It is the only place that
// knows concrete implementations.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// NewHTTPServer builds the HTTP server with every endpoint handler wired.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	f := c.commandUoWFactory()

	handlers := httpin.Handlers{
		CreateOrder:          commands.NewCreateOrderCommandHandler(f),
		AssignTransport:      commands.NewAssignTransportCommandHandler(f),
		ChangeOrderStatus:    commands.NewChangeOrderStatusCommandHandler(f),
		AdvanceRoute:         commands.NewAdvanceRouteCommandHandler(f),
		CreateClient:         commands.NewCreateClientCommandHandler(f),
		CreateUser:           commands.NewCreateUserCommandHandler(f),
		CreateVehicle:        commands.NewCreateVehicleCommandHandler(f),
		CreateDriver:         commands.NewCreateDriverCommandHandler(f),
		AddWarehouseItem:     commands.NewAddWarehouseItemCommandHandler(f),
		ReserveWarehouseItem: commands.NewReserveWarehouseItemCommandHandler(f),
		MarkNotificationRead: commands.NewMarkNotificationReadCommandHandler(f),

		GetOrders:            queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrderHistory:      queries.NewGetOrderHistoryQueryHandler(c.gormDB),
		GetAvailableVehicles: queries.NewGetAvailableVehiclesQueryHandler(c.gormDB),
		GetAvailableDrivers:  queries.NewGetAvailableDriversQueryHandler(c.gormDB),
		GetRoutes:            queries.NewGetRoutesQueryHandler(c.gormDB),
		GetWarehouseItems:    queries.NewGetWarehouseItemsQueryHandler(c.gormDB),
		GetNotifications:     queries.NewGetNotificationsQueryHandler(c.gormDB),
		GetDashboard:         queries.NewGetDashboardQueryHandler(c.gormDB),
		GetDeliveryReport:    queries.NewGetDeliveryReportQueryHandler(c.gormDB),
	}

	// Login and driver lookups run outside transactions; an unbegun unit of
	// work serves as a plain repository source.
	repos := c.uowFactory.Create()
	tokens := httpin.NewTokenService([]byte(c.config.JWTSecret), c.config.TokenTTL)

	return httpin.NewServer(handlers, repos.UserRepository(), repos.DriverRepository(), tokens)
}

// NewJobManager builds the background job manager.
func (c *CompositionRoot) NewJobManager(logger *slog.Logger) *jobs.JobManager {
	handler := commands.NewNotifyMaintenanceDueCommandHandler(c.commandUoWFactory())
	return jobs.NewJobManager(handler, c.config.MaintenanceSchedule, logger)
}

// FuncUoWFactory adapts a closure to the unit of work factory port.
type FuncUoWFactory func() commands.UoW

// Create returns a fresh unit of work.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
