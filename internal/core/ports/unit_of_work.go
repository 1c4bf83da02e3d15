package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Status cascades touch several aggregates at once (order, route, vehicle,
// driver, history, notifications), so a single unit of work exposes every
// repository rather than one interface per aggregate.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// VehicleRepository returns a VehicleRepository bound to the current transaction.
	VehicleRepository() VehicleRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// ClientRepository returns a ClientRepository bound to the current transaction.
	ClientRepository() ClientRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// WarehouseRepository returns a WarehouseRepository bound to the current transaction.
	WarehouseRepository() WarehouseRepository

	// NotificationRepository returns a NotificationRepository bound to the current transaction.
	NotificationRepository() NotificationRepository

	// StatusHistoryRepository returns a StatusHistoryRepository bound to the current transaction.
	StatusHistoryRepository() StatusHistoryRepository
}
