// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistrans/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UoW manages transactions across every aggregate in the system.
	// Status cascades touch orders, routes, vehicles, drivers, history and
	// notifications in one transaction, so handlers share a single unit of
	// work shape instead of per-aggregate variants.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager

		OrderRepository() ports.OrderRepository
		RouteRepository() ports.RouteRepository
		VehicleRepository() ports.VehicleRepository
		DriverRepository() ports.DriverRepository
		ClientRepository() ports.ClientRepository
		UserRepository() ports.UserRepository
		WarehouseRepository() ports.WarehouseRepository
		NotificationRepository() ports.NotificationRepository
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	// UoWFactory creates new unit of work instances, one per command.
	UoWFactory interface {
		Create() UoW
	}
)
