package postgres

import (
	"logistrans/internal/adapters/out/postgres/clientrepo"
	"logistrans/internal/adapters/out/postgres/driverrepo"
	"logistrans/internal/adapters/out/postgres/historyrepo"
	"logistrans/internal/adapters/out/postgres/notificationrepo"
	"logistrans/internal/adapters/out/postgres/orderrepo"
	"logistrans/internal/adapters/out/postgres/routerepo"
	"logistrans/internal/adapters/out/postgres/userrepo"
	"logistrans/internal/adapters/out/postgres/vehiclerepo"
	"logistrans/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
// Referenced tables migrate before the tables that reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&clientrepo.ClientDTO{},
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&orderrepo.OrderDTO{},
		&routerepo.RouteDTO{},
		&historyrepo.StatusChangeDTO{},
		&warehouserepo.ItemDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
