package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableVehiclesQueryHandler retrieves vehicles in Free status,
// the candidate pool for transport assignment.
type GetAvailableVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableVehiclesQueryHandler creates a handler for free vehicle queries.
func NewGetAvailableVehiclesQueryHandler(db *gorm.DB) GetAvailableVehiclesQueryHandler {
	return GetAvailableVehiclesQueryHandler{db: db}
}

// Handle executes the query sorted by license plate.
func (h GetAvailableVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableVehiclesQuery,
) ([]GetAvailableVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAvailableVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			brand,
			model,
			license_plate,
			capacity,
			current_mileage,
			next_maintenance_km,
			last_maintenance_date
		FROM vehicles
		WHERE status = ?
		ORDER BY license_plate
	`, vehicle.Free.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp         GetAvailableVehiclesQueryResponse
			id           uuid.UUID
			maintainedAt sql.NullTime
		)

		if err = rows.Scan(
			&id,
			&resp.Brand,
			&resp.Model,
			&resp.LicensePlate,
			&resp.Capacity,
			&resp.CurrentMileage,
			&resp.NextMaintenanceKm,
			&maintainedAt,
		); err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = vehicleID

		if maintainedAt.Valid {
			resp.LastMaintenanceDate = &maintainedAt.Time
		}

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
