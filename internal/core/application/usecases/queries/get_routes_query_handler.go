package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves route rows joined with order numbers,
// driver names and vehicle plates.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route list queries.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query, active routes before completed ones.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) ([]GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			r.id,
			o.number,
			d.full_name,
			v.license_plate,
			r.start_point,
			r.end_point,
			r.status,
			r.planned_start_time,
			r.planned_end_time,
			r.actual_start_time,
			r.actual_end_time,
			r.distance_km
		FROM routes r
		JOIN orders o ON o.id = r.order_id
		JOIN drivers d ON d.id = r.driver_id
		JOIN vehicles v ON v.id = r.vehicle_id`
	args := make([]any, 0, 1)

	if query.DriverID() != nil {
		sqlQuery += " WHERE r.driver_id = ?"
		args = append(args, query.DriverID().Bytes())
	}

	sqlQuery += `
		ORDER BY
			CASE r.status WHEN 'InTransit' THEN 0 WHEN 'Planned' THEN 1 ELSE 2 END,
			r.planned_start_time`

	routes := make([]GetRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp         GetRoutesQueryResponse
			id           uuid.UUID
			plannedStart sql.NullTime
			plannedEnd   sql.NullTime
			actualStart  sql.NullTime
			actualEnd    sql.NullTime
			distance     sql.NullFloat64
		)

		if err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.DriverName,
			&resp.VehiclePlate,
			&resp.StartPoint,
			&resp.EndPoint,
			&resp.Status,
			&plannedStart,
			&plannedEnd,
			&actualStart,
			&actualEnd,
			&distance,
		); err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = routeID

		if plannedStart.Valid {
			resp.PlannedStartTime = &plannedStart.Time
		}
		if plannedEnd.Valid {
			resp.PlannedEndTime = &plannedEnd.Time
		}
		if actualStart.Valid {
			resp.ActualStartTime = &actualStart.Time
		}
		if actualEnd.Valid {
			resp.ActualEndTime = &actualEnd.Time
		}
		if distance.Valid {
			resp.DistanceKm = &distance.Float64
		}

		routes = append(routes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
