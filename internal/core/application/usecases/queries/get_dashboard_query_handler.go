package queries

import (
	"context"

	"logistrans/internal/core/domain/model/vehicle"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler aggregates counters across orders, the fleet,
// drivers, routes and the warehouse in a handful of grouped counts.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle executes the counter queries.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	resp := GetDashboardQueryResponse{
		OrdersByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardQueryResponse{}, err
		}
		resp.OrdersByStatus[status] = count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM vehicles WHERE status = ?),
			(SELECT COUNT(*) FROM drivers WHERE is_available = ?),
			(SELECT COUNT(*) FROM routes WHERE status IN ('Planned', 'InTransit')),
			(SELECT COUNT(*) FROM warehouse_items WHERE status = 'Stored')
	`, vehicle.Free.String(), true).Row()

	if err = row.Scan(
		&resp.FreeVehicles,
		&resp.AvailableDrivers,
		&resp.ActiveRoutes,
		&resp.StoredItems,
	); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return resp, nil
}
