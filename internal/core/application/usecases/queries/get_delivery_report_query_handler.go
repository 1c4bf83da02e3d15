package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryReportQueryHandler builds the delivered-orders report over a
// period. Orders delivered without transport appear with nil driver and
// vehicle columns.
type GetDeliveryReportQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryReportQueryHandler creates a handler for delivery reports.
func NewGetDeliveryReportQueryHandler(db *gorm.DB) GetDeliveryReportQueryHandler {
	return GetDeliveryReportQueryHandler{db: db}
}

// Handle executes the report query in delivery order.
func (h GetDeliveryReportQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryReportQuery,
) ([]GetDeliveryReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	report := make([]GetDeliveryReportQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number,
			c.name,
			d.full_name,
			v.license_plate,
			o.cost,
			o.order_date,
			o.actual_delivery_date
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		LEFT JOIN routes r ON r.order_id = o.id AND r.status = 'Completed'
		LEFT JOIN drivers d ON d.id = r.driver_id
		LEFT JOIN vehicles v ON v.id = r.vehicle_id
		WHERE o.status = ?
		  AND o.actual_delivery_date >= ?
		  AND o.actual_delivery_date < ?
		ORDER BY o.actual_delivery_date
	`, order.Delivered.String(), query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp         GetDeliveryReportQueryResponse
			id           uuid.UUID
			driverName   sql.NullString
			vehiclePlate sql.NullString
		)

		if err = rows.Scan(
			&id,
			&resp.Number,
			&resp.ClientName,
			&driverName,
			&vehiclePlate,
			&resp.Cost,
			&resp.OrderDate,
			&resp.ActualDeliveryDate,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID

		if driverName.Valid {
			resp.DriverName = &driverName.String
		}
		if vehiclePlate.Valid {
			resp.VehiclePlate = &vehiclePlate.String
		}

		report = append(report, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}
