package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehouseItemsQueryHandler retrieves the warehouse inventory with the
// numbers of the orders items are reserved for.
type GetWarehouseItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseItemsQueryHandler creates a handler for inventory queries.
func NewGetWarehouseItemsQueryHandler(db *gorm.DB) GetWarehouseItemsQueryHandler {
	return GetWarehouseItemsQueryHandler{db: db}
}

// Handle executes the query sorted by storage zone and arrival.
func (h GetWarehouseItemsQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseItemsQuery,
) ([]GetWarehouseItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetWarehouseItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.cargo_name,
			w.quantity,
			w.storage_zone,
			w.volume,
			w.status,
			w.arrival_date,
			w.departure_date,
			o.number
		FROM warehouse_items w
		LEFT JOIN orders o ON o.id = w.order_id
		ORDER BY w.storage_zone, w.arrival_date
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetWarehouseItemsQueryResponse
			id          uuid.UUID
			departedAt  sql.NullTime
			orderNumber sql.NullString
		)

		if err = rows.Scan(
			&id,
			&resp.CargoName,
			&resp.Quantity,
			&resp.StorageZone,
			&resp.Volume,
			&resp.Status,
			&resp.ArrivalDate,
			&departedAt,
			&orderNumber,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = itemID

		if departedAt.Valid {
			resp.DepartureDate = &departedAt.Time
		}
		if orderNumber.Valid {
			resp.OrderNumber = &orderNumber.String
		}

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
