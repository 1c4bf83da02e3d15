package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order rows joined with client names.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query, most recent orders first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			o.id,
			o.number,
			c.name,
			o.cargo_description,
			o.weight,
			o.address_from,
			o.address_to,
			o.order_date,
			o.planned_delivery_date,
			o.actual_delivery_date,
			o.cost,
			o.status
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE 1 = 1`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlQuery += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	if query.ClientID() != nil {
		sqlQuery += " AND o.client_id = ?"
		args = append(args, query.ClientID().Bytes())
	}

	sqlQuery += " ORDER BY o.order_date DESC"

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetOrdersQueryResponse
			id          uuid.UUID
			plannedAt   sql.NullTime
			deliveredAt sql.NullTime
		)

		if err = rows.Scan(
			&id,
			&resp.Number,
			&resp.ClientName,
			&resp.CargoDescription,
			&resp.Weight,
			&resp.AddressFrom,
			&resp.AddressTo,
			&resp.OrderDate,
			&plannedAt,
			&deliveredAt,
			&resp.Cost,
			&resp.Status,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if plannedAt.Valid {
			resp.PlannedDeliveryDate = &plannedAt.Time
		}
		if deliveredAt.Valid {
			resp.ActualDeliveryDate = &deliveredAt.Time
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
