package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves the append-only status history of an
// order, joined with the display name of the user who made each change.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query in chronological order.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sh.id,
			sh.old_status,
			sh.new_status,
			u.full_name,
			sh.changed_at,
			sh.note
		FROM order_status_history sh
		JOIN users u ON u.id = sh.changed_by
		WHERE sh.order_id = ?
		ORDER BY sh.changed_at, sh.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetOrderHistoryQueryResponse
			id        uuid.UUID
			oldStatus sql.NullString
		)

		if err = rows.Scan(
			&id,
			&oldStatus,
			&resp.NewStatus,
			&resp.ChangedBy,
			&resp.ChangedAt,
			&resp.Note,
		); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID

		if oldStatus.Valid {
			resp.OldStatus = &oldStatus.String
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
