package queries

import (
	"context"
	"database/sql"

	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler retrieves a user's notifications, newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			n.id,
			n.message,
			n.category,
			n.is_read,
			o.number,
			n.created_at
		FROM notifications n
		LEFT JOIN orders o ON o.id = n.order_id
		WHERE n.user_id = ?`
	args := []any{query.UserID().Bytes()}

	if query.UnreadOnly() {
		sqlQuery += " AND n.is_read = ?"
		args = append(args, false)
	}

	sqlQuery += " ORDER BY n.created_at DESC"

	notifications := make([]GetNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetNotificationsQueryResponse
			id          uuid.UUID
			orderNumber sql.NullString
		)

		if err = rows.Scan(
			&id,
			&resp.Message,
			&resp.Category,
			&resp.IsRead,
			&orderNumber,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID

		if orderNumber.Valid {
			resp.OrderNumber = &orderNumber.String
		}

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
