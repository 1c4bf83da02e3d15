package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the full status change history of one order.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's status history.
func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderHistoryQueryResponse represents one history entry in the read model.
// OldStatus is nil for the entry recorded at order creation.
type GetOrderHistoryQueryResponse struct {
	ID        kernel.UUID
	OldStatus *string
	NewStatus string
	ChangedBy string
	ChangedAt time.Time
	Note      string
}
