// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders with optional status and client filters.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(nil, nil)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct {
	status   *order.Status
	clientID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve orders.
// Both filters are optional; nil means no filtering on that field.
func NewGetOrdersQuery(status *order.Status, clientID *kernel.UUID) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = status
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.clientID = clientID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// ClientID returns the client filter, or nil.
func (q GetOrdersQuery) ClientID() *kernel.UUID { return q.clientID }

// GetOrdersQueryResponse represents one order row in the read model.
type GetOrdersQueryResponse struct {
	ID                  kernel.UUID
	Number              string
	ClientName          string
	CargoDescription    string
	Weight              float64
	AddressFrom         string
	AddressTo           string
	OrderDate           time.Time
	PlannedDeliveryDate *time.Time
	ActualDeliveryDate  *time.Time
	Cost                float64
	Status              string
}
