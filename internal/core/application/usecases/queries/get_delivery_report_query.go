package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var (
	ErrGetDeliveryReportQueryIsNotConstructed = errors.New(
		"GetDeliveryReportQuery must be created via NewGetDeliveryReportQuery constructor",
	)
	ErrReportPeriodIsInvalid = errors.New("report period end must be after its start")
)

// GetDeliveryReportQuery retrieves completed deliveries within a period,
// with the client, driver and vehicle that served each order.
type GetDeliveryReportQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetDeliveryReportQuery creates a report query over [from, to).
func NewGetDeliveryReportQuery(from, to time.Time) (GetDeliveryReportQuery, error) {
	if !to.After(from) {
		return GetDeliveryReportQuery{}, ErrReportPeriodIsInvalid
	}
	return GetDeliveryReportQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryReportQueryIsNotConstructed)
}

// From returns the inclusive period start.
func (q GetDeliveryReportQuery) From() time.Time { return q.from }

// To returns the exclusive period end.
func (q GetDeliveryReportQuery) To() time.Time { return q.to }

// GetDeliveryReportQueryResponse represents one delivered order in the report.
// DriverName and VehiclePlate are nil for orders delivered without a route.
type GetDeliveryReportQueryResponse struct {
	OrderID            kernel.UUID
	Number             string
	ClientName         string
	DriverName         *string
	VehiclePlate       *string
	Cost               float64
	OrderDate          time.Time
	ActualDeliveryDate time.Time
}
