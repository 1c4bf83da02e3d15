package http

import (
	"net/http"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - registers a new delivery order,
// optionally assigning transport in the same transaction.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return badRequest(c, "Invalid client id: "+err.Error())
	}

	vehicleID, err := optionalUUID(req.VehicleID)
	if err != nil {
		return badRequest(c, "Invalid vehicle id: "+err.Error())
	}
	driverID, err := optionalUUID(req.DriverID)
	if err != nil {
		return badRequest(c, "Invalid driver id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		clientID,
		req.CargoDescription,
		req.Weight,
		req.AddressFrom,
		req.AddressTo,
		req.PlannedDeliveryDate,
		req.Cost,
		req.Notes,
		actorID(c),
		vehicleID,
		driverID,
	)
	if err != nil {
		return badRequest(c, "Invalid order data: "+err.Error())
	}

	if err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by status and client.
func (s *Server) GetOrders(c echo.Context) error {
	var status *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(c, "Invalid status filter: "+err.Error())
		}
		status = &parsed
	}

	var clientID *kernel.UUID
	if raw := c.QueryParam("client_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(c, "Invalid client filter: "+err.Error())
		}
		clientID = &parsed
	}

	query, err := queries.NewGetOrdersQuery(status, clientID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponses(rows))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history - returns the
// order's status audit trail in chronological order.
func (s *Server) GetOrderHistory(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := s.handlers.GetOrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toHistoryResponses(rows))
}

// AssignTransport handles POST /api/v1/orders/:id/transport - claims a free
// vehicle and an available driver for the order and plans its route.
func (s *Server) AssignTransport(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var req assignTransportRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(c, "Invalid vehicle id: "+err.Error())
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(c, "Invalid driver id: "+err.Error())
	}

	cmd, err := commands.NewAssignTransportCommand(
		orderID,
		vehicleID,
		driverID,
		req.PlannedStartTime,
		req.PlannedEndTime,
		actorID(c),
	)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.handlers.AssignTransport.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves the order
// through its lifecycle. Moving to Delivered completes the active route and
// releases its transport.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	var req changeOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus, actorID(c), req.Note)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
