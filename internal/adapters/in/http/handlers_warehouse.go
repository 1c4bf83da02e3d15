package http

import (
	"net/http"
	"time"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddWarehouseItem handles POST /api/v1/warehouse/items - registers cargo
// arriving at the warehouse. Arrival defaults to now when omitted.
func (s *Server) AddWarehouseItem(c echo.Context) error {
	var req addWarehouseItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	arrival := time.Now().UTC()
	if req.ArrivalDate != nil {
		arrival = *req.ArrivalDate
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddWarehouseItemCommand(
		itemID,
		req.CargoName,
		req.Quantity,
		req.StorageZone,
		req.Volume,
		arrival,
	)
	if err != nil {
		return badRequest(c, "Invalid item data: "+err.Error())
	}

	if err := s.handlers.AddWarehouseItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: itemID.String()})
}

// GetWarehouseItems handles GET /api/v1/warehouse/items.
func (s *Server) GetWarehouseItems(c echo.Context) error {
	rows, err := s.handlers.GetWarehouseItems.Handle(
		c.Request().Context(), queries.NewGetWarehouseItemsQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toWarehouseItemResponses(rows))
}

// ReserveWarehouseItem handles POST /api/v1/warehouse/items/:id/reserve -
// reserves stored cargo for an order. Reserving anything not in storage is
// a conflict.
func (s *Server) ReserveWarehouseItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid item id: "+err.Error())
	}

	var req reserveWarehouseItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(c, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewReserveWarehouseItemCommand(itemID, orderID)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.handlers.ReserveWarehouseItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
