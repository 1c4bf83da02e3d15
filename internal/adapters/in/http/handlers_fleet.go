package http

import (
	"errors"
	"net/http"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateVehicle handles POST /api/v1/vehicles - registers a vehicle in the
// fleet. A duplicate license plate is reported as a conflict.
func (s *Server) CreateVehicle(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		vehicleID,
		req.Brand,
		req.Model,
		req.LicensePlate,
		req.Capacity,
		req.NextMaintenanceKm,
		req.CurrentMileage,
	)
	if err != nil {
		return badRequest(c, "Invalid vehicle data: "+err.Error())
	}

	if err := s.handlers.CreateVehicle.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: vehicleID.String()})
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) GetAvailableVehicles(c echo.Context) error {
	rows, err := s.handlers.GetAvailableVehicles.Handle(
		c.Request().Context(), queries.NewGetAvailableVehiclesQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toVehicleResponses(rows))
}

// CreateDriver handles POST /api/v1/drivers - registers a driver, optionally
// linked to a user account for the driver screens.
func (s *Server) CreateDriver(c echo.Context) error {
	var req createDriverRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	userID, err := optionalUUID(req.UserID)
	if err != nil {
		return badRequest(c, "Invalid user id: "+err.Error())
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID,
		userID,
		req.FullName,
		req.Phone,
		req.LicenseNumber,
		req.ExperienceYears,
	)
	if err != nil {
		return badRequest(c, "Invalid driver data: "+err.Error())
	}

	if err := s.handlers.CreateDriver.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: driverID.String()})
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(c echo.Context) error {
	rows, err := s.handlers.GetAvailableDrivers.Handle(
		c.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDriverResponses(rows))
}

// GetRoutes handles GET /api/v1/routes - lists routes across the fleet.
func (s *Server) GetRoutes(c echo.Context) error {
	query, err := queries.NewGetRoutesQuery(nil)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.handlers.GetRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toRouteResponses(rows))
}

// GetMyRoutes handles GET /api/v1/routes/my - lists the routes assigned to
// the calling driver. A caller with no driver profile gets an empty list.
func (s *Server) GetMyRoutes(c echo.Context) error {
	drv, err := s.drivers.GetByUser(c.Request().Context(), actorID(c))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusOK, []routeResponse{})
		}
		return writeError(c, err)
	}

	driverID := drv.ID()
	query, err := queries.NewGetRoutesQuery(&driverID)
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.handlers.GetRoutes.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toRouteResponses(rows))
}

// StartRoute handles POST /api/v1/routes/:id/start - the driver (or a
// logistician) begins the route and the vehicle goes in transit.
func (s *Server) StartRoute(c echo.Context) error {
	return s.advanceRoute(c, commands.RouteActionStart)
}

// CompleteRoute handles POST /api/v1/routes/:id/complete - finishes the
// route, delivers its order, and releases the transport.
func (s *Server) CompleteRoute(c echo.Context) error {
	return s.advanceRoute(c, commands.RouteActionComplete)
}

func (s *Server) advanceRoute(c echo.Context, action commands.RouteAction) error {
	routeID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid route id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceRouteCommand(routeID, action, actorID(c), actorRole(c))
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.handlers.AdvanceRoute.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
