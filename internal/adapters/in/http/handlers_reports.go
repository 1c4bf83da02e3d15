package http

import (
	"net/http"
	"time"

	"logistrans/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/dashboard - operational counters for the
// logistician screens.
func (s *Server) GetDashboard(c echo.Context) error {
	stats, err := s.handlers.GetDashboard.Handle(
		c.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		OrdersByStatus:   stats.OrdersByStatus,
		FreeVehicles:     stats.FreeVehicles,
		AvailableDrivers: stats.AvailableDrivers,
		ActiveRoutes:     stats.ActiveRoutes,
		StoredItems:      stats.StoredItems,
	})
}

// GetDeliveryReport handles GET /api/v1/reports/deliveries?from=...&to=... -
// deliveries completed in the half-open period [from, to).
func (s *Server) GetDeliveryReport(c echo.Context) error {
	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return badRequest(c, "Invalid 'from' timestamp, want RFC 3339")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return badRequest(c, "Invalid 'to' timestamp, want RFC 3339")
	}

	query, err := queries.NewGetDeliveryReportQuery(from, to)
	if err != nil {
		return badRequest(c, err.Error())
	}

	rows, err := s.handlers.GetDeliveryReport.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toReportResponses(rows))
}
