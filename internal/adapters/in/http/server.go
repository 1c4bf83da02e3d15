package http

import (
	"errors"
	"net/http"
	"time"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/ports"
	"logistrans/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Handlers bundles the use case handlers the HTTP server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	AssignTransport      commands.AssignTransportCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler
	AdvanceRoute         commands.AdvanceRouteCommandHandler
	CreateClient         commands.CreateClientCommandHandler
	CreateUser           commands.CreateUserCommandHandler
	CreateVehicle        commands.CreateVehicleCommandHandler
	CreateDriver         commands.CreateDriverCommandHandler
	AddWarehouseItem     commands.AddWarehouseItemCommandHandler
	ReserveWarehouseItem commands.ReserveWarehouseItemCommandHandler
	MarkNotificationRead commands.MarkNotificationReadCommandHandler

	GetOrders            queries.GetOrdersQueryHandler
	GetOrderHistory      queries.GetOrderHistoryQueryHandler
	GetAvailableVehicles queries.GetAvailableVehiclesQueryHandler
	GetAvailableDrivers  queries.GetAvailableDriversQueryHandler
	GetRoutes            queries.GetRoutesQueryHandler
	GetWarehouseItems    queries.GetWarehouseItemsQueryHandler
	GetNotifications     queries.GetNotificationsQueryHandler
	GetDashboard         queries.GetDashboardQueryHandler
	GetDeliveryReport    queries.GetDeliveryReportQueryHandler
}

// Server exposes the application's commands and queries over JSON HTTP.
// It translates between transport DTOs and use case types; all business
// rules stay behind the handlers.
type Server struct {
	handlers Handlers
	users    ports.UserRepository
	drivers  ports.DriverRepository
	tokens   *TokenService
}

// NewServer creates the HTTP server. The user repository serves login; the
// driver repository resolves the calling user to their driver profile for
// the "my routes" view.
func NewServer(
	handlers Handlers,
	users ports.UserRepository,
	drivers ports.DriverRepository,
	tokens *TokenService,
) *Server {
	return &Server{
		handlers: handlers,
		users:    users,
		drivers:  drivers,
		tokens:   tokens,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance. Resources are
// gated by role: admins manage users and read reports and inherit the
// logistician surface; drivers see only their own routes and notifications.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.POST("/auth/login", s.Login)

	api := e.Group("/api/v1", s.tokens.AuthRequired())

	logistics := api.Group("", RoleRequired(kernel.RoleLogistician))
	logistics.POST("/orders", s.CreateOrder)
	logistics.GET("/orders", s.GetOrders)
	logistics.GET("/orders/:id/history", s.GetOrderHistory)
	logistics.POST("/orders/:id/transport", s.AssignTransport)
	logistics.POST("/orders/:id/status", s.ChangeOrderStatus)
	logistics.POST("/clients", s.CreateClient)
	logistics.POST("/vehicles", s.CreateVehicle)
	logistics.GET("/vehicles/available", s.GetAvailableVehicles)
	logistics.POST("/drivers", s.CreateDriver)
	logistics.GET("/drivers/available", s.GetAvailableDrivers)
	logistics.GET("/routes", s.GetRoutes)
	logistics.POST("/warehouse/items", s.AddWarehouseItem)
	logistics.GET("/warehouse/items", s.GetWarehouseItems)
	logistics.POST("/warehouse/items/:id/reserve", s.ReserveWarehouseItem)
	logistics.GET("/dashboard", s.GetDashboard)

	admin := api.Group("", RoleRequired(kernel.RoleAdmin))
	admin.POST("/users", s.CreateUser)
	admin.GET("/reports/deliveries", s.GetDeliveryReport)

	// Any authenticated role: drivers work their own routes and everyone
	// reads their own notifications.
	api.GET("/routes/my", s.GetMyRoutes)
	api.POST("/routes/:id/start", s.StartRoute)
	api.POST("/routes/:id/complete", s.CompleteRoute)
	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
}

// Login handles POST /auth/login - verifies credentials and issues a JWT.
// Unknown logins and wrong passwords are indistinguishable to the caller.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	unauthorized := func() error {
		return c.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid login or password",
		})
	}

	u, err := s.users.GetByLogin(c.Request().Context(), req.Login)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsRequired) {
			return unauthorized()
		}
		return writeError(c, err)
	}
	if !u.IsActive() {
		return unauthorized()
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)) != nil {
		return unauthorized()
	}

	token, err := s.tokens.Generate(u, time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		UserID:   u.ID().String(),
		FullName: u.FullName(),
		Role:     u.Role().String(),
	})
}
