package http

import (
	"net/http"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateUser handles POST /api/v1/users - registers a system account.
// The password is hashed by the command handler; a duplicate login is a
// conflict.
func (s *Server) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	role, err := kernel.RoleFromString(req.Role)
	if err != nil {
		return badRequest(c, "Invalid role: "+err.Error())
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(userID, req.Login, req.Password, req.FullName, role)
	if err != nil {
		return badRequest(c, "Invalid user data: "+err.Error())
	}

	if err := s.handlers.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: userID.String()})
}

// CreateClient handles POST /api/v1/clients - registers a client company.
func (s *Server) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateClientCommand(
		clientID, req.Name, req.ContactInfo, req.Email, req.Phone)
	if err != nil {
		return badRequest(c, "Invalid client data: "+err.Error())
	}

	if err := s.handlers.CreateClient.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: clientID.String()})
}

// GetNotifications handles GET /api/v1/notifications - lists the caller's
// notifications, newest first. Pass unread=true for unread only.
func (s *Server) GetNotifications(c echo.Context) error {
	query, err := queries.NewGetNotificationsQuery(
		actorID(c), c.QueryParam("unread") == "true")
	if err != nil {
		return writeError(c, err)
	}

	rows, err := s.handlers.GetNotifications.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toNotificationResponses(rows))
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
// Only the addressee may mark a notification read.
func (s *Server) MarkNotificationRead(c echo.Context) error {
	notificationID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id: "+err.Error())
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actorID(c))
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.handlers.MarkNotificationRead.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
