package http

import (
	"errors"
	"net/http"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError translates application errors to HTTP status codes. Anything
// not classified by the errs sentinels is treated as an internal failure.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrRouteNotOwnedByActor),
		errors.Is(err, commands.ErrNotificationNotAddressedToReader):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return c.JSON(status, Error{Code: status, Message: err.Error()})
}
