package http

import (
	"errors"
	"net/http"

	"mealorders/internal/generated/servers"
	"mealorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest
	case errs.IsInvalidState(err):
		return http.StatusConflict
	case errs.IsForbidden(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err. Internal failures are logged and replaced with a generic message.
func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
		return writeMessage(c, status, "internal server error")
	}
	return writeMessage(c, status, err.Error())
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, servers.Error{Code: int32(status), Message: message})
}

func (s *Server) handleEchoError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		_ = writeMessage(c, httpErr.Code, message)
		return
	}
	_ = s.writeError(c, err)
}

func badRequest(c echo.Context, message string) error {
	return writeMessage(c, http.StatusBadRequest, message)
}
