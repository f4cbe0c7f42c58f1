package http

import (
	"net/http"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the id of the user authenticated by the gateway.
const UserIDHeader = "X-User-ID"

const actorKey = "actor"

// authenticate loads the acting user named by UserIDHeader. Unknown or malformed ids are
// rejected with 401 so that no handler ever runs without an actor.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(UserIDHeader)
		if raw == "" {
			return writeMessage(c, http.StatusUnauthorized, "missing "+UserIDHeader+" header")
		}
		userID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeMessage(c, http.StatusUnauthorized, "malformed "+UserIDHeader+" header")
		}

		user, err := s.users.Get(c.Request().Context(), userID)
		if errs.IsNotFound(err) {
			return writeMessage(c, http.StatusUnauthorized, "unknown user")
		}
		if err != nil {
			return s.writeError(c, err)
		}

		c.Set(actorKey, user)
		return next(c)
	}
}

func actorFrom(c echo.Context) *identity.User {
	user, _ := c.Get(actorKey).(*identity.User)
	return user
}
