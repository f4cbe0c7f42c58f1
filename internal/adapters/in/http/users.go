package http

import (
	"net/http"

	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/generated/servers"
	"mealorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// RegisterUser handles POST /api/v1/users. Only a SUPERADMIN may provision users; the id
// may be supplied so that it matches the identity provider's subject.
func (s *Server) RegisterUser(c echo.Context) error {
	actor := actorFrom(c)
	if !actor.IsSuperAdmin() {
		return s.writeError(c, errs.NewForbiddenError("user "+actor.ID().String(), "register users"))
	}

	var req servers.RegisterUserJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	userID := kernel.NewUUID()
	if req.Id != nil {
		id, err := domainID(*req.Id)
		if err != nil {
			return s.writeError(c, err)
		}
		userID = id
	}
	role := identity.RoleUser
	if req.Role != nil {
		r, err := identity.ParseRole(string(*req.Role))
		if err != nil {
			return s.writeError(c, err)
		}
		role = r
	}

	cmd, err := commands.NewCreateUserCommand(userID, req.Name, req.Email, role)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CreateUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created(userID))
}

// ListUserAddresses handles GET /api/v1/users/:userId/addresses.
func (s *Server) ListUserAddresses(c echo.Context, userId openapi_types.UUID) error {
	userID, err := domainID(userId)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListAddressesByUserQuery(actorFrom(c), userID)
	if err != nil {
		return s.writeError(c, err)
	}
	addresses, err := s.handlers.ListAddresses.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAddresses(addresses))
}
