package http

import (
	"net/http"

	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID := kernel.NewUUID()
	if req.OrderId != nil {
		id, err := domainID(*req.OrderId)
		if err != nil {
			return s.writeError(c, err)
		}
		orderID = id
	}
	addressID, err := domainID(req.AddressId)
	if err != nil {
		return s.writeError(c, err)
	}
	menuID, err := optionalDomainID(req.MenuId)
	if err != nil {
		return s.writeError(c, err)
	}
	var mode order.PaymentMode
	if req.PaymentMode != nil {
		if mode, err = order.ParsePaymentMode(string(*req.PaymentMode)); err != nil {
			return s.writeError(c, err)
		}
	}
	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, err := domainID(line.ItemId)
		if err != nil {
			return s.writeError(c, err)
		}
		lines = append(lines, commands.OrderLine{ItemID: itemID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(actorFrom(c), orderID, addressID, menuID, mode, lines)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created(orderID))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context, id openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetOrderQuery(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}
	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// ListOrders handles GET /api/v1/orders.
//
// Filters, first match wins: ?user_id=<id>, ?status=<status>, ?scope=menus (orders on the
// admin's own menus), ?scope=all. Without a filter the caller's own orders are listed.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	actor := actorFrom(c)

	var (
		query queries.ListOrdersQuery
		err   error
	)
	switch {
	case params.UserId != nil:
		userID, convErr := domainID(*params.UserId)
		if convErr != nil {
			return s.writeError(c, convErr)
		}
		query, err = queries.NewListOrdersByUserQuery(actor, userID)
	case params.Status != nil:
		status, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return s.writeError(c, parseErr)
		}
		query, err = queries.NewListOrdersByStatusQuery(actor, status)
	case params.Scope != nil && *params.Scope == servers.ListOrdersParamsScopeMenus:
		query, err = queries.NewListOrdersForAdminQuery(actor)
	case params.Scope != nil && *params.Scope == servers.ListOrdersParamsScopeAll:
		query, err = queries.NewListAllOrdersQuery(actor)
	case params.Scope != nil:
		return badRequest(c, "unknown scope "+string(*params.Scope))
	default:
		query, err = queries.NewListOrdersByUserQuery(actor, actor.ID())
	}
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// UpdateOrderDetails handles PATCH /api/v1/orders/:id.
func (s *Server) UpdateOrderDetails(c echo.Context, id openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.UpdateOrderDetailsJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var (
		mode   *order.PaymentMode
		status *order.PaymentStatus
	)
	if req.PaymentMode != nil {
		m, parseErr := order.ParsePaymentMode(string(*req.PaymentMode))
		if parseErr != nil {
			return s.writeError(c, parseErr)
		}
		mode = &m
	}
	if req.PaymentStatus != nil {
		ps, parseErr := order.ParsePaymentStatus(string(*req.PaymentStatus))
		if parseErr != nil {
			return s.writeError(c, parseErr)
		}
		status = &ps
	}
	addressID, err := optionalDomainID(req.AddressId)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(actorFrom(c), orderID, mode, status, addressID)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateOrderDetails.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context, id openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.UpdateOrderStatusJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actorFrom(c), orderID, status)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context, id openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewDeleteOrderCommand(actorFrom(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AddItemToOrder handles POST /api/v1/orders/:id/items.
func (s *Server) AddItemToOrder(c echo.Context, id openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.AddItemToOrderJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	itemID, err := domainID(req.ItemId)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAddItemToOrderCommand(actorFrom(c), orderID, itemID, req.Quantity)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.AddItemToOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveItemFromOrder handles DELETE /api/v1/orders/:id/items/:orderItemId.
func (s *Server) RemoveItemFromOrder(c echo.Context, id openapi_types.UUID, orderItemId openapi_types.UUID) error {
	orderID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	orderItemID, err := domainID(orderItemId)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRemoveItemFromOrderCommand(actorFrom(c), orderID, orderItemID)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.RemoveItemFromOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrCreateCart handles POST /api/v1/users/:userId/cart and returns the id of the
// user's PENDING order, creating an empty one when there is none.
func (s *Server) GetOrCreateCart(c echo.Context, userId openapi_types.UUID) error {
	userID, err := domainID(userId)
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewGetOrCreatePendingOrderCommand(actorFrom(c), userID)
	if err != nil {
		return s.writeError(c, err)
	}
	orderID, err := s.handlers.GetOrCreateCart.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, created(orderID))
}
