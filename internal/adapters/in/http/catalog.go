package http

import (
	"net/http"

	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/generated/servers"
	"mealorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DefaultLowStockThreshold is used by GET /items/low-stock without ?threshold.
const DefaultLowStockThreshold = 5

// CreateAddress handles POST /api/v1/addresses. The address is owned by the caller.
func (s *Server) CreateAddress(c echo.Context) error {
	var req servers.CreateAddressJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	addressID := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(actorFrom(c), addressID, address.Fields{
		AddressLine1: req.AddressLine1,
		AddressLine2: valueOr(req.AddressLine2, ""),
		Landmark:     req.Landmark,
		FlatOrBlock:  req.FlatOrBlock,
		City:         req.City,
		Pincode:      req.Pincode,
	})
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CreateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created(addressID))
}

// CreateMenu handles POST /api/v1/menus.
func (s *Server) CreateMenu(c echo.Context) error {
	var req servers.CreateMenuJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	var kitchens []commands.KitchenAddressInput
	if req.KitchenAddresses != nil {
		for _, k := range *req.KitchenAddresses {
			kitchens = append(kitchens, commands.KitchenAddressInput{
				AddressLine1: k.AddressLine1,
				AddressLine2: valueOr(k.AddressLine2, ""),
				City:         k.City,
				Pincode:      k.Pincode,
			})
		}
	}

	menuID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(actorFrom(c), menuID, req.Name,
		valueOr(req.Details, ""), valueOr(req.Rating, 0), kitchens)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CreateMenu.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created(menuID))
}

// GetMenu handles GET /api/v1/menus/:id.
func (s *Server) GetMenu(c echo.Context, id openapi_types.UUID) error {
	menuID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetMenuQuery(menuID)
	if err != nil {
		return s.writeError(c, err)
	}
	menu, err := s.handlers.GetMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMenu(menu))
}

// ListMenus handles GET /api/v1/menus?active=true&owner_id=<id>.
func (s *Server) ListMenus(c echo.Context, params servers.ListMenusParams) error {
	ownerID, err := optionalDomainID(params.OwnerId)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListMenusQuery(queries.MenuFilter{
		ActiveOnly: valueOr(params.Active, false),
		OwnerID:    ownerID,
	})
	if err != nil {
		return s.writeError(c, err)
	}
	menus, err := s.handlers.ListMenus.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toMenus(menus))
}

// SetMenuActive handles PUT /api/v1/menus/:id/active.
func (s *Server) SetMenuActive(c echo.Context, id openapi_types.UUID) error {
	menuID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.SetMenuActiveJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	cmd, err := commands.NewSetMenuActiveCommand(actorFrom(c), menuID, req.Active)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.SetMenuActive.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateMenuRating handles PUT /api/v1/menus/:id/rating.
func (s *Server) UpdateMenuRating(c echo.Context, id openapi_types.UUID) error {
	menuID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.UpdateMenuRatingJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	cmd, err := commands.NewUpdateMenuRatingCommand(actorFrom(c), menuID, req.Rating)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateMenuRating.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateItem handles POST /api/v1/menus/:id/items. Items are available unless the body
// says otherwise.
func (s *Server) CreateItem(c echo.Context, id openapi_types.UUID) error {
	menuID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.CreateItemJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.writeError(c, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(actorFrom(c), itemID, menuID, req.Name, valueOr(req.Details, ""),
		price, req.Stock, valueOr(req.IsVeg, false), valueOr(req.IsAvailable, true))
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.CreateItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created(itemID))
}

// ListMenuItems handles GET /api/v1/menus/:id/items?available=true&veg=false.
func (s *Server) ListMenuItems(c echo.Context, id openapi_types.UUID, params servers.ListMenuItemsParams) error {
	menuID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewListMenuItemsQuery(menuID, queries.ItemFilter{
		AvailableOnly: valueOr(params.Available, false),
		Veg:           params.Veg,
	})
	if err != nil {
		return s.writeError(c, err)
	}
	items, err := s.handlers.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toItems(items))
}

// GetItem handles GET /api/v1/items/:id.
func (s *Server) GetItem(c echo.Context, id openapi_types.UUID) error {
	itemID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	query, err := queries.NewGetItemQuery(itemID)
	if err != nil {
		return s.writeError(c, err)
	}
	item, err := s.handlers.GetItem.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toItem(item))
}

// GetLowStockItems handles GET /api/v1/items/low-stock?threshold=5. Admins only.
func (s *Server) GetLowStockItems(c echo.Context, params servers.GetLowStockItemsParams) error {
	actor := actorFrom(c)
	if !actor.IsAdmin() {
		return s.writeError(c, errs.NewForbiddenError("user "+actor.ID().String(), "view the low stock report"))
	}

	query, err := queries.NewGetLowStockItemsQuery(valueOr(params.Threshold, DefaultLowStockThreshold))
	if err != nil {
		return s.writeError(c, err)
	}
	items, err := s.handlers.LowStockItems.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toItems(items))
}

// UpdateItemStock handles PUT /api/v1/items/:id/stock.
func (s *Server) UpdateItemStock(c echo.Context, id openapi_types.UUID) error {
	itemID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.UpdateItemStockJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	cmd, err := commands.NewUpdateItemStockCommand(actorFrom(c), itemID, req.Stock)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateItem.HandleStock(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetItemAvailability handles PUT /api/v1/items/:id/availability.
func (s *Server) SetItemAvailability(c echo.Context, id openapi_types.UUID) error {
	itemID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.SetItemAvailabilityJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	cmd, err := commands.NewSetItemAvailabilityCommand(actorFrom(c), itemID, req.Available)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateItem.HandleAvailability(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateItemPrice handles PUT /api/v1/items/:id/price. Prices captured by existing order
// lines do not change.
func (s *Server) UpdateItemPrice(c echo.Context, id openapi_types.UUID) error {
	itemID, err := domainID(id)
	if err != nil {
		return s.writeError(c, err)
	}
	var req servers.UpdateItemPriceJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewUpdateItemPriceCommand(actorFrom(c), itemID, price)
	if err != nil {
		return s.writeError(c, err)
	}
	if err = s.handlers.UpdateItem.HandlePrice(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
