package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// UserLookup resolves the acting user. ports.UserRepository satisfies it.
type UserLookup interface {
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	CreateUser          commands.CreateUserCommandHandler
	CreateOrder         commands.CreateOrderCommandHandler
	GetOrCreateCart     commands.GetOrCreatePendingOrderCommandHandler
	AddItemToOrder      commands.AddItemToOrderCommandHandler
	RemoveItemFromOrder commands.RemoveItemFromOrderCommandHandler
	UpdateOrderStatus   commands.UpdateOrderStatusCommandHandler
	UpdateOrderDetails  commands.UpdateOrderDetailsCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	CreateMenu          commands.CreateMenuCommandHandler
	SetMenuActive       commands.SetMenuActiveCommandHandler
	UpdateMenuRating    commands.UpdateMenuRatingCommandHandler
	CreateItem          commands.CreateItemCommandHandler
	UpdateItem          commands.UpdateItemCommandHandler
	CreateAddress       commands.CreateAddressCommandHandler

	// Query handlers
	GetOrder      queries.GetOrderQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
	GetMenu       queries.GetMenuQueryHandler
	ListMenus     queries.ListMenusQueryHandler
	GetItem       queries.GetItemQueryHandler
	ListMenuItems queries.ListMenuItemsQueryHandler
	LowStockItems queries.GetLowStockItemsQueryHandler
	ListAddresses queries.ListAddressesByUserQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface on top of the order core use cases.
// Authentication happens upstream; the gateway passes the authenticated user id in the
// X-User-ID header.
type Server struct {
	handlers Handlers
	users    UserLookup
	logger   *slog.Logger

	swagger *openapi3.T
	router  routers.Router
}

// NewServer creates a new HTTP server with the required command and query handlers.
// It fails when the embedded OpenAPI document cannot be loaded.
func NewServer(handlers Handlers, users UserLookup, logger *slog.Logger) (*Server, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	if err = registerDoc(swagger); err != nil {
		return nil, err
	}

	return &Server{
		handlers: handlers,
		users:    users,
		logger:   logger.With("component", "http"),
		swagger:  swagger,
		router:   router,
	}, nil
}

// Echo builds the echo instance with every route registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = s.handleEchoError
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(apiBasePath, s.authenticate, s.validateRequest)
	servers.RegisterHandlers(api, s)

	return e
}
