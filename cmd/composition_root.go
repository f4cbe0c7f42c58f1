package cmd

import (
	"context"
	"log/slog"

	httpin "mealorders/internal/adapters/in/http"
	"mealorders/internal/adapters/out/postgres"
	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/ports"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAddressCommandHandler() commands.CreateAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAddressCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	return commands.NewCreateMenuCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetMenuActiveCommandHandler() commands.SetMenuActiveCommandHandler {
	return commands.NewSetMenuActiveCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuRatingCommandHandler() commands.UpdateMenuRatingCommandHandler {
	return commands.NewUpdateMenuRatingCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	return commands.NewUpdateItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetOrCreatePendingOrderCommandHandler() commands.GetOrCreatePendingOrderCommandHandler {
	return commands.NewGetOrCreatePendingOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddItemToOrderCommandHandler() commands.AddItemToOrderCommandHandler {
	return commands.NewAddItemToOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveItemFromOrderCommandHandler() commands.RemoveItemFromOrderCommandHandler {
	return commands.NewRemoveItemFromOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenusQueryHandler() queries.ListMenusQueryHandler {
	return queries.NewListMenusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAddressesByUserQueryHandler() queries.ListAddressesByUserQueryHandler {
	return queries.NewListAddressesByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemQueryHandler() queries.GetItemQueryHandler {
	return queries.NewGetItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockItemsQueryHandler() queries.GetLowStockItemsQueryHandler {
	return queries.NewGetLowStockItemsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter. Users are looked up outside
// of any transaction.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	return httpin.NewServer(httpin.Handlers{
		CreateUser:          c.CreateCreateUserCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		GetOrCreateCart:     c.CreateGetOrCreatePendingOrderCommandHandler(),
		AddItemToOrder:      c.CreateAddItemToOrderCommandHandler(),
		RemoveItemFromOrder: c.CreateRemoveItemFromOrderCommandHandler(),
		UpdateOrderStatus:   c.CreateUpdateOrderStatusCommandHandler(),
		UpdateOrderDetails:  c.CreateUpdateOrderDetailsCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		CreateMenu:          c.CreateCreateMenuCommandHandler(),
		SetMenuActive:       c.CreateSetMenuActiveCommandHandler(),
		UpdateMenuRating:    c.CreateUpdateMenuRatingCommandHandler(),
		CreateItem:          c.CreateCreateItemCommandHandler(),
		UpdateItem:          c.CreateUpdateItemCommandHandler(),
		CreateAddress:       c.CreateCreateAddressCommandHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		ListOrders:          c.CreateListOrdersQueryHandler(),
		GetMenu:             c.CreateGetMenuQueryHandler(),
		ListMenus:           c.CreateListMenusQueryHandler(),
		GetItem:             c.CreateGetItemQueryHandler(),
		ListMenuItems:       c.CreateListMenuItemsQueryHandler(),
		LowStockItems:       c.CreateGetLowStockItemsQueryHandler(),
		ListAddresses:       c.CreateListAddressesByUserQueryHandler(),
	}, c.uowFactory.Create().UserRepository(), c.logger)
}

// BootstrapSuperAdmin registers the SUPERADMIN named by SUPERADMIN_EMAIL so that a fresh
// installation has someone who can provision users. An existing user with that email is
// left untouched.
func (c *CompositionRoot) BootstrapSuperAdmin(ctx context.Context) error {
	if c.config.SuperAdminEmail == "" {
		return nil
	}
	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), c.config.SuperAdminName,
		c.config.SuperAdminEmail, identity.RoleSuperAdmin)
	if err != nil {
		return err
	}
	err = c.CreateCreateUserCommandHandler().Handle(ctx, cmd)
	switch {
	case errs.IsInvalidState(err):
		c.logger.InfoContext(ctx, "superadmin already registered", "email", c.config.SuperAdminEmail)
		return nil
	case err != nil:
		return err
	}
	c.logger.InfoContext(ctx, "superadmin registered", "email", c.config.SuperAdminEmail, "user_id", cmd.UserID().String())
	return nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	lowStock, err := jobs.NewLowStockReportJob(
		c.CreateGetLowStockItemsQueryHandler(),
		c.config.LowStockThreshold,
		c.config.LowStockCron,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(lowStock), nil
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}
