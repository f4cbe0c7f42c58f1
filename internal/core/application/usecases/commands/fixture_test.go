package commands_test

import (
	"testing"

	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memoryStore
	notifier *recordingNotifier

	customer   *identity.User
	other      *identity.User
	admin      *identity.User
	superAdmin *identity.User

	addressID      kernel.UUID
	otherAddressID kernel.UUID
	menu           *catalog.Menu
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:      newMemoryStore(),
		notifier:   &recordingNotifier{},
		customer:   newUser(t, "Asha", identity.RoleUser),
		other:      newUser(t, "Ravi", identity.RoleUser),
		admin:      newUser(t, "Meera", identity.RoleAdmin),
		superAdmin: newUser(t, "Root", identity.RoleSuperAdmin),
	}

	home, err := address.NewAddress(kernel.NewUUID(), f.customer.ID(), address.Fields{
		AddressLine1: "12 MG Road", Landmark: "Temple", FlatOrBlock: "B-204", City: "Pune", Pincode: "411001",
	})
	require.NoError(t, err)
	elsewhere, err := address.NewAddress(kernel.NewUUID(), f.other.ID(), address.Fields{
		AddressLine1: "4 FC Road", Landmark: "College", FlatOrBlock: "A-1", City: "Pune", Pincode: "411004",
	})
	require.NoError(t, err)
	f.addressID = home.ID()
	f.otherAddressID = elsewhere.ID()

	f.menu, err = catalog.NewMenu(kernel.NewUUID(), f.admin.ID(), "Thali House", "", 4, nil, f.admin.Actor())
	require.NoError(t, err)

	f.store.seed(f.customer, f.other, f.admin, f.superAdmin, home, elsewhere, f.menu)
	return f
}

func newUser(t *testing.T, name string, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser(kernel.NewUUID(), name, name+"@example.com", role)
	require.NoError(t, err)
	return u
}

func (f *fixture) seedItem(t *testing.T, stock int, price string, available bool) *catalog.Item {
	t.Helper()
	return f.seedItemOn(t, f.menu, stock, price, available)
}

func (f *fixture) seedItemOn(t *testing.T, menu *catalog.Menu, stock int, price string, available bool) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(kernel.NewUUID(), menu.ID(), "Item", "", kernel.MustMoney(price), stock,
		true, available, f.admin.Actor())
	require.NoError(t, err)
	f.store.seed(item)
	return item
}

// seedMenu adds a second menu owned by the super admin.
func (f *fixture) seedMenu(t *testing.T, name string, active bool) *catalog.Menu {
	t.Helper()
	menu, err := catalog.NewMenu(kernel.NewUUID(), f.superAdmin.ID(), name, "", 3, nil, f.superAdmin.Actor())
	require.NoError(t, err)
	require.NoError(t, menu.SetActive(active, f.superAdmin.Actor()))
	f.store.seed(menu)
	return menu
}

func (f *fixture) createOrder(t *testing.T, actor *identity.User, lines ...commands.OrderLine) (kernel.UUID, error) {
	t.Helper()
	return f.createOrderOn(t, actor, nil, lines...)
}

func (f *fixture) createOrderOn(
	t *testing.T,
	actor *identity.User,
	menuID *kernel.UUID,
	lines ...commands.OrderLine,
) (kernel.UUID, error) {
	t.Helper()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, f.addressID, menuID, order.Cash, lines)
	require.NoError(t, err)
	return orderID, commands.NewCreateOrderCommandHandler(f.store, f.notifier).Handle(t.Context(), cmd)
}

func (f *fixture) addItem(t *testing.T, actor *identity.User, orderID, itemID kernel.UUID, quantity int) error {
	t.Helper()
	cmd, err := commands.NewAddItemToOrderCommand(actor, orderID, itemID, quantity)
	require.NoError(t, err)
	return commands.NewAddItemToOrderCommandHandler(f.store).Handle(t.Context(), cmd)
}

func (f *fixture) removeLine(t *testing.T, actor *identity.User, orderID, orderItemID kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewRemoveItemFromOrderCommand(actor, orderID, orderItemID)
	require.NoError(t, err)
	return commands.NewRemoveItemFromOrderCommandHandler(f.store).Handle(t.Context(), cmd)
}

func (f *fixture) changeStatus(t *testing.T, actor *identity.User, orderID kernel.UUID, status order.Status) error {
	t.Helper()
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status)
	require.NoError(t, err)
	return commands.NewUpdateOrderStatusCommandHandler(f.store, f.notifier).Handle(t.Context(), cmd)
}

func (f *fixture) deleteOrder(t *testing.T, actor *identity.User, orderID kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewDeleteOrderCommand(actor, orderID)
	require.NoError(t, err)
	return commands.NewDeleteOrderCommandHandler(f.store).Handle(t.Context(), cmd)
}

func line(item *catalog.Item, quantity int) commands.OrderLine {
	return commands.OrderLine{ItemID: item.ID(), Quantity: quantity}
}
