package commands_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"mealorders/internal/core/application/usecases/commands"
	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/catalog"
	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/core/domain/model/order"
	"mealorders/internal/core/ports"
	"mealorders/internal/pkg/errs"
)

var errNoTransaction = errors.New("no transaction in progress")

// memoryState is one consistent version of the data. Stored aggregates are private clones,
// so a handler mutating what it loaded never changes the state behind the transaction's back.
type memoryState struct {
	users     map[string]*identity.User
	addresses map[string]*address.Address
	menus     map[string]*catalog.Menu
	items     map[string]*catalog.Item
	orders    map[string]*order.Order
}

func (s memoryState) clone() memoryState {
	return memoryState{
		users:     maps.Clone(s.users),
		addresses: maps.Clone(s.addresses),
		menus:     maps.Clone(s.menus),
		items:     maps.Clone(s.items),
		orders:    maps.Clone(s.orders),
	}
}

// memoryStore is an in-memory database with fully serialised transactions: Begin blocks
// until the previous transaction committed or rolled back.
type memoryStore struct {
	txLock    sync.Mutex
	committed memoryState
}

func newMemoryStore() *memoryStore {
	return &memoryStore{committed: memoryState{
		users:     map[string]*identity.User{},
		addresses: map[string]*address.Address{},
		menus:     map[string]*catalog.Menu{},
		items:     map[string]*catalog.Item{},
		orders:    map[string]*order.Order{},
	}}
}

func (s *memoryStore) Create() commands.UoW { return &memoryUoW{store: s} }

func (s *memoryStore) catalogFactory() commands.CatalogUoWFactory {
	return catalogFactoryFunc(func() commands.CatalogUoW { return &memoryUoW{store: s} })
}

func (s *memoryStore) userFactory() commands.UserUoWFactory {
	return userFactoryFunc(func() commands.UserUoW { return &memoryUoW{store: s} })
}

func (s *memoryStore) addressFactory() commands.AddressUoWFactory {
	return addressFactoryFunc(func() commands.AddressUoW { return &memoryUoW{store: s} })
}

type catalogFactoryFunc func() commands.CatalogUoW

func (f catalogFactoryFunc) Create() commands.CatalogUoW { return f() }

type userFactoryFunc func() commands.UserUoW

func (f userFactoryFunc) Create() commands.UserUoW { return f() }

type addressFactoryFunc func() commands.AddressUoW

func (f addressFactoryFunc) Create() commands.AddressUoW { return f() }

// seed writes directly into the committed state.
func (s *memoryStore) seed(aggregates ...any) {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	for _, a := range aggregates {
		switch v := a.(type) {
		case *identity.User:
			s.committed.users[v.ID().String()] = v
		case *address.Address:
			s.committed.addresses[v.ID().String()] = v
		case *catalog.Menu:
			s.committed.menus[v.ID().String()] = cloneMenu(v)
		case *catalog.Item:
			s.committed.items[v.ID().String()] = cloneItem(v)
		case *order.Order:
			s.committed.orders[v.ID().String()] = cloneOrder(v)
		default:
			panic("unsupported aggregate")
		}
	}
}

func (s *memoryStore) item(id kernel.UUID) *catalog.Item {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	if i, ok := s.committed.items[id.String()]; ok {
		return cloneItem(i)
	}
	return nil
}

func (s *memoryStore) menu(id kernel.UUID) *catalog.Menu {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	if m, ok := s.committed.menus[id.String()]; ok {
		return cloneMenu(m)
	}
	return nil
}

func (s *memoryStore) menuCount() int {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	return len(s.committed.menus)
}

func (s *memoryStore) user(id kernel.UUID) *identity.User {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	return s.committed.users[id.String()]
}

func (s *memoryStore) address(id kernel.UUID) *address.Address {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	return s.committed.addresses[id.String()]
}

func (s *memoryStore) order(id kernel.UUID) *order.Order {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	if o, ok := s.committed.orders[id.String()]; ok {
		return cloneOrder(o)
	}
	return nil
}

func (s *memoryStore) ordersOf(userID kernel.UUID) []*order.Order {
	s.txLock.Lock()
	defer s.txLock.Unlock()
	var out []*order.Order
	for _, o := range s.committed.orders {
		if o.IsOwnedBy(userID) {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

type memoryUoW struct {
	store *memoryStore
	tx    *memoryState
}

func (u *memoryUoW) Begin(_ context.Context) error {
	if u.tx != nil {
		return nil
	}
	u.store.txLock.Lock()
	state := u.store.committed.clone()
	u.tx = &state
	return nil
}

func (u *memoryUoW) Commit(_ context.Context) error {
	if u.tx == nil {
		return errNoTransaction
	}
	u.store.committed = *u.tx
	u.tx = nil
	u.store.txLock.Unlock()
	return nil
}

func (u *memoryUoW) Rollback(_ context.Context) error {
	if u.tx == nil {
		return errNoTransaction
	}
	u.tx = nil
	u.store.txLock.Unlock()
	return nil
}

func (u *memoryUoW) UserRepository() ports.UserRepository       { return memoryUsers{u} }
func (u *memoryUoW) AddressRepository() ports.AddressRepository { return memoryAddresses{u} }
func (u *memoryUoW) MenuRepository() ports.MenuRepository       { return memoryMenus{u} }
func (u *memoryUoW) ItemRepository() ports.ItemRepository       { return memoryItems{u} }
func (u *memoryUoW) OrderRepository() ports.OrderRepository     { return memoryOrders{u} }

type memoryUsers struct{ u *memoryUoW }

func (r memoryUsers) Add(_ context.Context, user *identity.User) error {
	r.u.tx.users[user.ID().String()] = user
	return nil
}

func (r memoryUsers) Get(_ context.Context, id kernel.UUID) (*identity.User, error) {
	if user, ok := r.u.tx.users[id.String()]; ok {
		return user, nil
	}
	return nil, errs.NewObjectNotFoundError("userID", id)
}

func (r memoryUsers) GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	return r.Get(ctx, id)
}

type memoryAddresses struct{ u *memoryUoW }

func (r memoryAddresses) Add(_ context.Context, a *address.Address) error {
	r.u.tx.addresses[a.ID().String()] = a
	return nil
}

func (r memoryAddresses) Get(_ context.Context, id kernel.UUID) (*address.Address, error) {
	if a, ok := r.u.tx.addresses[id.String()]; ok {
		return a, nil
	}
	return nil, errs.NewObjectNotFoundError("addressID", id)
}

type memoryMenus struct{ u *memoryUoW }

func (r memoryMenus) Add(_ context.Context, m *catalog.Menu) error {
	r.u.tx.menus[m.ID().String()] = cloneMenu(m)
	return nil
}

func (r memoryMenus) Update(ctx context.Context, m *catalog.Menu) error {
	return r.Add(ctx, m)
}

func (r memoryMenus) Get(_ context.Context, id kernel.UUID) (*catalog.Menu, error) {
	if m, ok := r.u.tx.menus[id.String()]; ok {
		return cloneMenu(m), nil
	}
	return nil, errs.NewObjectNotFoundError("menuID", id)
}

func (r memoryMenus) CountByOwner(_ context.Context, ownerID kernel.UUID) (int64, error) {
	var n int64
	for _, m := range r.u.tx.menus {
		if m.IsOwnedBy(ownerID) {
			n++
		}
	}
	return n, nil
}

type memoryItems struct{ u *memoryUoW }

func (r memoryItems) Add(_ context.Context, i *catalog.Item) error {
	r.u.tx.items[i.ID().String()] = cloneItem(i)
	return nil
}

func (r memoryItems) Update(_ context.Context, i *catalog.Item) error {
	if i.Stock() < 0 {
		return errs.NewStateIsInvalidError("item "+i.ID().String(), "stock below zero")
	}
	r.u.tx.items[i.ID().String()] = cloneItem(i)
	return nil
}

func (r memoryItems) Get(_ context.Context, id kernel.UUID) (*catalog.Item, error) {
	if i, ok := r.u.tx.items[id.String()]; ok {
		return cloneItem(i), nil
	}
	return nil, errs.NewObjectNotFoundError("itemID", id)
}

func (r memoryItems) GetForUpdate(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	return r.Get(ctx, id)
}

func (r memoryItems) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) (map[string]*catalog.Item, error) {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b kernel.UUID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	out := make(map[string]*catalog.Item, len(ids))
	for _, id := range sorted {
		i, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id.String()] = i
	}
	return out, nil
}

type memoryOrders struct{ u *memoryUoW }

func (r memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.u.tx.orders[o.ID().String()] = cloneOrder(o)
	return nil
}

func (r memoryOrders) Update(ctx context.Context, o *order.Order) error {
	if _, ok := r.u.tx.orders[o.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("orderID", o.ID())
	}
	return r.Add(ctx, o)
}

func (r memoryOrders) Delete(_ context.Context, id kernel.UUID) error {
	delete(r.u.tx.orders, id.String())
	return nil
}

func (r memoryOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := r.u.tx.orders[id.String()]; ok {
		return cloneOrder(o), nil
	}
	return nil, errs.NewObjectNotFoundError("orderID", id)
}

func (r memoryOrders) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r memoryOrders) FindOldestPendingByUser(_ context.Context, userID kernel.UUID) (*order.Order, error) {
	var oldest *order.Order
	for _, o := range r.u.tx.orders {
		if !o.IsOwnedBy(userID) || o.Status() != order.Pending {
			continue
		}
		if oldest == nil || o.CreatedAt().Before(oldest.CreatedAt()) {
			oldest = o
		}
	}
	if oldest == nil {
		return nil, errs.NewObjectNotFoundError("userID", userID)
	}
	return cloneOrder(oldest), nil
}

func (r memoryOrders) FindOrderIDByLine(_ context.Context, orderItemID kernel.UUID) (kernel.UUID, error) {
	for _, o := range r.u.tx.orders {
		if _, ok := o.Line(orderItemID); ok {
			return o.ID(), nil
		}
	}
	return kernel.UUID{}, errs.NewObjectNotFoundError("orderItemID", orderItemID)
}

func cloneItem(i *catalog.Item) *catalog.Item {
	c, err := catalog.RestoreItem(catalog.ItemState{
		ID:          i.ID(),
		MenuID:      i.MenuID(),
		Name:        i.Name(),
		Details:     i.Details(),
		Price:       i.Price(),
		Stock:       i.Stock(),
		IsVeg:       i.IsVeg(),
		IsAvailable: i.IsAvailable(),
		CreatedBy:   i.CreatedBy(),
		UpdatedBy:   i.UpdatedBy(),
		CreatedAt:   i.CreatedAt(),
		UpdatedAt:   i.UpdatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return c
}

func cloneMenu(m *catalog.Menu) *catalog.Menu {
	c, err := catalog.RestoreMenu(m.ID(), m.OwnerID(), m.Name(), m.Details(), m.Rating(), m.IsActive(),
		m.KitchenAddresses(), m.CreatedBy(), m.UpdatedBy(), m.CreatedAt(), m.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

func cloneOrder(o *order.Order) *order.Order {
	lines := make([]*order.OrderItem, 0, len(o.Items()))
	for _, l := range o.Items() {
		c, err := order.RestoreOrderItem(l.ID(), l.ItemID(), l.Quantity(), l.PriceAtPurchase())
		if err != nil {
			panic(err)
		}
		lines = append(lines, c)
	}
	c, err := order.RestoreOrder(order.State{
		ID:            o.ID(),
		UserID:        o.UserID(),
		AddressID:     o.AddressID(),
		MenuID:        o.MenuID(),
		PaymentMode:   o.PaymentMode(),
		PaymentStatus: o.PaymentStatus(),
		Status:        o.Status(),
		Items:         lines,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return c
}

// recordingNotifier captures notifications synchronously.
type recordingNotifier struct {
	mu      sync.Mutex
	created []kernel.UUID
	changed []order.Status
}

func (n *recordingNotifier) NotifyOrderCreated(_ context.Context, o *order.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, o.ID())
}

func (n *recordingNotifier) NotifyStatusChanged(_ context.Context, _ *order.Order, newStatus order.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changed = append(n.changed, newStatus)
}

func (n *recordingNotifier) createdCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.created)
}
