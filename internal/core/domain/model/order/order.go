package order

import (
	"errors"
	"time"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder, NewCart or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering workflow. It owns its lines and is the unit of
// transactional consistency: an order and its lines are always loaded, changed and stored together.
//
// Order follows these invariants:
//   - Must have a valid identifier and owning user
//   - Holds at most one OrderItem per catalog item
//   - totalAmount is recomputed after every structural change to the lines
//   - Status changes follow the Status state machine
//   - Lines change only while the status allows it
//
// The aggregate never touches stock. Methods that change quantities return the stock delta
// so that the caller can apply it through the catalog.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	addressID     *kernel.UUID
	menuID        *kernel.UUID
	paymentMode   PaymentMode
	paymentStatus PaymentStatus
	status        Status
	items         []*OrderItem
	totalAmount   kernel.Money
	createdAt     time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// State carries every persisted attribute of an Order and is used by RestoreOrder.
type State struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	AddressID     *kernel.UUID
	MenuID        *kernel.UUID
	PaymentMode   PaymentMode
	PaymentStatus PaymentStatus
	Status        Status
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewOrder creates an empty PENDING order owned by userID. The payment status starts as PENDING.
//
// Parameters:
//   - id: Identifier chosen by the caller
//   - userID: The acting user; never taken from client input
//   - addressID: Delivery address, nil for a cart that gets its address at checkout
//   - menuID: Optional menu the order is placed against
//   - paymentMode: How the customer intends to pay
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), user.ID(), &addressID, nil, order.Cash)
//	if err != nil {
//	    return err
//	}
//	diff, err := o.AddItem(kernel.NewUUID(), item.ID(), 3, item.Price())
func NewOrder(id, userID kernel.UUID, addressID, menuID *kernel.UUID, paymentMode PaymentMode) (*Order, error) {
	now := time.Now().UTC()
	return RestoreOrder(State{
		ID:            id,
		UserID:        userID,
		AddressID:     addressID,
		MenuID:        menuID,
		PaymentMode:   paymentMode,
		PaymentStatus: PaymentPending,
		Status:        Pending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// NewCart creates the empty pending order used as a shopping cart: no address, cash payment.
func NewCart(id, userID kernel.UUID) (*Order, error) {
	return NewOrder(id, userID, nil, nil, Cash)
}

// RestoreOrder rebuilds an Order read back from storage and recomputes its total.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		id:            s.ID,
		userID:        s.UserID,
		paymentMode:   s.PaymentMode,
		paymentStatus: s.PaymentStatus,
		status:        s.Status,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.ID.Validate(),
		s.UserID.Validate(),
		o.setAddress(s.AddressID),
		o.setMenu(s.MenuID),
		s.PaymentMode.Validate(),
		s.PaymentStatus.Validate(),
		s.Status.Validate(),
		o.setItems(s.Items),
	); err != nil {
		return nil, err
	}

	o.CalculateTotal()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) UserID() kernel.UUID          { return o.userID }
func (o *Order) PaymentMode() PaymentMode     { return o.paymentMode }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Status() Status               { return o.status }
func (o *Order) TotalAmount() kernel.Money    { return o.totalAmount }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// AddressID returns the delivery address, or nil for a cart without one.
func (o *Order) AddressID() *kernel.UUID {
	return copyID(o.addressID)
}

// MenuID returns the menu the order was placed against, if any.
func (o *Order) MenuID() *kernel.UUID {
	return copyID(o.menuID)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// Items returns a copy of the order lines.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// Line finds a line by its own identifier.
func (o *Order) Line(orderItemID kernel.UUID) (*OrderItem, bool) {
	for _, oi := range o.items {
		if oi.id.IsEqual(orderItemID) {
			return oi, true
		}
	}
	return nil, false
}

// LineForItem finds the line referencing a catalog item. Two lines are the same line
// when they reference the same item.
func (o *Order) LineForItem(itemID kernel.UUID) (*OrderItem, bool) {
	for _, oi := range o.items {
		if oi.itemID.IsEqual(itemID) {
			return oi, true
		}
	}
	return nil, false
}

// AddItem sets the quantity of itemID on the order.
//
// When the order already has a line for the item, that line's quantity becomes quantity and its
// captured price is kept. Otherwise a new line with id orderItemID is created at price.
//
// Returns:
//   - diff: the number of units the caller must deduct from stock; negative means units to restore
//   - error: InvalidArgument for a non-positive quantity, InvalidState when the status forbids line changes
func (o *Order) AddItem(orderItemID, itemID kernel.UUID, quantity int, price kernel.Money) (int, error) {
	if err := o.ensureLinesMutable(); err != nil {
		return 0, err
	}

	if existing, ok := o.LineForItem(itemID); ok {
		old := existing.quantity
		if err := existing.setQuantity(quantity); err != nil {
			return 0, err
		}
		o.CalculateTotal()
		o.touch()
		return quantity - old, nil
	}

	line, err := NewOrderItem(orderItemID, itemID, quantity, price)
	if err != nil {
		return 0, err
	}
	o.items = append(o.items, line)
	o.CalculateTotal()
	o.touch()
	return quantity, nil
}

// RemoveItem deletes a line and returns it so that the caller can restore its quantity to stock.
func (o *Order) RemoveItem(orderItemID kernel.UUID) (*OrderItem, error) {
	if err := o.ensureLinesMutable(); err != nil {
		return nil, err
	}

	for i, oi := range o.items {
		if oi.id.IsEqual(orderItemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.CalculateTotal()
			o.touch()
			return oi, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemID", orderItemID)
}

// ChangeStatus moves the order to next.
//
// Returns restoreStock == true exactly when the order enters CANCELLED, in which case the caller
// must put every line's quantity back into stock. Cancelling an already cancelled order is a no-op
// that returns false, so repeated cancel calls restore stock once.
//
// A cart cannot be confirmed before a delivery address is attached.
func (o *Order) ChangeStatus(next Status) (bool, error) {
	if next == Cancelled && o.status == Cancelled {
		return false, nil
	}
	if err := o.status.ValidateTransition(next); err != nil {
		return false, err
	}
	if next == Confirmed && o.addressID == nil {
		return false, errs.NewStateIsInvalidError("order "+o.id.String(), "no delivery address attached")
	}
	o.status = next
	o.touch()
	return next == Cancelled, nil
}

// HoldsStock reports whether the order's lines are still deducted from stock. Deleting such an
// order must restore them.
func (o *Order) HoldsStock() bool {
	return o.status != Cancelled
}

// UpdatePayment records payment details. Nil arguments leave the current value.
func (o *Order) UpdatePayment(mode *PaymentMode, status *PaymentStatus) error {
	var errMode, errStatus error
	if mode != nil {
		errMode = mode.Validate()
	}
	if status != nil {
		errStatus = status.Validate()
	}
	if err := errors.Join(errMode, errStatus); err != nil {
		return err
	}

	if mode != nil {
		o.paymentMode = *mode
	}
	if status != nil {
		o.paymentStatus = *status
	}
	o.touch()
	return nil
}

// AttachAddress sets the delivery address. The caller checks that it belongs to the owner.
func (o *Order) AttachAddress(addressID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewStateIsInvalidError("order "+o.id.String(), "address cannot change once the order is "+o.status.String())
	}
	if err := o.setAddress(&addressID); err != nil {
		return err
	}
	o.touch()
	return nil
}

// CalculateTotal recomputes totalAmount from the lines. An order without lines totals zero.
func (o *Order) CalculateTotal() kernel.Money {
	total := kernel.ZeroMoney
	for _, oi := range o.items {
		total = total.Add(oi.Total())
	}
	o.totalAmount = total
	return total
}

func (o *Order) ensureLinesMutable() error {
	if !o.status.AllowsLineChanges() {
		return errs.NewStateIsInvalidError(
			"order "+o.id.String(),
			"lines cannot change while the order is "+o.status.String(),
		)
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setAddress(id *kernel.UUID) error {
	if id == nil {
		o.addressID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("addressID", err)
	}
	o.addressID = copyID(id)
	return nil
}

func (o *Order) setMenu(id *kernel.UUID) error {
	if id == nil {
		o.menuID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("menuID", err)
	}
	o.menuID = copyID(id)
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	o.items = make([]*OrderItem, 0, len(items))
	for _, oi := range items {
		if err := oi.Validate(); err != nil {
			return err
		}
		if _, dup := o.LineForItem(oi.itemID); dup {
			return errs.NewValueIsInvalidErrorWithCause("items", errors.New("duplicate line for item "+oi.itemID.String()))
		}
		o.items = append(o.items, oi)
	}
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
