package order

import (
	"fmt"
	"strings"

	"mealorders/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │             │
//	   └────────────┴─────────────┴──────> CANCELLED
//
// DELIVERED and CANCELLED are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	OutForDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	Preparing:      "PREPARING",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
}

var transitions = map[Status][]Status{
	Pending:        {Confirmed, Cancelled},
	Confirmed:      {Preparing, Cancelled},
	Preparing:      {OutForDelivery, Cancelled},
	OutForDelivery: {Delivered},
}

// customer facing text sent with status notifications
var statusMessages = map[Status]string{
	Pending:        "Your order has been received and is being processed.",
	Confirmed:      "Great news! Your order has been confirmed and will be prepared soon.",
	Preparing:      "Our chefs are busy preparing your delicious meal!",
	OutForDelivery: "Your order is on the way! Our delivery partner will be with you soon.",
	Delivered:      "Your order has been delivered! We hope you enjoy your meal.",
	Cancelled:      "Your order has been cancelled. If you have any questions, please contact us.",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts the stored or transported name, e.g. "OUT_FOR_DELIVERY", into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Message returns the text shown to the customer when the order enters this status.
func (s Status) Message() string {
	return statusMessages[s]
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowsLineChanges reports whether lines may be added, removed or resized.
func (s Status) AllowsLineChanges() bool {
	return s == Pending || s == Confirmed
}

// CanTransitionTo reports whether next is an edge of the state machine.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns an InvalidState error for an illegal edge.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !s.CanTransitionTo(next) {
		return errs.NewStateIsInvalidError(
			"order status",
			fmt.Sprintf("transition from %s to %s is not allowed", s, next),
		)
	}
	return nil
}
