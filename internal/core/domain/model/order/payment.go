package order

import (
	"fmt"
	"strings"

	"mealorders/internal/pkg/errs"
)

// PaymentMode records how the customer intends to pay.
type PaymentMode string

const (
	Cash   PaymentMode = "CASH"
	Online PaymentMode = "ONLINE"
)

// ParsePaymentMode converts a stored or transported value into a PaymentMode.
func ParsePaymentMode(s string) (PaymentMode, error) {
	m := PaymentMode(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.Validate()
}

func (m PaymentMode) Validate() error {
	switch m {
	case Cash, Online:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMode", fmt.Errorf("%q is not a valid payment mode", string(m)))
	}
}

func (m PaymentMode) String() string { return string(m) }

// PaymentStatus records the settlement state reported by the payment collaborator.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// ParsePaymentStatus converts a stored or transported value into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	p := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	return p, p.Validate()
}

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

func (p PaymentStatus) String() string { return string(p) }
