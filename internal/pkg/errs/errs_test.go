package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause renders only the id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "7d1c7c50")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "7d1c7c50", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7d1c7c50", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause names the parameter", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("itemId", "c1b7a9b0", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: itemId, ID is: c1b7a9b0 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string ids are formatted with %s", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("menuId", 17)
		assert.Equal(t, "object not found: %!s(int=17)", err.Error())
	})
}

func TestArgumentErrors(t *testing.T) {
	cause := errors.New("must be six digits")

	tests := []struct {
		name     string
		err      error
		message  string
		sentinel error
	}{
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("pincode"),
			message:  "value is invalid: pincode",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("pincode", cause),
			message:  "value is invalid: pincode (cause: must be six digits)",
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("landmark"),
			message:  "value is required: landmark",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("actor", cause),
			message:  "value is required: actor (cause: must be six digits)",
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("rating", 7.5, 0, 5),
			message:  "value is invalid: 7.5 is rating, min value is 0, max value is 5",
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("rating", -1, 0, 5, cause),
			message:  "value is invalid: -1 is rating, min value is 0, max value is 5 (cause: must be six digits)",
			sentinel: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.True(t, errs.IsInvalidArgument(tt.err))
			assert.False(t, errs.IsInvalidState(tt.err))
		})
	}
}

func TestValueIsOutOfRangeError_Fields(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99)

	assert.Equal(t, "quantity", err.ParamName)
	assert.Equal(t, 0, err.Value)
	assert.Equal(t, 1, err.Min)
	assert.Equal(t, 99, err.Max)
}

func TestErrorMessagesStayOnOneLine(t *testing.T) {
	outOfRange := errs.NewValueIsOutOfRangeError("name", "Paneer\nTikka", 1, 100)
	assert.Contains(t, outOfRange.Error(), "Paneer Tikka")
	assert.NotContains(t, outOfRange.Error(), "\n")

	state := errs.NewStateIsInvalidError("order", "cannot move\r\nto DELIVERED")
	assert.NotContains(t, state.Error(), "\n")
	assert.NotContains(t, state.Error(), "\r")
}

func TestStateIsInvalidError(t *testing.T) {
	err := errs.NewStateIsInvalidError("item", "insufficient stock")

	assert.Equal(t, "item", err.Subject)
	assert.Equal(t, "insufficient stock", err.Reason)
	require.NoError(t, err.Cause)
	assert.Equal(t, "state is invalid: item: insufficient stock", err.Error())
	assert.Equal(t, errs.ErrStateIsInvalid, err.Unwrap())

	withCause := errs.NewStateIsInvalidErrorWithCause("item", "insufficient stock", errors.New("chk_items_stock"))
	assert.Equal(t, "state is invalid: item: insufficient stock (cause: chk_items_stock)", withCause.Error())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("user 42", "update order status")

	assert.Equal(t, "user 42", err.Actor)
	assert.Equal(t, "update order status", err.Action)
	assert.Equal(t, "forbidden: user 42 may not update order status", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestClassificationThroughWrapping(t *testing.T) {
	notFound := fmt.Errorf("create order: %w", errs.NewObjectNotFoundError("address", "a-1"))
	state := fmt.Errorf("update order: %w", errs.NewStateIsInvalidError("order", "terminal"))
	forbidden := fmt.Errorf("delete order: %w", errs.NewForbiddenError("user 1", "delete order 2"))
	joined := errors.Join(errs.NewValueIsRequiredError("name"), errs.NewValueIsInvalidError("pincode"))

	assert.True(t, errs.IsNotFound(notFound))
	assert.False(t, errs.IsForbidden(notFound))
	assert.True(t, errs.IsInvalidState(state))
	assert.True(t, errs.IsForbidden(forbidden))
	assert.True(t, errs.IsInvalidArgument(joined))

	plain := errors.New("connection reset")
	assert.False(t, errs.IsNotFound(plain))
	assert.False(t, errs.IsInvalidArgument(plain))
	assert.False(t, errs.IsInvalidState(plain))
	assert.False(t, errs.IsForbidden(plain))
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "state is invalid", errs.ErrStateIsInvalid.Error())
	assert.Equal(t, "forbidden", errs.ErrForbidden.Error())
}
