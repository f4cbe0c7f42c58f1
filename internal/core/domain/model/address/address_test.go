package address_test

import (
	"testing"

	"mealorders/internal/core/domain/model/address"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() address.Fields {
	return address.Fields{
		AddressLine1: " 12 MG Road ",
		Landmark:     "Near the temple",
		FlatOrBlock:  "B-204",
		City:         "Pune",
		Pincode:      "411001",
	}
}

func TestNewAddress(t *testing.T) {
	userID := kernel.NewUUID()

	t.Run("should create trimmed address", func(t *testing.T) {
		a, err := address.NewAddress(kernel.NewUUID(), userID, validFields())

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "12 MG Road", a.Fields().AddressLine1)
		assert.Empty(t, a.Fields().AddressLine2)
		assert.True(t, a.BelongsTo(userID))
		assert.False(t, a.BelongsTo(kernel.NewUUID()))
	})

	t.Run("should require mandatory fields", func(t *testing.T) {
		_, err := address.NewAddress(kernel.NewUUID(), userID, address.Fields{})

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
		for _, field := range []string{"addressLine1", "landmark", "flatOrBlock", "city", "pincode"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject malformed pincode", func(t *testing.T) {
		f := validFields()
		f.Pincode = "4110"

		_, err := address.NewAddress(kernel.NewUUID(), userID, f)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
