package identity_test

import (
	"testing"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create user with valid fields", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := identity.NewUser(id, "Asha Rao", "asha@example.com", identity.RoleUser)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Asha Rao", u.Name())
		assert.Equal(t, "asha@example.com", u.Email())
		assert.False(t, u.IsAdmin())
		assert.Equal(t, id.String(), u.Actor().String())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := identity.NewUser(kernel.UUID{}, " ", "nope", identity.Role("GUEST"))

		require.Error(t, err)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "GUEST")
	})

	t.Run("nil user is not constructed", func(t *testing.T) {
		var u *identity.User

		require.ErrorIs(t, u.Validate(), identity.ErrUserIsNotConstructed)
	})
}

func TestUser_Roles(t *testing.T) {
	owner := kernel.NewUUID()
	customer, _ := identity.NewUser(owner, "Customer", "c@example.com", identity.RoleUser)
	other, _ := identity.NewUser(kernel.NewUUID(), "Other", "o@example.com", identity.RoleUser)
	admin, _ := identity.NewUser(kernel.NewUUID(), "Admin", "a@example.com", identity.RoleAdmin)
	super, _ := identity.NewUser(kernel.NewUUID(), "Root", "r@example.com", identity.RoleSuperAdmin)

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsSuperAdmin())
	assert.True(t, super.IsAdmin())
	assert.True(t, super.IsSuperAdmin())

	assert.True(t, customer.CanAccessOrderOf(owner))
	assert.False(t, other.CanAccessOrderOf(owner))
	assert.True(t, admin.CanAccessOrderOf(owner))
}

func TestParseRole(t *testing.T) {
	r, err := identity.ParseRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleAdmin, r)

	_, err = identity.ParseRole("courier")
	require.Error(t, err)
}
