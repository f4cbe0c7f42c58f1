// Package identity holds the acting user as resolved by the authentication collaborator.
// The order core never reads identity from ambient state: every operation receives a *User.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when validating a zero-value User.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// Role is the authorization role of a user.
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// ParseRole converts the stored or transported representation into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects unknown roles.
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// User is a customer or an administrator of the platform.
type User struct {
	id    kernel.UUID
	name  string
	email string
	role  Role
	guard guard.ConstructorGuard
}

// NewUser creates a User, validating every field.
func NewUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		id.Validate(),
		u.setName(name),
		u.setEmail(email),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.id = id
	u.role = role
	return u, nil
}

// RestoreUser rebuilds a User read back from storage.
func RestoreUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	return NewUser(id, name, email, role)
}

// Validate ensures the User was built through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string    { return u.name }
func (u *User) Email() string   { return u.email }
func (u *User) Role() Role      { return u.role }

// Actor returns the attribution used when this user mutates the catalog.
func (u *User) Actor() kernel.Actor {
	return kernel.ActorFromUser(u.id)
}

// IsAdmin reports whether the user may run administrative operations such as
// order status transitions. Platform administrators (SUPERADMIN) are admins too.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin || u.role == RoleSuperAdmin
}

// IsSuperAdmin reports whether the user is a platform administrator.
func (u *User) IsSuperAdmin() bool {
	return u.role == RoleSuperAdmin
}

// CanAccessOrderOf reports whether the user may read or change an order owned by ownerID.
func (u *User) CanAccessOrderOf(ownerID kernel.UUID) bool {
	return u.IsAdmin() || u.id.IsEqual(ownerID)
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no @", email))
	}
	u.email = email
	return nil
}
