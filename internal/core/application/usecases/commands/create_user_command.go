package commands

import (
	"errors"
	"strings"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers a user as provisioned by the identity collaborator.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string
	email  string
	role   identity.Role

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(userID kernel.UUID, name, email string, role identity.Role) (CreateUserCommand, error) {
	var nameErr, emailErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if err := errors.Join(userID.Validate(), nameErr, emailErr, role.Validate()); err != nil {
		return CreateUserCommand{}, err
	}
	return CreateUserCommand{
		userID: userID,
		name:   name,
		email:  email,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }
func (c CreateUserCommand) Name() string        { return c.name }
func (c CreateUserCommand) Email() string       { return c.email }
func (c CreateUserCommand) Role() identity.Role { return c.role }
