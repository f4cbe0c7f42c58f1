package queries

import (
	"context"
	"errors"

	"mealorders/internal/core/domain/model/identity"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/pkg/errs"
	"mealorders/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListAddressesByUserQueryIsNotConstructed = errors.New(
	"ListAddressesByUserQuery must be created via NewListAddressesByUserQuery constructor",
)

// AddressView is one entry of a user's address book.
type AddressView struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	AddressLine1 string
	AddressLine2 string
	Landmark     string
	FlatOrBlock  string
	City         string
	Pincode      string
}

// ListAddressesByUserQuery lists the address book of a user. The owner and administrators
// may read it.
type ListAddressesByUserQuery struct { //nolint:recvcheck //using for validation
	actor  *identity.User
	userID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewListAddressesByUserQuery(actor *identity.User, userID kernel.UUID) (ListAddressesByUserQuery, error) {
	if actor == nil {
		return ListAddressesByUserQuery{}, errs.NewValueIsRequiredError("actor")
	}
	if err := userID.Validate(); err != nil {
		return ListAddressesByUserQuery{}, err
	}
	return ListAddressesByUserQuery{actor: actor, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAddressesByUserQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesByUserQueryIsNotConstructed)
}

func (q ListAddressesByUserQuery) Actor() *identity.User { return q.actor }
func (q ListAddressesByUserQuery) UserID() kernel.UUID   { return q.userID }

type ListAddressesByUserQueryHandler struct {
	db *gorm.DB
}

func NewListAddressesByUserQueryHandler(db *gorm.DB) ListAddressesByUserQueryHandler {
	return ListAddressesByUserQueryHandler{db: db}
}

// Handle returns the addresses ordered by city and first line. An unknown user is NotFound.
func (h ListAddressesByUserQueryHandler) Handle(
	ctx context.Context, query ListAddressesByUserQuery,
) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.CanAccessOrderOf(query.UserID()) {
		return nil, errs.NewForbiddenError("user "+actor.ID().String(),
			"list addresses of user "+query.UserID().String())
	}

	db := h.db.WithContext(ctx)
	n, err := scanCount(db.Raw("SELECT COUNT(*) FROM users WHERE id = ?", query.UserID().Bytes()).Row())
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errs.NewObjectNotFoundError("user", query.UserID().String())
	}

	rows, err := db.Raw(`
		SELECT id, user_id, address_line1, COALESCE(address_line2, ''), landmark, flat_or_block, city, pincode
		FROM addresses
		WHERE user_id = ?
		ORDER BY city, address_line1, id
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]AddressView, 0)
	for rows.Next() {
		var (
			view       AddressView
			id, userID uuid.UUID
		)
		if err = rows.Scan(&id, &userID, &view.AddressLine1, &view.AddressLine2, &view.Landmark,
			&view.FlatOrBlock, &view.City, &view.Pincode); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		addresses = append(addresses, view)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}
