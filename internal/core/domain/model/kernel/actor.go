package kernel

import "mealorders/internal/pkg/errs"

// SystemActor attributes mutations the order workflow performs on its own,
// such as stock deduction and restoration.
const SystemActor Actor = "SYSTEM"

// Actor identifies who changed a catalog entry. Human actors are user ids.
type Actor string

// ActorFromUser returns the actor for a human user.
func ActorFromUser(id UUID) Actor {
	return Actor(id.String())
}

// Validate rejects the empty actor.
func (a Actor) Validate() error {
	if a == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}

// IsSystem reports whether the mutation was automated.
func (a Actor) IsSystem() bool {
	return a == SystemActor
}

func (a Actor) String() string {
	return string(a)
}
