// Package identity contains the Actor value object: the resolved caller of
// an invocation. Actors are produced by identity resolver adapters (MSP
// membership on Fabric, request headers on HTTP) and are the only source the
// engine trusts for authorization.
package identity

import (
	"errors"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the resolved identity of an invocation's caller: a unique caller
// identifier plus the organisational role of the caller's organisation.
type Actor struct {
	id   string
	role company.Role

	guard guard.ConstructorGuard
}

// NewActor creates an actor from a caller identifier and organisational
// role. The identifier is opaque to the engine; it is recorded on created
// entities for traceability.
func NewActor(id string, role company.Role) (Actor, error) {
	if id == "" {
		return Actor{}, errs.NewValueIsRequiredError("callerID")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the unique caller identifier.
func (a Actor) ID() string {
	return a.id
}

// Role returns the caller's organisational role.
func (a Actor) Role() company.Role {
	return a.role
}
