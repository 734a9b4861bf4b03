package ports

import (
	"context"

	"pharmaledger/internal/core/domain/model/identity"
)

// IdentityResolver is the collaborator that turns an invocation context into
// the caller's organisational identity. No core logic trusts any other
// source for authorization: adapters resolve the actor once at the edge and
// the engine gates every operation on it.
type IdentityResolver interface {
	// Resolve returns the caller behind the invocation context, or an error
	// when no trustworthy identity can be established.
	Resolve(ctx context.Context) (identity.Actor, error)
}
