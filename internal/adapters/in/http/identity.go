package http

import (
	"context"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers carrying the caller identity. In a deployment these are set by the
// API gateway after authenticating the client certificate.
const (
	HeaderCallerID   = "X-Caller-ID"
	HeaderCallerRole = "X-Caller-Role"
)

type actorContextKey struct{}

// ActorMiddleware resolves the caller from the identity headers and stores
// the actor on the request context. Requests without a resolvable identity
// are rejected before reaching any handler.
func ActorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		callerID := ctx.Request().Header.Get(HeaderCallerID)
		roleName := ctx.Request().Header.Get(HeaderCallerRole)

		role, err := company.RoleFromString(roleName)
		if err != nil {
			return respondError(ctx, errs.NewUnauthorizedError("invoke", roleName))
		}

		actor, err := identity.NewActor(callerID, role)
		if err != nil {
			return respondError(ctx, errs.NewUnauthorizedError("invoke", callerID))
		}

		reqCtx := context.WithValue(ctx.Request().Context(), actorContextKey{}, actor)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}

// HeaderIdentityResolver yields the actor placed on the request context by
// ActorMiddleware.
type HeaderIdentityResolver struct{}

// Resolve returns the actor resolved for the current request.
func (HeaderIdentityResolver) Resolve(ctx context.Context) (identity.Actor, error) {
	actor, ok := ctx.Value(actorContextKey{}).(identity.Actor)
	if !ok {
		return identity.Actor{}, errs.NewUnauthorizedError("invoke", "unknown caller")
	}

	return actor, nil
}
