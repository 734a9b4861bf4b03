package http

import (
	"errors"
	"net/http"

	"pharmaledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusOf maps a failure to an HTTP status. Validation and supply-chain
// rule violations share 422: the request was well-formed but the ledger
// state forbids it.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrHierarchyViolation),
		errors.Is(err, errs.ErrQuantityMismatch),
		errors.Is(err, errs.ErrTransporterMismatch),
		errors.Is(err, errs.ErrOwnershipMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
