// Package errs provides standardized error types for the pharmaledger application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure class of the transition engine:
//   - ValueIsRequiredError / ValueIsInvalidError: argument validation failures
//   - ObjectNotFoundError: a referenced ledger record is absent
//   - ObjectAlreadyExistsError: a create targets an occupied composite key
//   - UnauthorizedError: the caller's role may not invoke the operation
//   - HierarchyViolationError: buyer/seller rank rule broken on a purchase order
//   - QuantityMismatchError: shipment asset count differs from the order quantity
//   - TransporterMismatchError: delivery attempted by the wrong transporter
//   - OwnershipMismatchError: transfer attempted by a non-owner
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify any failure by its sentinel
//
// Precondition failures in the transition engine surface as exactly one of
// these types, before any ledger write for the invocation is issued.
package errs
