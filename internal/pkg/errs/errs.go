package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures with errors.Is.
// Every typed error below unwraps to exactly one of these.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrHierarchyViolation  = errors.New("purchase hierarchy is violated")
	ErrQuantityMismatch    = errors.New("asset quantity does not match purchase order")
	ErrTransporterMismatch = errors.New("transporter does not match shipment")
	ErrOwnershipMismatch   = errors.New("caller is not the current owner")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ValueIsRequiredError indicates a required parameter was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a parameter was present but not acceptable.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced ledger record does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError indicates a create hit an occupied ledger key.
type ObjectAlreadyExistsError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, id any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, id any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectAlreadyExists, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, sanitize(e.ID))
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// UnauthorizedError indicates the caller's organisational role may not
// invoke the requested operation.
type UnauthorizedError struct {
	Operation string
	Role      string
}

func NewUnauthorizedError(operation string, role string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Role: role}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: role %s may not invoke %s", ErrUnauthorized, e.Role, e.Operation)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// HierarchyViolationError indicates a purchase order whose buyer is not
// exactly one hierarchy rank below the seller's buyer-facing tier.
type HierarchyViolationError struct {
	BuyerRank  int
	SellerRank int
}

func NewHierarchyViolationError(buyerRank, sellerRank int) *HierarchyViolationError {
	return &HierarchyViolationError{BuyerRank: buyerRank, SellerRank: sellerRank}
}

func (e *HierarchyViolationError) Error() string {
	return fmt.Sprintf("%s: buyer rank %d, seller rank %d", ErrHierarchyViolation, e.BuyerRank, e.SellerRank)
}

func (e *HierarchyViolationError) Unwrap() error {
	return ErrHierarchyViolation
}

// QuantityMismatchError indicates a shipment whose asset list length differs
// from the purchase order quantity.
type QuantityMismatchError struct {
	Expected int
	Actual   int
}

func NewQuantityMismatchError(expected, actual int) *QuantityMismatchError {
	return &QuantityMismatchError{Expected: expected, Actual: actual}
}

func (e *QuantityMismatchError) Error() string {
	return fmt.Sprintf("%s: purchase order wants %d, shipment lists %d", ErrQuantityMismatch, e.Expected, e.Actual)
}

func (e *QuantityMismatchError) Unwrap() error {
	return ErrQuantityMismatch
}

// TransporterMismatchError indicates a delivery attempt by a transporter
// other than the one recorded on the shipment.
type TransporterMismatchError struct {
	ShipmentTransporterCRN string
	CallerTransporterCRN   string
}

func NewTransporterMismatchError(shipmentCRN, callerCRN string) *TransporterMismatchError {
	return &TransporterMismatchError{ShipmentTransporterCRN: shipmentCRN, CallerTransporterCRN: callerCRN}
}

func (e *TransporterMismatchError) Error() string {
	return fmt.Sprintf("%s: shipment expects %s, got %s",
		ErrTransporterMismatch, e.ShipmentTransporterCRN, e.CallerTransporterCRN)
}

func (e *TransporterMismatchError) Unwrap() error {
	return ErrTransporterMismatch
}

// OwnershipMismatchError indicates a transfer attempted by a party that is
// not the drug unit's current owner of record.
type OwnershipMismatchError struct {
	Owner    string
	Claimant string
}

func NewOwnershipMismatchError(owner, claimant string) *OwnershipMismatchError {
	return &OwnershipMismatchError{Owner: owner, Claimant: claimant}
}

func (e *OwnershipMismatchError) Error() string {
	return fmt.Sprintf("%s: owned by %s, claimed by %s", ErrOwnershipMismatch, sanitize(e.Owner), sanitize(e.Claimant))
}

func (e *OwnershipMismatchError) Unwrap() error {
	return ErrOwnershipMismatch
}
