package shipment

import (
	"fmt"

	"pharmaledger/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	InTransit ──> Delivered
//
// The transition is one-way; a delivered shipment is final.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// InTransit is the initial status: the consignment is with the
	// transporter, which holds the contained units in custody.
	InTransit

	// Delivered indicates the named transporter handed the consignment to
	// the buyer. This is a final state with no further transitions.
	Delivered
)

// getStatusStrings returns the string representation of every status. The
// wire forms match the ledger records ("in-transit", "delivered").
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		InTransit:     "in-transit",
		Delivered:     "delivered",
	}
}

// getValidStatusStrings returns only the statuses a shipment may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		InTransit: "in-transit",
		Delivered: "delivered",
	}
}

// StatusFromString parses the wire form of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status value belongs to the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status. It implements fmt.Stringer
// and is safe on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// A shipment already delivered, or with an invalid status, cannot be
// delivered (again).
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}

	return Delivered, nil
}
