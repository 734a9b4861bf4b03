package company

import (
	"fmt"
	"strings"

	"pharmaledger/internal/pkg/errs"
)

// Role is the organisational role of a registered company. The three trading
// roles form a strict purchase hierarchy; the transporter moves goods but is
// never a buyer or seller.
//
// Purchase hierarchy (rank in parentheses):
//
//	Manufacturer (1) ──> Distributor (2) ──> Retailer (3)
//
// A purchase order is legal only when the buyer sits exactly one rank below
// the seller's customers, i.e. buyerRank − sellerRank == 1.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Manufacturer produces drug units and sells to distributors.
	Manufacturer

	// Distributor buys from manufacturers and sells to retailers.
	Distributor

	// Retailer buys from distributors and sells to end consumers.
	Retailer

	// Transporter carries shipments between trading parties. It holds units
	// in transit but has no position in the purchase hierarchy.
	Transporter
)

// getRoleStrings returns the string representation of every role,
// including the invalid zero value.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "Unknown",
		Manufacturer: "Manufacturer",
		Distributor:  "Distributor",
		Retailer:     "Retailer",
		Transporter:  "Transporter",
	}
}

// getValidRoleStrings returns only the roles a company may register with.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Manufacturer: "Manufacturer",
		Distributor:  "Distributor",
		Retailer:     "Retailer",
		Transporter:  "Transporter",
	}
}

// RoleFromString parses an organisation role name case-insensitively.
// Returns an error for names outside the closed role set.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"organisationRole", fmt.Errorf("%q is not a recognised role", s))
}

// Validate checks that the Role value belongs to the closed role set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"organisationRole", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role. It implements
// fmt.Stringer and is safe on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// HierarchyRank returns the role's position in the purchase hierarchy:
// Manufacturer 1, Distributor 2, Retailer 3. Transporter and invalid roles
// return 0, which never satisfies the buyer/seller rank rule.
func (r Role) HierarchyRank() int {
	switch r {
	case Manufacturer:
		return 1
	case Distributor:
		return 2
	case Retailer:
		return 3
	default:
		return 0
	}
}

// IsTradingRole reports whether the role participates in the purchase
// hierarchy as buyer or seller.
func (r Role) IsTradingRole() bool {
	return r.HierarchyRank() > 0
}
