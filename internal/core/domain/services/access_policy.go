// Package services provides domain services that span multiple aggregates.
// It currently holds the access policy: the static mapping from network
// operations to the organisational roles permitted to invoke them.
package services

import (
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/pkg/errs"
)

// Operation enumerates the invocable operations of the network. The closed
// set keeps the authorization table exhaustive: adding an operation without
// a policy entry makes every call to it fail authorization.
type Operation int

const (
	// UnknownOperation represents an invalid or undefined operation.
	UnknownOperation Operation = iota

	OpRegisterCompany
	OpAddDrug
	OpCreatePurchaseOrder
	OpCreateShipment
	OpUpdateShipment
	OpRetailDrug
	OpViewHistory
	OpViewDrugCurrentState
)

// getOperationStrings returns the invocation name of every operation.
func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		UnknownOperation:       "unknown",
		OpRegisterCompany:      "registerCompany",
		OpAddDrug:              "addDrug",
		OpCreatePurchaseOrder:  "createPO",
		OpCreateShipment:       "createShipment",
		OpUpdateShipment:       "updateShipment",
		OpRetailDrug:           "retailDrug",
		OpViewHistory:          "viewHistory",
		OpViewDrugCurrentState: "viewDrugCurrentState",
	}
}

// String returns the operation's invocation name. It implements
// fmt.Stringer and is safe on any Operation value.
func (op Operation) String() string {
	if s, ok := getOperationStrings()[op]; ok {
		return s
	}
	return "unknown"
}

// allowedRoles is the static authorization table: one entry per operation,
// listing every role permitted to invoke it. Read-only operations admit all
// four roles.
func allowedRoles() map[Operation][]company.Role {
	return map[Operation][]company.Role{
		OpRegisterCompany: {
			company.Manufacturer, company.Distributor, company.Retailer, company.Transporter,
		},
		OpAddDrug:             {company.Manufacturer},
		OpCreatePurchaseOrder: {company.Distributor, company.Retailer},
		OpCreateShipment:      {company.Manufacturer, company.Distributor},
		OpUpdateShipment:      {company.Transporter},
		OpRetailDrug:          {company.Retailer},
		OpViewHistory: {
			company.Manufacturer, company.Distributor, company.Retailer, company.Transporter,
		},
		OpViewDrugCurrentState: {
			company.Manufacturer, company.Distributor, company.Retailer, company.Transporter,
		},
	}
}

// Authorize gates an operation by the caller's organisational role. It
// returns nil when the role is permitted, and an UnauthorizedError
// otherwise, including for operations or roles outside the closed sets.
// Callers invoke it before touching any state, so a disallowed invocation
// has no side effects.
func Authorize(op Operation, role company.Role) error {
	for _, allowed := range allowedRoles()[op] {
		if role == allowed {
			return nil
		}
	}
	return errs.NewUnauthorizedError(op.String(), role.String())
}
