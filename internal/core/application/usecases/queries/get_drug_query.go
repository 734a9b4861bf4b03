// Package queries contains read operations for retrieving ledger state.
// Implements the Query pattern for the read side of the CQRS architecture.
// Queries read the stored record form directly, bypassing the domain
// aggregates, and return read models shaped for the caller.
package queries

import (
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrGetDrugQueryIsNotConstructed = errors.New(
	"GetDrugQuery must be created via NewGetDrugQuery constructor",
)

// GetDrugQuery retrieves the current state of one drug unit.
//
// Example:
//
//	query, err := NewGetDrugQuery(actor, "Paracetamol", "001")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDrugQueryHandler(ledger)
//	state, err := handler.Handle(ctx, query)
type GetDrugQuery struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	drugName string
	serialNo string

	guard guard.ConstructorGuard
}

// NewGetDrugQuery creates a query for a unit's current state.
func NewGetDrugQuery(actor identity.Actor, drugName, serialNo string) (GetDrugQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDrugQuery{}, err
	}
	if drugName == "" {
		return GetDrugQuery{}, errs.NewValueIsRequiredError("drugName")
	}
	if serialNo == "" {
		return GetDrugQuery{}, errs.NewValueIsRequiredError("serialNo")
	}

	return GetDrugQuery{
		actor:    actor,
		drugName: drugName,
		serialNo: serialNo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDrugQuery) Validate() error {
	return q.guard.Validate(ErrGetDrugQueryIsNotConstructed)
}

// Actor returns the identity invoking the query.
func (q GetDrugQuery) Actor() identity.Actor {
	return q.actor
}

// DrugName returns the drug's commercial name.
func (q GetDrugQuery) DrugName() string {
	return q.drugName
}

// SerialNo returns the unit serial number.
func (q GetDrugQuery) SerialNo() string {
	return q.serialNo
}

// Authorize gates the query by the caller's role.
func (q GetDrugQuery) Authorize() error {
	return services.Authorize(services.OpViewDrugCurrentState, q.actor.Role())
}

// GetDrugQueryResponse is the read model of a stored drug unit record. Field
// tags mirror the ledger record layout.
type GetDrugQueryResponse struct {
	ProductID     string    `json:"productID"`
	Name          string    `json:"name"`
	SerialNo      string    `json:"serialNo"`
	Manufacturer  string    `json:"manufacturer"`
	MfgDate       string    `json:"manufacturingDate"`
	ExpDate       string    `json:"expiryDate"`
	Owner         string    `json:"owner"`
	Shipment      []string  `json:"shipment"`
	AddedBy       string    `json:"addedBy"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
