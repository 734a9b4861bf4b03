package queries

import (
	"encoding/json"
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrGetDrugHistoryQueryIsNotConstructed = errors.New(
	"GetDrugHistoryQuery must be created via NewGetDrugHistoryQuery constructor",
)

// GetDrugHistoryQuery retrieves the full provenance trail of one drug unit:
// every committed version of its record, oldest first.
type GetDrugHistoryQuery struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	drugName string
	serialNo string

	guard guard.ConstructorGuard
}

// NewGetDrugHistoryQuery creates a query for a unit's change history.
func NewGetDrugHistoryQuery(actor identity.Actor, drugName, serialNo string) (GetDrugHistoryQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDrugHistoryQuery{}, err
	}
	if drugName == "" {
		return GetDrugHistoryQuery{}, errs.NewValueIsRequiredError("drugName")
	}
	if serialNo == "" {
		return GetDrugHistoryQuery{}, errs.NewValueIsRequiredError("serialNo")
	}

	return GetDrugHistoryQuery{
		actor:    actor,
		drugName: drugName,
		serialNo: serialNo,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDrugHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDrugHistoryQueryIsNotConstructed)
}

// Actor returns the identity invoking the query.
func (q GetDrugHistoryQuery) Actor() identity.Actor {
	return q.actor
}

// DrugName returns the drug's commercial name.
func (q GetDrugHistoryQuery) DrugName() string {
	return q.drugName
}

// SerialNo returns the unit serial number.
func (q GetDrugHistoryQuery) SerialNo() string {
	return q.serialNo
}

// Authorize gates the query by the caller's role.
func (q GetDrugHistoryQuery) Authorize() error {
	return services.Authorize(services.OpViewHistory, q.actor.Role())
}

// GetDrugHistoryQueryResponse is one committed version of the unit's
// record. Record carries the snapshot exactly as stored.
type GetDrugHistoryQueryResponse struct {
	TransactionID string          `json:"transactionId"`
	Timestamp     time.Time       `json:"timestamp"`
	Record        json.RawMessage `json:"record"`
}
