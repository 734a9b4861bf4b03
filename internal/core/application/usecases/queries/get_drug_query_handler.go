package queries

import (
	"context"
	"encoding/json"

	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"
)

// GetDrugQueryHandler reads the current state of a drug unit straight from
// the ledger record, without reconstructing the aggregate.
type GetDrugQueryHandler struct {
	ledger ports.Ledger
}

// NewGetDrugQueryHandler creates a handler for current-state reads.
func NewGetDrugQueryHandler(ledger ports.Ledger) GetDrugQueryHandler {
	return GetDrugQueryHandler{ledger: ledger}
}

// Handle returns the unit's stored record, or an ObjectNotFoundError when no
// unit exists under the name and serial number.
func (h GetDrugQueryHandler) Handle(ctx context.Context, query GetDrugQuery) (GetDrugQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDrugQueryResponse{}, err
	}
	if err := query.Authorize(); err != nil {
		return GetDrugQueryResponse{}, err
	}

	key, err := drug.NewKey(query.DrugName(), query.SerialNo())
	if err != nil {
		return GetDrugQueryResponse{}, err
	}

	value, err := h.ledger.GetState(ctx, key)
	if err != nil {
		return GetDrugQueryResponse{}, err
	}
	if value == nil {
		return GetDrugQueryResponse{}, errs.NewObjectNotFoundError("drug", key.ID())
	}

	var response GetDrugQueryResponse
	if err := json.Unmarshal(value, &response); err != nil {
		return GetDrugQueryResponse{}, err
	}

	return response, nil
}
