package queries

import (
	"context"
	"encoding/json"

	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"
)

// GetDrugHistoryQueryHandler walks a unit's committed history on the
// ledger. The unit must exist; a history request for an unknown unit is an
// ObjectNotFoundError rather than an empty list.
type GetDrugHistoryQueryHandler struct {
	ledger ports.Ledger
}

// NewGetDrugHistoryQueryHandler creates a handler for history reads.
func NewGetDrugHistoryQueryHandler(ledger ports.Ledger) GetDrugHistoryQueryHandler {
	return GetDrugHistoryQueryHandler{ledger: ledger}
}

// Handle returns every committed version of the unit, oldest first.
func (h GetDrugHistoryQueryHandler) Handle(ctx context.Context, query GetDrugHistoryQuery) ([]GetDrugHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Authorize(); err != nil {
		return nil, err
	}

	key, err := drug.NewKey(query.DrugName(), query.SerialNo())
	if err != nil {
		return nil, err
	}

	current, err := h.ledger.GetState(ctx, key)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewObjectNotFoundError("drug", key.ID())
	}

	iter, err := h.ledger.History(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = iter.Close()
	}()

	versions := make([]GetDrugHistoryQueryResponse, 0)
	for iter.HasNext() {
		mod, err := iter.Next()
		if err != nil {
			return nil, err
		}

		versions = append(versions, GetDrugHistoryQueryResponse{
			TransactionID: mod.TxID,
			Timestamp:     mod.Timestamp,
			Record:        json.RawMessage(mod.Value),
		})
	}

	return versions, nil
}
