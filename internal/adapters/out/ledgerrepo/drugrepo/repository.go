package drugrepo

import (
	"context"
	"encoding/json"

	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"
)

// LedgerDrugRepository implements DrugRepository over a key-value ledger.
type LedgerDrugRepository struct {
	ledger ports.Ledger
}

// NewLedgerDrugRepository creates a new ledger-backed drug repository.
func NewLedgerDrugRepository(ledger ports.Ledger) *LedgerDrugRepository {
	return &LedgerDrugRepository{ledger: ledger}
}

// Add persists a newly manufactured unit under its (name, serialNo) key.
func (r *LedgerDrugRepository) Add(ctx context.Context, aggregate *drug.Drug) error {
	return r.put(ctx, aggregate)
}

// Update persists an ownership transfer on an existing unit. The ledger is
// append-only per key, so Add and Update share the write path; the split
// exists for intent at the call sites.
func (r *LedgerDrugRepository) Update(ctx context.Context, aggregate *drug.Drug) error {
	return r.put(ctx, aggregate)
}

func (r *LedgerDrugRepository) put(ctx context.Context, aggregate *drug.Drug) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key, err := aggregate.Key()
	if err != nil {
		return err
	}

	dto, err := FromDomain(aggregate)
	if err != nil {
		return err
	}

	value, err := json.Marshal(dto)
	if err != nil {
		return err
	}

	return r.ledger.PutState(ctx, key, value)
}

// Get retrieves a unit by drug name and serial number.
func (r *LedgerDrugRepository) Get(ctx context.Context, name, serialNo string) (*drug.Drug, error) {
	key, err := drug.NewKey(name, serialNo)
	if err != nil {
		return nil, err
	}
	return r.get(ctx, key)
}

// GetByAssetID retrieves a unit by the joined "name-serialNo" form used in
// shipment asset lists.
func (r *LedgerDrugRepository) GetByAssetID(ctx context.Context, assetID string) (*drug.Drug, error) {
	key, err := drug.KeyFromAssetID(assetID)
	if err != nil {
		return nil, err
	}
	return r.get(ctx, key)
}

func (r *LedgerDrugRepository) get(ctx context.Context, key kernel.Key) (*drug.Drug, error) {
	value, err := r.ledger.GetState(ctx, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errs.NewObjectNotFoundError("drug", key.ID())
	}

	return DecodeSnapshot(value)
}
