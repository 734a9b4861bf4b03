package porepo

import (
	"context"
	"encoding/json"

	"pharmaledger/internal/core/domain/model/purchaseorder"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"
)

// LedgerPurchaseOrderRepository implements PurchaseOrderRepository over a
// key-value ledger.
type LedgerPurchaseOrderRepository struct {
	ledger ports.Ledger
}

// NewLedgerPurchaseOrderRepository creates a new ledger-backed purchase
// order repository.
func NewLedgerPurchaseOrderRepository(ledger ports.Ledger) *LedgerPurchaseOrderRepository {
	return &LedgerPurchaseOrderRepository{ledger: ledger}
}

// Save persists an order under its (buyerCRN, drugName) key. A later order
// for the same pair replaces the earlier one.
func (r *LedgerPurchaseOrderRepository) Save(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
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

// Get retrieves the order for a buyer CRN and drug name.
func (r *LedgerPurchaseOrderRepository) Get(ctx context.Context, buyerCRN, drugName string) (*purchaseorder.PurchaseOrder, error) {
	key, err := purchaseorder.NewKey(buyerCRN, drugName)
	if err != nil {
		return nil, err
	}

	value, err := r.ledger.GetState(ctx, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errs.NewObjectNotFoundError("purchaseOrder", key.ID())
	}

	var dto PurchaseOrderDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return nil, err
	}

	return ToDomain(dto)
}
