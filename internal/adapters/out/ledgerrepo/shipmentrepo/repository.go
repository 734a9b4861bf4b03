package shipmentrepo

import (
	"context"
	"encoding/json"

	"pharmaledger/internal/core/domain/model/shipment"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"
)

// LedgerShipmentRepository implements ShipmentRepository over a key-value
// ledger.
type LedgerShipmentRepository struct {
	ledger ports.Ledger
}

// NewLedgerShipmentRepository creates a new ledger-backed shipment
// repository.
func NewLedgerShipmentRepository(ledger ports.Ledger) *LedgerShipmentRepository {
	return &LedgerShipmentRepository{ledger: ledger}
}

// Add persists a newly created shipment under its (buyerCRN, drugName) key.
func (r *LedgerShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	return r.put(ctx, aggregate)
}

// Update persists a status change on an existing shipment.
func (r *LedgerShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	return r.put(ctx, aggregate)
}

func (r *LedgerShipmentRepository) put(ctx context.Context, aggregate *shipment.Shipment) error {
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

// Get retrieves the shipment for a buyer CRN and drug name.
func (r *LedgerShipmentRepository) Get(ctx context.Context, buyerCRN, drugName string) (*shipment.Shipment, error) {
	key, err := shipment.NewKey(buyerCRN, drugName)
	if err != nil {
		return nil, err
	}

	value, err := r.ledger.GetState(ctx, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errs.NewObjectNotFoundError("shipment", key.ID())
	}

	var dto ShipmentDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return nil, err
	}

	return ToDomain(dto)
}
