package commands

import (
	"context"
	"time"

	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/model/shipment"
	"pharmaledger/internal/core/domain/services"
)

// UpdateShipmentCommandHandler handles delivery confirmation.
//
// Marking a shipment delivered transfers every unit in the consignment from
// the transporter to the buyer and stamps the shipment's key into each
// unit's travel history. The shipment itself moves to the delivered status,
// which is terminal. All units are loaded and checked before any transfer
// is written.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      Clock
}

// NewUpdateShipmentCommandHandler creates a handler for delivery
// confirmation.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock Clock) UpdateShipmentCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle marks the shipment delivered and returns the updated record.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(services.OpUpdateShipment, cmd.Actor().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	consignment, err := uow.Shipments().Get(ctx, cmd.BuyerCRN(), cmd.DrugName())
	if err != nil {
		return nil, err
	}

	buyer, err := uow.Companies().GetByCRN(ctx, cmd.BuyerCRN())
	if err != nil {
		return nil, err
	}

	buyerKey, err := buyer.Key()
	if err != nil {
		return nil, err
	}

	shipmentKey, err := consignment.Key()
	if err != nil {
		return nil, err
	}

	now := h.clock()

	// validates the transporter CRN and the in-transit status before any
	// unit is touched
	if err := consignment.Deliver(cmd.TransporterCRN(), now); err != nil {
		return nil, err
	}

	units := make([]*drug.Drug, 0, len(consignment.AssetRefs()))
	for _, assetRef := range consignment.AssetRefs() {
		unit, err := uow.Drugs().GetByAssetID(ctx, assetRef)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	for _, unit := range units {
		if err := unit.Deliver(consignment.TransporterRef(), buyerKey.String(), shipmentKey.String(), now); err != nil {
			return nil, err
		}
		if err := uow.Drugs().Update(ctx, unit); err != nil {
			return nil, err
		}
	}

	if err := uow.Shipments().Update(ctx, consignment); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return consignment, nil
}
