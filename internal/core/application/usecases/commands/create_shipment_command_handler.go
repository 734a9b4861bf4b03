package commands

import (
	"context"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/model/shipment"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles consignment dispatch against a
// purchase order.
//
// The handler validates the whole consignment before mutating anything: the
// asset count must equal the order quantity, the transporter CRN must name a
// transporter company, and every listed unit must exist and be owned by the
// order's seller. Only when all units pass does it hand them to the
// transporter and record the shipment, so a bad unit in the middle of the
// list leaves no partial transfer behind.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      Clock
}

// NewCreateShipmentCommandHandler creates a handler for consignment
// dispatch.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, clock Clock) CreateShipmentCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle dispatches the consignment and returns the stored shipment record.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(services.OpCreateShipment, cmd.Actor().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	po, err := uow.PurchaseOrders().Get(ctx, cmd.BuyerCRN(), cmd.DrugName())
	if err != nil {
		return nil, err
	}

	assetIDs := cmd.AssetIDs()
	if len(assetIDs) != po.Quantity() {
		return nil, errs.NewQuantityMismatchError(po.Quantity(), len(assetIDs))
	}

	transporter, err := uow.Companies().GetByCRN(ctx, cmd.TransporterCRN())
	if err != nil {
		return nil, err
	}
	if transporter.Role() != company.Transporter {
		return nil, errs.NewObjectNotFoundError("transporterCRN", cmd.TransporterCRN())
	}

	transporterKey, err := transporter.Key()
	if err != nil {
		return nil, err
	}

	// validation pass: load every unit and prove the seller owns it before
	// any state changes
	units := make([]*drug.Drug, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		unit, err := uow.Drugs().GetByAssetID(ctx, assetID)
		if err != nil {
			return nil, err
		}
		if !unit.IsOwnedBy(po.SellerRef()) {
			return nil, errs.NewOwnershipMismatchError(unit.OwnerRef(), po.SellerRef())
		}
		units = append(units, unit)
	}

	now := h.clock()
	consignment, err := shipment.NewShipment(
		cmd.BuyerCRN(), cmd.DrugName(), po.SellerRef(), assetIDs,
		cmd.TransporterCRN(), transporterKey.String(),
		cmd.Actor().ID(), now,
	)
	if err != nil {
		return nil, err
	}

	for _, unit := range units {
		if err := unit.Ship(po.SellerRef(), transporterKey.String(), now); err != nil {
			return nil, err
		}
		if err := uow.Drugs().Update(ctx, unit); err != nil {
			return nil, err
		}
	}

	if err := uow.Shipments().Add(ctx, consignment); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return consignment, nil
}
