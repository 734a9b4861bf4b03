package commands

import (
	"context"
	"time"

	"pharmaledger/internal/core/domain/model/purchaseorder"
	"pharmaledger/internal/core/domain/services"
)

// CreatePurchaseOrderCommandHandler handles purchase order creation.
//
// The hierarchy rule is enforced by the aggregate once both parties are
// loaded: the buyer must sit exactly one rank below the seller's customers,
// so a retailer buys from a distributor and a distributor from a
// manufacturer. A later order for the same buyer and drug replaces the
// earlier one.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      Clock
}

// NewCreatePurchaseOrderCommandHandler creates a handler for purchase order
// creation.
func NewCreatePurchaseOrderCommandHandler(uowFactory PurchaseOrderUoWFactory, clock Clock) CreatePurchaseOrderCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records the purchase order and returns the stored record.
func (h *CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) (*purchaseorder.PurchaseOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(services.OpCreatePurchaseOrder, cmd.Actor().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.Companies().GetByCRN(ctx, cmd.BuyerCRN())
	if err != nil {
		return nil, err
	}

	seller, err := uow.Companies().GetByCRN(ctx, cmd.SellerCRN())
	if err != nil {
		return nil, err
	}

	po, err := purchaseorder.NewPurchaseOrder(
		buyer, seller, cmd.DrugName(), cmd.Quantity(),
		cmd.Actor().ID(), h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.PurchaseOrders().Save(ctx, po); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}
