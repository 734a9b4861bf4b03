package commands

import (
	"context"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"
)

// RetailDrugCommandHandler handles the final sale of a unit to a consumer.
//
// The selling retailer must currently own the unit. After the sale the
// owner field holds the consumer identifier, which is not a company key, so
// the unit can never re-enter the transfer chain.
type RetailDrugCommandHandler struct {
	uowFactory DrugUoWFactory
	clock      Clock
}

// NewRetailDrugCommandHandler creates a handler for consumer sales.
func NewRetailDrugCommandHandler(uowFactory DrugUoWFactory, clock Clock) RetailDrugCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return RetailDrugCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle records the sale and returns the updated unit.
func (h *RetailDrugCommandHandler) Handle(ctx context.Context, cmd RetailDrugCommand) (*drug.Drug, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(services.OpRetailDrug, cmd.Actor().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	retailer, err := uow.Companies().GetByCRN(ctx, cmd.RetailerCRN())
	if err != nil {
		return nil, err
	}
	if retailer.Role() != company.Retailer {
		return nil, errs.NewObjectNotFoundError("retailerCRN", cmd.RetailerCRN())
	}

	retailerKey, err := retailer.Key()
	if err != nil {
		return nil, err
	}

	unit, err := uow.Drugs().Get(ctx, cmd.DrugName(), cmd.SerialNo())
	if err != nil {
		return nil, err
	}

	if err := unit.Sell(retailerKey.String(), cmd.CustomerID(), h.clock()); err != nil {
		return nil, err
	}

	if err := uow.Drugs().Update(ctx, unit); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return unit, nil
}
