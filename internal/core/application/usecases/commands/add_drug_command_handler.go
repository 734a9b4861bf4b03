package commands

import (
	"context"
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"
)

// AddDrugCommandHandler handles drug unit registration. Only manufacturers
// may register units; the new unit starts owned by its manufacturer with an
// empty shipment history, tagged with the transaction id that created it.
type AddDrugCommandHandler struct {
	uowFactory DrugUoWFactory
	clock      Clock
}

// NewAddDrugCommandHandler creates a handler for drug unit registration.
func NewAddDrugCommandHandler(uowFactory DrugUoWFactory, clock Clock) AddDrugCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return AddDrugCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle registers the unit and returns the stored record.
func (h *AddDrugCommandHandler) Handle(ctx context.Context, cmd AddDrugCommand) (*drug.Drug, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(services.OpAddDrug, cmd.Actor().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manufacturer, err := uow.Companies().GetByCRN(ctx, cmd.CompanyCRN())
	if err != nil {
		return nil, err
	}
	if manufacturer.Role() != company.Manufacturer {
		return nil, errs.NewObjectNotFoundError("manufacturerCRN", cmd.CompanyCRN())
	}

	if _, err := uow.Drugs().Get(ctx, cmd.DrugName(), cmd.SerialNo()); err == nil {
		return nil, errs.NewObjectAlreadyExistsError("drug", cmd.DrugName()+"-"+cmd.SerialNo())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	manufacturerKey, err := manufacturer.Key()
	if err != nil {
		return nil, err
	}

	unit, err := drug.NewDrug(
		cmd.DrugName(), cmd.SerialNo(), cmd.MfgDate(), cmd.ExpDate(),
		manufacturerKey.String(), cmd.Actor().ID(), uow.TxID(), h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Drugs().Add(ctx, unit); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return unit, nil
}
