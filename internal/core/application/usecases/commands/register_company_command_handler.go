package commands

import (
	"context"
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/services"
	"pharmaledger/internal/pkg/errs"
)

// RegisterCompanyCommandHandler handles company registration.
//
// Registration is first-write-wins: a CRN can be claimed exactly once, and
// the record is immutable afterwards.
type RegisterCompanyCommandHandler struct {
	uowFactory CompanyUoWFactory
	clock      Clock
}

// NewRegisterCompanyCommandHandler creates a handler for company
// registration.
func NewRegisterCompanyCommandHandler(uowFactory CompanyUoWFactory, clock Clock) RegisterCompanyCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return RegisterCompanyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle registers the company and returns the stored record.
// Returns an ObjectAlreadyExistsError when the CRN is already claimed.
func (h *RegisterCompanyCommandHandler) Handle(ctx context.Context, cmd RegisterCompanyCommand) (*company.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.Authorize(services.OpRegisterCompany, cmd.Actor().Role()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.Companies().GetByCRN(ctx, cmd.CRN()); err == nil {
		return nil, errs.NewObjectAlreadyExistsError("companyCRN", cmd.CRN())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	registered, err := company.NewCompany(
		cmd.CRN(), cmd.Name(), cmd.Location(), cmd.Role(),
		cmd.Actor().ID(), h.clock(),
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Companies().Add(ctx, registered); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}
