package companyrepo

import (
	"context"
	"encoding/json"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/ports"
	"pharmaledger/internal/pkg/errs"
)

// LedgerCompanyRepository implements CompanyRepository over a key-value
// ledger.
type LedgerCompanyRepository struct {
	ledger ports.Ledger
}

// NewLedgerCompanyRepository creates a new ledger-backed company repository.
func NewLedgerCompanyRepository(ledger ports.Ledger) *LedgerCompanyRepository {
	return &LedgerCompanyRepository{ledger: ledger}
}

// Add persists a newly registered company under its CRN key.
func (r *LedgerCompanyRepository) Add(ctx context.Context, aggregate *company.Company) error {
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

// GetByCRN retrieves a company by its registration number.
func (r *LedgerCompanyRepository) GetByCRN(ctx context.Context, crn string) (*company.Company, error) {
	key, err := company.NewKey(crn)
	if err != nil {
		return nil, err
	}

	value, err := r.ledger.GetState(ctx, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, errs.NewObjectNotFoundError("companyCRN", crn)
	}

	var dto CompanyDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return nil, err
	}

	return ToDomain(dto)
}
