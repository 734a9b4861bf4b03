// Package companyrepo provides the ledger codec and repository for company
// records. The JSON layout matches the network's established company record
// shape, so records written by this module interoperate with records written
// by the original contract.
package companyrepo

import (
	"time"

	"pharmaledger/internal/core/domain/model/company"
)

// CompanyDTO is the ledger byte representation of a company record.
type CompanyDTO struct {
	CompanyID        string    `json:"companyID"`
	CompanyCRN       string    `json:"companyCRN"`
	CompanyName      string    `json:"companyName"`
	Location         string    `json:"location"`
	OrganisationRole string    `json:"organisationRole"`
	HierarchyKey     int       `json:"hierarchyKey"`
	RequestedBy      string    `json:"requestedBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FromDomain converts a company aggregate to its ledger representation.
func FromDomain(aggregate *company.Company) (CompanyDTO, error) {
	key, err := aggregate.Key()
	if err != nil {
		return CompanyDTO{}, err
	}

	return CompanyDTO{
		CompanyID:        key.String(),
		CompanyCRN:       aggregate.CRN(),
		CompanyName:      aggregate.Name(),
		Location:         aggregate.Location(),
		OrganisationRole: aggregate.Role().String(),
		HierarchyKey:     aggregate.HierarchyRank(),
		RequestedBy:      aggregate.RegisteredBy(),
		CreatedAt:        aggregate.RegisteredAt(),
	}, nil
}

// ToDomain reconstructs a company aggregate from its ledger representation.
func ToDomain(dto CompanyDTO) (*company.Company, error) {
	role, err := company.RoleFromString(dto.OrganisationRole)
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(
		dto.CompanyCRN, dto.CompanyName, dto.Location,
		role, dto.HierarchyKey, dto.RequestedBy, dto.CreatedAt,
	)
}
