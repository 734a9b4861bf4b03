package company

import (
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/pkg/errs"
)

// Namespace is the ledger key namespace tag for company records.
const Namespace = "company"

// ErrCompanyIsNotConstructed is returned when a Company instance was not
// created through NewCompany or RestoreCompany.
var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany constructor")

// NewKey builds the canonical ledger key for a company CRN.
func NewKey(crn string) (kernel.Key, error) {
	return kernel.NewKey(Namespace, crn)
}

// Company is a registered participant of the supply chain network. It is the
// root of the ownership graph: drugs, purchase orders, and shipments all
// reference companies by their ledger key.
//
// A company is written once at registration and never updated or deleted;
// there are no mutating methods on the aggregate.
type Company struct {
	// crn is the unique registration identifier the company is keyed by
	crn string

	// name and location describe the registered party
	name     string
	location string

	// role is the organisational role; rank caches role.HierarchyRank()
	// as registered, since the record is immutable
	role Role
	rank int

	// registeredBy is the identity of the caller that registered the company
	registeredBy string

	// registeredAt is the registration timestamp
	registeredAt time.Time

	// isConstructed ensures the company was created via a constructor
	isConstructed bool
}

// NewCompany registers a new company record. The hierarchy rank is computed
// from the role: trading roles get ranks 1–3, Transporter gets 0.
func NewCompany(crn, name, location string, role Role, registeredBy string, registeredAt time.Time) (*Company, error) {
	c := &Company{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setCRN(crn),
		c.setName(name),
		c.setLocation(location),
		c.setRole(role),
		c.setRegisteredBy(registeredBy),
	); err != nil {
		return nil, err
	}

	c.registeredAt = registeredAt
	return c, nil
}

// RestoreCompany reconstructs a company from persistence. The stored rank is
// trusted as written at registration time.
func RestoreCompany(crn, name, location string, role Role, rank int,
	registeredBy string, registeredAt time.Time,
) (*Company, error) {
	c, err := NewCompany(crn, name, location, role, registeredBy, registeredAt)
	if err != nil {
		return nil, err
	}

	c.rank = rank
	return c, nil
}

// Validate ensures the Company instance was properly constructed.
func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

// Key returns the company's canonical ledger key.
func (c *Company) Key() (kernel.Key, error) {
	return NewKey(c.crn)
}

// CRN returns the company registration number.
func (c *Company) CRN() string {
	return c.crn
}

// Name returns the registered company name.
func (c *Company) Name() string {
	return c.name
}

// Location returns the registered company location.
func (c *Company) Location() string {
	return c.location
}

// Role returns the organisational role.
func (c *Company) Role() Role {
	return c.role
}

// HierarchyRank returns the purchase hierarchy rank recorded at
// registration: 1 for Manufacturer, 2 for Distributor, 3 for Retailer,
// 0 for Transporter.
func (c *Company) HierarchyRank() int {
	return c.rank
}

// RegisteredBy returns the identity that registered the company.
func (c *Company) RegisteredBy() string {
	return c.registeredBy
}

// RegisteredAt returns the registration timestamp.
func (c *Company) RegisteredAt() time.Time {
	return c.registeredAt
}

func (c *Company) setCRN(crn string) error {
	if crn == "" {
		return errs.NewValueIsRequiredError("companyCRN")
	}
	c.crn = crn
	return nil
}

func (c *Company) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("companyName")
	}
	c.name = name
	return nil
}

func (c *Company) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *Company) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	c.rank = role.HierarchyRank()
	return nil
}

func (c *Company) setRegisteredBy(registeredBy string) error {
	if registeredBy == "" {
		return errs.NewValueIsRequiredError("registeredBy")
	}
	c.registeredBy = registeredBy
	return nil
}
