package commands

import (
	"errors"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrRegisterCompanyCommandIsNotConstructed = errors.New(
	"RegisterCompanyCommand must be created via NewRegisterCompanyCommand constructor",
)

// RegisterCompanyCommand represents a request to register a participant on
// the network.
//
// Example:
//
//	cmd, err := NewRegisterCompanyCommand(actor, "CRN001", "Sun Pharma", "Mumbai", company.Manufacturer)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterCompanyCommandHandler(uowFactory, time.Now)
//	registered, err := handler.Handle(ctx, cmd)
type RegisterCompanyCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	crn      string
	name     string
	location string
	role     company.Role

	guard guard.ConstructorGuard
}

// NewRegisterCompanyCommand creates a command to register a company.
// Validates that the actor is constructed, the CRN, name, and location are
// not empty, and the role is a known organisational role.
func NewRegisterCompanyCommand(actor identity.Actor, crn, name, location string,
	role company.Role,
) (RegisterCompanyCommand, error) {
	cmd := RegisterCompanyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setCRN(crn),
		cmd.setName(name),
		cmd.setLocation(location),
		cmd.setRole(role),
	); err != nil {
		return RegisterCompanyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCompanyCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCompanyCommandIsNotConstructed)
}

// Actor returns the identity invoking the registration.
func (c RegisterCompanyCommand) Actor() identity.Actor {
	return c.actor
}

// CRN returns the company registration number.
func (c RegisterCompanyCommand) CRN() string {
	return c.crn
}

// Name returns the company name.
func (c RegisterCompanyCommand) Name() string {
	return c.name
}

// Location returns the company location.
func (c RegisterCompanyCommand) Location() string {
	return c.location
}

// Role returns the organisational role to register under.
func (c RegisterCompanyCommand) Role() company.Role {
	return c.role
}

func (c *RegisterCompanyCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RegisterCompanyCommand) setCRN(crn string) error {
	if crn == "" {
		return errs.NewValueIsRequiredError("companyCRN")
	}

	c.crn = crn
	return nil
}

func (c *RegisterCompanyCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("companyName")
	}

	c.name = name
	return nil
}

func (c *RegisterCompanyCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

func (c *RegisterCompanyCommand) setRole(role company.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
