package commands

import (
	"errors"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrAddDrugCommandIsNotConstructed = errors.New(
	"AddDrugCommand must be created via NewAddDrugCommand constructor",
)

// AddDrugCommand represents a request to register a newly manufactured drug
// unit on the ledger.
type AddDrugCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	drugName   string
	serialNo   string
	mfgDate    string
	expDate    string
	companyCRN string

	guard guard.ConstructorGuard
}

// NewAddDrugCommand creates a command to register a drug unit. The company
// CRN names the manufacturer registering the unit; dates are carried as the
// caller supplied them.
func NewAddDrugCommand(actor identity.Actor, drugName, serialNo, mfgDate, expDate,
	companyCRN string,
) (AddDrugCommand, error) {
	cmd := AddDrugCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDrugName(drugName),
		cmd.setSerialNo(serialNo),
		cmd.setDates(mfgDate, expDate),
		cmd.setCompanyCRN(companyCRN),
	); err != nil {
		return AddDrugCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDrugCommand) Validate() error {
	return c.guard.Validate(ErrAddDrugCommandIsNotConstructed)
}

// Actor returns the identity invoking the registration.
func (c AddDrugCommand) Actor() identity.Actor {
	return c.actor
}

// DrugName returns the drug's commercial name.
func (c AddDrugCommand) DrugName() string {
	return c.drugName
}

// SerialNo returns the unit serial number.
func (c AddDrugCommand) SerialNo() string {
	return c.serialNo
}

// MfgDate returns the manufacturing date string.
func (c AddDrugCommand) MfgDate() string {
	return c.mfgDate
}

// ExpDate returns the expiry date string.
func (c AddDrugCommand) ExpDate() string {
	return c.expDate
}

// CompanyCRN returns the registering manufacturer's CRN.
func (c AddDrugCommand) CompanyCRN() string {
	return c.companyCRN
}

func (c *AddDrugCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddDrugCommand) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}

	c.drugName = drugName
	return nil
}

func (c *AddDrugCommand) setSerialNo(serialNo string) error {
	if serialNo == "" {
		return errs.NewValueIsRequiredError("serialNo")
	}

	c.serialNo = serialNo
	return nil
}

func (c *AddDrugCommand) setDates(mfgDate, expDate string) error {
	if mfgDate == "" {
		return errs.NewValueIsRequiredError("mfgDate")
	}
	if expDate == "" {
		return errs.NewValueIsRequiredError("expDate")
	}

	c.mfgDate = mfgDate
	c.expDate = expDate
	return nil
}

func (c *AddDrugCommand) setCompanyCRN(companyCRN string) error {
	if companyCRN == "" {
		return errs.NewValueIsRequiredError("companyCRN")
	}

	c.companyCRN = companyCRN
	return nil
}
