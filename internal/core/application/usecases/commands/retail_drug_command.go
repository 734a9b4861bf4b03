package commands

import (
	"errors"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrRetailDrugCommandIsNotConstructed = errors.New(
	"RetailDrugCommand must be created via NewRetailDrugCommand constructor",
)

// RetailDrugCommand represents a retailer's sale of a single unit to an end
// consumer.
type RetailDrugCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	drugName    string
	serialNo    string
	retailerCRN string
	customerID  string

	guard guard.ConstructorGuard
}

// NewRetailDrugCommand creates a command to sell a unit to a consumer. The
// customer identifier is an opaque string such as an Aadhar number; it is
// recorded as the unit's final owner.
func NewRetailDrugCommand(actor identity.Actor, drugName, serialNo, retailerCRN, customerID string) (RetailDrugCommand, error) {
	cmd := RetailDrugCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDrugName(drugName),
		cmd.setSerialNo(serialNo),
		cmd.setRetailerCRN(retailerCRN),
		cmd.setCustomerID(customerID),
	); err != nil {
		return RetailDrugCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RetailDrugCommand) Validate() error {
	return c.guard.Validate(ErrRetailDrugCommandIsNotConstructed)
}

// Actor returns the identity invoking the sale.
func (c RetailDrugCommand) Actor() identity.Actor {
	return c.actor
}

// DrugName returns the drug's commercial name.
func (c RetailDrugCommand) DrugName() string {
	return c.drugName
}

// SerialNo returns the unit serial number.
func (c RetailDrugCommand) SerialNo() string {
	return c.serialNo
}

// RetailerCRN returns the CRN of the selling retailer.
func (c RetailDrugCommand) RetailerCRN() string {
	return c.retailerCRN
}

// CustomerID returns the consumer identifier taking final ownership.
func (c RetailDrugCommand) CustomerID() string {
	return c.customerID
}

func (c *RetailDrugCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RetailDrugCommand) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}

	c.drugName = drugName
	return nil
}

func (c *RetailDrugCommand) setSerialNo(serialNo string) error {
	if serialNo == "" {
		return errs.NewValueIsRequiredError("serialNo")
	}

	c.serialNo = serialNo
	return nil
}

func (c *RetailDrugCommand) setRetailerCRN(retailerCRN string) error {
	if retailerCRN == "" {
		return errs.NewValueIsRequiredError("retailerCRN")
	}

	c.retailerCRN = retailerCRN
	return nil
}

func (c *RetailDrugCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}

	c.customerID = customerID
	return nil
}
