package commands

import (
	"errors"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a transporter's confirmation that a
// consignment reached its buyer.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor          identity.Actor
	buyerCRN       string
	drugName       string
	transporterCRN string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to mark a shipment delivered.
// The transporter CRN must match the one recorded on the shipment; that
// check happens in the handler once the record is loaded.
func NewUpdateShipmentCommand(actor identity.Actor, buyerCRN, drugName, transporterCRN string) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBuyerCRN(buyerCRN),
		cmd.setDrugName(drugName),
		cmd.setTransporterCRN(transporterCRN),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// Actor returns the identity invoking the delivery.
func (c UpdateShipmentCommand) Actor() identity.Actor {
	return c.actor
}

// BuyerCRN returns the CRN of the shipment's buyer.
func (c UpdateShipmentCommand) BuyerCRN() string {
	return c.buyerCRN
}

// DrugName returns the drug carried by the shipment.
func (c UpdateShipmentCommand) DrugName() string {
	return c.drugName
}

// TransporterCRN returns the CRN of the confirming transporter.
func (c UpdateShipmentCommand) TransporterCRN() string {
	return c.transporterCRN
}

func (c *UpdateShipmentCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateShipmentCommand) setBuyerCRN(buyerCRN string) error {
	if buyerCRN == "" {
		return errs.NewValueIsRequiredError("buyerCRN")
	}

	c.buyerCRN = buyerCRN
	return nil
}

func (c *UpdateShipmentCommand) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}

	c.drugName = drugName
	return nil
}

func (c *UpdateShipmentCommand) setTransporterCRN(transporterCRN string) error {
	if transporterCRN == "" {
		return errs.NewValueIsRequiredError("transporterCRN")
	}

	c.transporterCRN = transporterCRN
	return nil
}
