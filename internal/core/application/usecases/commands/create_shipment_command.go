package commands

import (
	"errors"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a seller's request to dispatch the units
// fulfilling a purchase order via a transporter.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor          identity.Actor
	buyerCRN       string
	drugName       string
	assetIDs       []string
	transporterCRN string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to dispatch a consignment. The
// asset IDs are the "name-serialNo" identifiers of the individual units; the
// list must not be empty or contain blanks.
func NewCreateShipmentCommand(actor identity.Actor, buyerCRN, drugName string,
	assetIDs []string, transporterCRN string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBuyerCRN(buyerCRN),
		cmd.setDrugName(drugName),
		cmd.setAssetIDs(assetIDs),
		cmd.setTransporterCRN(transporterCRN),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Actor returns the identity invoking the dispatch.
func (c CreateShipmentCommand) Actor() identity.Actor {
	return c.actor
}

// BuyerCRN returns the CRN of the purchase order's buyer.
func (c CreateShipmentCommand) BuyerCRN() string {
	return c.buyerCRN
}

// DrugName returns the drug being shipped.
func (c CreateShipmentCommand) DrugName() string {
	return c.drugName
}

// AssetIDs returns the unit identifiers in the consignment.
func (c CreateShipmentCommand) AssetIDs() []string {
	ids := make([]string, len(c.assetIDs))
	copy(ids, c.assetIDs)
	return ids
}

// TransporterCRN returns the CRN of the transporter carrying the
// consignment.
func (c CreateShipmentCommand) TransporterCRN() string {
	return c.transporterCRN
}

func (c *CreateShipmentCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateShipmentCommand) setBuyerCRN(buyerCRN string) error {
	if buyerCRN == "" {
		return errs.NewValueIsRequiredError("buyerCRN")
	}

	c.buyerCRN = buyerCRN
	return nil
}

func (c *CreateShipmentCommand) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}

	c.drugName = drugName
	return nil
}

func (c *CreateShipmentCommand) setAssetIDs(assetIDs []string) error {
	if len(assetIDs) == 0 {
		return errs.NewValueIsRequiredError("listOfAssets")
	}
	for _, id := range assetIDs {
		if id == "" {
			return errs.NewValueIsInvalidError("listOfAssets")
		}
	}

	c.assetIDs = make([]string, len(assetIDs))
	copy(c.assetIDs, assetIDs)
	return nil
}

func (c *CreateShipmentCommand) setTransporterCRN(transporterCRN string) error {
	if transporterCRN == "" {
		return errs.NewValueIsRequiredError("transporterCRN")
	}

	c.transporterCRN = transporterCRN
	return nil
}
