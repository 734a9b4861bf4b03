package commands

import (
	"errors"

	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
	"pharmaledger/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a buyer's request to purchase a
// quantity of a drug from a seller one step above it in the hierarchy.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actor     identity.Actor
	buyerCRN  string
	sellerCRN string
	drugName  string
	quantity  int

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to record a purchase
// order. Validates that both CRNs and the drug name are present and the
// quantity is positive; the hierarchy rule is checked by the handler once
// both companies are loaded.
func NewCreatePurchaseOrderCommand(actor identity.Actor, buyerCRN, sellerCRN, drugName string,
	quantity int,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBuyerCRN(buyerCRN),
		cmd.setSellerCRN(sellerCRN),
		cmd.setDrugName(drugName),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// Actor returns the identity invoking the purchase.
func (c CreatePurchaseOrderCommand) Actor() identity.Actor {
	return c.actor
}

// BuyerCRN returns the purchasing company's CRN.
func (c CreatePurchaseOrderCommand) BuyerCRN() string {
	return c.buyerCRN
}

// SellerCRN returns the selling company's CRN.
func (c CreatePurchaseOrderCommand) SellerCRN() string {
	return c.sellerCRN
}

// DrugName returns the name of the drug being purchased.
func (c CreatePurchaseOrderCommand) DrugName() string {
	return c.drugName
}

// Quantity returns the number of units requested.
func (c CreatePurchaseOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreatePurchaseOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreatePurchaseOrderCommand) setBuyerCRN(buyerCRN string) error {
	if buyerCRN == "" {
		return errs.NewValueIsRequiredError("buyerCRN")
	}

	c.buyerCRN = buyerCRN
	return nil
}

func (c *CreatePurchaseOrderCommand) setSellerCRN(sellerCRN string) error {
	if sellerCRN == "" {
		return errs.NewValueIsRequiredError("sellerCRN")
	}

	c.sellerCRN = sellerCRN
	return nil
}

func (c *CreatePurchaseOrderCommand) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}

	c.drugName = drugName
	return nil
}

func (c *CreatePurchaseOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}
