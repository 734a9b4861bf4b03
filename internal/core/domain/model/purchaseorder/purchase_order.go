// Package purchaseorder contains the PurchaseOrder aggregate. Creating one
// is where the purchase hierarchy rule is enforced: a buyer may only order
// from the tier directly above it.
package purchaseorder

import (
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/pkg/errs"
)

// Namespace is the ledger key namespace tag for purchase order records.
const Namespace = "purchaseOrder"

// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was not
// created through NewPurchaseOrder or RestorePurchaseOrder.
var ErrPurchaseOrderIsNotConstructed = errors.New(
	"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor")

// NewKey builds the canonical ledger key for a buyer CRN and drug name.
// The shipment fulfilling the order shares the same identifier under its
// own namespace.
func NewKey(buyerCRN, drugName string) (kernel.Key, error) {
	return kernel.NewKey(Namespace, buyerCRN, drugName)
}

// PurchaseOrder records a buyer's intent to purchase a quantity of one drug
// from a seller one hierarchy rank above it. The record is immutable once
// written; re-ordering the same drug writes a fresh order under the same
// composite key.
type PurchaseOrder struct {
	buyerCRN string
	drugName string
	quantity int

	// buyerRef and sellerRef are the parties' company key strings
	buyerRef  string
	sellerRef string

	createdBy string
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewPurchaseOrder creates an order after checking the purchase hierarchy:
// the buyer's rank must be exactly one greater than the seller's
// (Manufacturer sells to Distributor, Distributor sells to Retailer).
// Same-tier, upward, or tier-skipping orders fail with a hierarchy
// violation; a transporter can never be party to an order since its rank
// is 0.
func NewPurchaseOrder(buyer, seller *company.Company, drugName string, quantity int,
	createdBy string, createdAt time.Time,
) (*PurchaseOrder, error) {
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if err := seller.Validate(); err != nil {
		return nil, err
	}

	if buyer.HierarchyRank()-seller.HierarchyRank() != 1 {
		return nil, errs.NewHierarchyViolationError(buyer.HierarchyRank(), seller.HierarchyRank())
	}

	buyerKey, err := buyer.Key()
	if err != nil {
		return nil, err
	}
	sellerKey, err := seller.Key()
	if err != nil {
		return nil, err
	}

	po := &PurchaseOrder{
		buyerRef:      buyerKey.String(),
		sellerRef:     sellerKey.String(),
		isConstructed: true,
	}

	if err := errors.Join(
		po.setBuyerCRN(buyer.CRN()),
		po.setDrugName(drugName),
		po.setQuantity(quantity),
		po.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	po.createdAt = createdAt
	return po, nil
}

// RestorePurchaseOrder reconstructs an order from persistence. The hierarchy
// rule was checked at creation and is not re-derived from the stored refs.
func RestorePurchaseOrder(buyerCRN, drugName string, quantity int,
	buyerRef, sellerRef, createdBy string, createdAt time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		po.setBuyerCRN(buyerCRN),
		po.setDrugName(drugName),
		po.setQuantity(quantity),
		po.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}
	if buyerRef == "" {
		return nil, errs.NewValueIsRequiredError("buyer")
	}
	if sellerRef == "" {
		return nil, errs.NewValueIsRequiredError("seller")
	}

	po.buyerRef = buyerRef
	po.sellerRef = sellerRef
	po.createdAt = createdAt
	return po, nil
}

// Validate ensures the PurchaseOrder instance was properly constructed.
func (po *PurchaseOrder) Validate() error {
	if po == nil || !po.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// Key returns the order's canonical ledger key.
func (po *PurchaseOrder) Key() (kernel.Key, error) {
	return NewKey(po.buyerCRN, po.drugName)
}

// BuyerCRN returns the ordering company's CRN.
func (po *PurchaseOrder) BuyerCRN() string {
	return po.buyerCRN
}

// DrugName returns the ordered drug name.
func (po *PurchaseOrder) DrugName() string {
	return po.drugName
}

// Quantity returns the ordered unit count.
func (po *PurchaseOrder) Quantity() int {
	return po.quantity
}

// BuyerRef returns the buyer's company key string.
func (po *PurchaseOrder) BuyerRef() string {
	return po.buyerRef
}

// SellerRef returns the seller's company key string.
func (po *PurchaseOrder) SellerRef() string {
	return po.sellerRef
}

// CreatedBy returns the identity that created the order.
func (po *PurchaseOrder) CreatedBy() string {
	return po.createdBy
}

// CreatedAt returns the order creation timestamp.
func (po *PurchaseOrder) CreatedAt() time.Time {
	return po.createdAt
}

func (po *PurchaseOrder) setBuyerCRN(buyerCRN string) error {
	if buyerCRN == "" {
		return errs.NewValueIsRequiredError("buyerCRN")
	}
	po.buyerCRN = buyerCRN
	return nil
}

func (po *PurchaseOrder) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}
	po.drugName = drugName
	return nil
}

func (po *PurchaseOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	po.quantity = quantity
	return nil
}

func (po *PurchaseOrder) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	po.createdBy = createdBy
	return nil
}
