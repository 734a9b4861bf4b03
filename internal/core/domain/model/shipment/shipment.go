// Package shipment contains the Shipment aggregate: a consignment of drug
// units moving from a purchase order's seller to its buyer via a named
// transporter.
package shipment

import (
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/pkg/errs"
)

// Namespace is the ledger key namespace tag for shipment records.
const Namespace = "shipmentOrder"

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructor")

// NewKey builds the canonical ledger key for a buyer CRN and drug name.
// It mirrors the purchase order key the shipment fulfills.
func NewKey(buyerCRN, drugName string) (kernel.Key, error) {
	return kernel.NewKey(Namespace, buyerCRN, drugName)
}

// Shipment is a consignment created by a purchase order's seller. The asset
// list is fixed at creation: it names exactly the drug unit keys handed to
// the transporter, and never changes size afterwards. Only the named
// transporter may flip the status to delivered.
type Shipment struct {
	buyerCRN string
	drugName string

	// creatorRef is the seller's company key string, taken from the
	// purchase order being fulfilled
	creatorRef string

	// assetRefs are the contained drug unit key strings, fixed at creation
	assetRefs []string

	// transporterCRN names the carrier; transporterRef is its company key
	transporterCRN string
	transporterRef string

	status Status

	createdBy string
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates an in-transit consignment for the given purchase
// order identity, asset list, and transporter.
func NewShipment(buyerCRN, drugName, creatorRef string, assetRefs []string,
	transporterCRN, transporterRef, createdBy string, createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        InTransit,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setBuyerCRN(buyerCRN),
		s.setDrugName(drugName),
		s.setCreatorRef(creatorRef),
		s.setAssetRefs(assetRefs),
		s.setTransporter(transporterCRN, transporterRef),
		s.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	s.createdAt = createdAt
	s.updatedAt = createdAt
	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(buyerCRN, drugName, creatorRef string, assetRefs []string,
	transporterCRN, transporterRef string, status Status, createdBy string,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(buyerCRN, drugName, creatorRef, assetRefs,
		transporterCRN, transporterRef, createdBy, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.updatedAt = updatedAt
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// Key returns the shipment's canonical ledger key.
func (s *Shipment) Key() (kernel.Key, error) {
	return NewKey(s.buyerCRN, s.drugName)
}

// BuyerCRN returns the receiving company's CRN.
func (s *Shipment) BuyerCRN() string {
	return s.buyerCRN
}

// DrugName returns the shipped drug name.
func (s *Shipment) DrugName() string {
	return s.drugName
}

// CreatorRef returns the seller's company key string.
func (s *Shipment) CreatorRef() string {
	return s.creatorRef
}

// AssetRefs returns the contained drug unit key strings.
func (s *Shipment) AssetRefs() []string {
	return append([]string{}, s.assetRefs...)
}

// TransporterCRN returns the carrier's CRN.
func (s *Shipment) TransporterCRN() string {
	return s.transporterCRN
}

// TransporterRef returns the carrier's company key string.
func (s *Shipment) TransporterRef() string {
	return s.transporterRef
}

// Status returns the current shipment status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedBy returns the identity that created the shipment.
func (s *Shipment) CreatedBy() string {
	return s.createdBy
}

// CreatedAt returns the shipment creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// Deliver marks the consignment delivered on behalf of transporterCRN.
//
// Business rules:
//   - only the transporter recorded on the shipment may deliver it
//   - the shipment must still be in transit
func (s *Shipment) Deliver(transporterCRN string, at time.Time) error {
	if s.transporterCRN != transporterCRN {
		return errs.NewTransporterMismatchError(s.transporterCRN, transporterCRN)
	}

	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.updatedAt = at
	return nil
}

func (s *Shipment) setBuyerCRN(buyerCRN string) error {
	if buyerCRN == "" {
		return errs.NewValueIsRequiredError("buyerCRN")
	}
	s.buyerCRN = buyerCRN
	return nil
}

func (s *Shipment) setDrugName(drugName string) error {
	if drugName == "" {
		return errs.NewValueIsRequiredError("drugName")
	}
	s.drugName = drugName
	return nil
}

func (s *Shipment) setCreatorRef(creatorRef string) error {
	if creatorRef == "" {
		return errs.NewValueIsRequiredError("creator")
	}
	s.creatorRef = creatorRef
	return nil
}

func (s *Shipment) setAssetRefs(assetRefs []string) error {
	if len(assetRefs) == 0 {
		return errs.NewValueIsRequiredError("listOfAssets")
	}
	for _, ref := range assetRefs {
		if ref == "" {
			return errs.NewValueIsRequiredError("asset")
		}
	}
	s.assetRefs = append([]string{}, assetRefs...)
	return nil
}

func (s *Shipment) setTransporter(transporterCRN, transporterRef string) error {
	if transporterCRN == "" {
		return errs.NewValueIsRequiredError("transporterCRN")
	}
	if transporterRef == "" {
		return errs.NewValueIsRequiredError("transporter")
	}
	s.transporterCRN = transporterCRN
	s.transporterRef = transporterRef
	return nil
}

func (s *Shipment) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	s.createdBy = createdBy
	return nil
}
