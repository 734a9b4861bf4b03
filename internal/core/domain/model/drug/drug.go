// Package drug contains the Drug aggregate: one manufactured unit tracked
// from the manufacturer through transporters and buyers to the end consumer.
package drug

import (
	"errors"
	"time"

	"pharmaledger/internal/core/domain/model/kernel"
	"pharmaledger/internal/pkg/errs"
)

// Namespace is the ledger key namespace tag for drug records.
const Namespace = "drug"

// ErrDrugIsNotConstructed is returned when a Drug instance was not created
// through NewDrug or RestoreDrug.
var ErrDrugIsNotConstructed = errors.New("Drug must be created via NewDrug or RestoreDrug constructor")

// NewKey builds the canonical ledger key for a drug name and serial number.
func NewKey(name, serialNo string) (kernel.Key, error) {
	return kernel.NewKey(Namespace, name, serialNo)
}

// KeyFromAssetID builds a drug key from the joined "name-serialNo" form used
// in shipment asset lists.
func KeyFromAssetID(assetID string) (kernel.Key, error) {
	return kernel.NewKey(Namespace, assetID)
}

// Drug is one manufactured drug unit. Its owner reference walks a fixed
// chain of custody:
//
//	manufacturer ──> transporter ──> buyer ──> ... ──> retailer ──> consumer
//	  (addDrug)    (createShipment) (updateShipment)   (retailDrug)
//
// While the unit is held by a company the owner reference is that company's
// canonical ledger key string; after the terminal retail sale it is the
// opaque consumer identifier and no further transfer is possible. Every
// transfer verifies the handing-over party is the current owner, so a stale
// or forged transition fails with an ownership mismatch.
type Drug struct {
	// name and serialNo identify the unit; together they form the ledger key
	name     string
	serialNo string

	// manufacturerRef is the ledger key string of the producing company
	manufacturerRef string

	// mfgDate and expDate are carried as opaque date strings from the label
	mfgDate string
	expDate string

	// ownerRef is the current owner: a company key string, or the consumer
	// identifier after the terminal retail sale
	ownerRef string

	// shipmentRefs is the append-only list of shipment keys the unit has
	// travelled through, in delivery order
	shipmentRefs []string

	// addedBy and txID record the registering identity and transaction
	addedBy string
	txID    string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the drug was created via a constructor
	isConstructed bool
}

// NewDrug registers a newly manufactured unit, owned by its manufacturer,
// with an empty shipment history.
func NewDrug(name, serialNo, mfgDate, expDate, manufacturerRef, addedBy, txID string,
	createdAt time.Time,
) (*Drug, error) {
	d := &Drug{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setName(name),
		d.setSerialNo(serialNo),
		d.setDates(mfgDate, expDate),
		d.setManufacturerRef(manufacturerRef),
		d.setAddedBy(addedBy),
		d.setTxID(txID),
	); err != nil {
		return nil, err
	}

	d.ownerRef = manufacturerRef
	d.shipmentRefs = []string{}
	d.createdAt = createdAt
	d.updatedAt = createdAt
	return d, nil
}

// RestoreDrug reconstructs a unit from persistence, including its current
// owner and accumulated shipment history.
func RestoreDrug(name, serialNo, mfgDate, expDate, manufacturerRef, ownerRef string,
	shipmentRefs []string, addedBy, txID string, createdAt, updatedAt time.Time,
) (*Drug, error) {
	d, err := NewDrug(name, serialNo, mfgDate, expDate, manufacturerRef, addedBy, txID, createdAt)
	if err != nil {
		return nil, err
	}
	if ownerRef == "" {
		return nil, errs.NewValueIsRequiredError("owner")
	}

	d.ownerRef = ownerRef
	if shipmentRefs != nil {
		d.shipmentRefs = append([]string{}, shipmentRefs...)
	}
	d.updatedAt = updatedAt
	return d, nil
}

// Validate ensures the Drug instance was properly constructed.
func (d *Drug) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDrugIsNotConstructed
	}
	return nil
}

// Key returns the unit's canonical ledger key.
func (d *Drug) Key() (kernel.Key, error) {
	return NewKey(d.name, d.serialNo)
}

// Name returns the drug name.
func (d *Drug) Name() string {
	return d.name
}

// SerialNo returns the unit serial number.
func (d *Drug) SerialNo() string {
	return d.serialNo
}

// ManufacturerRef returns the producing company's key string.
func (d *Drug) ManufacturerRef() string {
	return d.manufacturerRef
}

// MfgDate returns the manufacturing date as labelled.
func (d *Drug) MfgDate() string {
	return d.mfgDate
}

// ExpDate returns the expiry date as labelled.
func (d *Drug) ExpDate() string {
	return d.expDate
}

// OwnerRef returns the current owner reference: a company key string, or the
// consumer identifier after retail sale.
func (d *Drug) OwnerRef() string {
	return d.ownerRef
}

// ShipmentRefs returns the shipment keys the unit has travelled through,
// oldest first.
func (d *Drug) ShipmentRefs() []string {
	return append([]string{}, d.shipmentRefs...)
}

// AddedBy returns the identity that registered the unit.
func (d *Drug) AddedBy() string {
	return d.addedBy
}

// TxID returns the transaction that registered the unit.
func (d *Drug) TxID() string {
	return d.txID
}

// CreatedAt returns the registration timestamp.
func (d *Drug) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the timestamp of the last ownership change.
func (d *Drug) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsOwnedBy reports whether ref is the unit's current owner of record.
func (d *Drug) IsOwnedBy(ref string) bool {
	return d.ownerRef == ref
}

// Ship hands the unit from its selling owner to a transporter for transit.
// The seller must be the current owner; a unit already sold to a consumer
// can never match and is rejected the same way.
func (d *Drug) Ship(sellerRef, transporterRef string, at time.Time) error {
	if transporterRef == "" {
		return errs.NewValueIsRequiredError("transporter")
	}
	if !d.IsOwnedBy(sellerRef) {
		return errs.NewOwnershipMismatchError(d.ownerRef, sellerRef)
	}

	d.ownerRef = transporterRef
	d.updatedAt = at
	return nil
}

// Deliver hands the unit from the transporter to the buying company and
// appends the shipment to the unit's travel history.
func (d *Drug) Deliver(transporterRef, buyerRef, shipmentRef string, at time.Time) error {
	if buyerRef == "" {
		return errs.NewValueIsRequiredError("buyer")
	}
	if shipmentRef == "" {
		return errs.NewValueIsRequiredError("shipment")
	}
	if !d.IsOwnedBy(transporterRef) {
		return errs.NewOwnershipMismatchError(d.ownerRef, transporterRef)
	}

	d.ownerRef = buyerRef
	d.shipmentRefs = append(d.shipmentRefs, shipmentRef)
	d.updatedAt = at
	return nil
}

// Sell transfers the unit from the retailer to an end consumer. This is the
// terminal transition: the consumer identifier is not a company key, so no
// later Ship, Deliver, or Sell can ever match the owner again.
func (d *Drug) Sell(retailerRef, consumerID string, at time.Time) error {
	if consumerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	if !d.IsOwnedBy(retailerRef) {
		return errs.NewOwnershipMismatchError(d.ownerRef, retailerRef)
	}

	d.ownerRef = consumerID
	d.updatedAt = at
	return nil
}

func (d *Drug) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("drugName")
	}
	d.name = name
	return nil
}

func (d *Drug) setSerialNo(serialNo string) error {
	if serialNo == "" {
		return errs.NewValueIsRequiredError("serialNo")
	}
	d.serialNo = serialNo
	return nil
}

func (d *Drug) setDates(mfgDate, expDate string) error {
	if mfgDate == "" {
		return errs.NewValueIsRequiredError("mfgDate")
	}
	if expDate == "" {
		return errs.NewValueIsRequiredError("expDate")
	}
	d.mfgDate = mfgDate
	d.expDate = expDate
	return nil
}

func (d *Drug) setManufacturerRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("manufacturer")
	}
	d.manufacturerRef = ref
	return nil
}

func (d *Drug) setAddedBy(addedBy string) error {
	if addedBy == "" {
		return errs.NewValueIsRequiredError("addedBy")
	}
	d.addedBy = addedBy
	return nil
}

func (d *Drug) setTxID(txID string) error {
	if txID == "" {
		return errs.NewValueIsRequiredError("transactionID")
	}
	d.txID = txID
	return nil
}
