package ports

import (
	"context"

	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/drug"
	"pharmaledger/internal/core/domain/model/purchaseorder"
	"pharmaledger/internal/core/domain/model/shipment"
)

// The repositories are the entity codec boundary: they serialize aggregates
// to the ledger's byte representation under the composite key rules and
// reconstruct them on read. Get methods return an ObjectNotFoundError when
// the key is absent.

// CompanyRepository persists company aggregates. Companies are written once
// at registration; there is no update.
type CompanyRepository interface {
	// Add persists a newly registered company.
	Add(ctx context.Context, aggregate *company.Company) error

	// GetByCRN retrieves a company by its registration number.
	GetByCRN(ctx context.Context, crn string) (*company.Company, error)
}

// DrugRepository persists drug unit aggregates.
type DrugRepository interface {
	// Add persists a newly manufactured unit.
	Add(ctx context.Context, aggregate *drug.Drug) error

	// Update persists an ownership transfer on an existing unit.
	Update(ctx context.Context, aggregate *drug.Drug) error

	// Get retrieves a unit by drug name and serial number.
	Get(ctx context.Context, name, serialNo string) (*drug.Drug, error)

	// GetByAssetID retrieves a unit by the joined "name-serialNo" form used
	// in shipment asset lists.
	GetByAssetID(ctx context.Context, assetID string) (*drug.Drug, error)
}

// PurchaseOrderRepository persists purchase order aggregates.
type PurchaseOrderRepository interface {
	// Save persists an order under its (buyerCRN, drugName) key, replacing
	// any previous order for the same pair.
	Save(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error

	// Get retrieves the order for a buyer CRN and drug name.
	Get(ctx context.Context, buyerCRN, drugName string) (*purchaseorder.PurchaseOrder, error)
}

// ShipmentRepository persists shipment aggregates.
type ShipmentRepository interface {
	// Add persists a newly created shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists a status change on an existing shipment.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves the shipment for a buyer CRN and drug name.
	Get(ctx context.Context, buyerCRN, drugName string) (*shipment.Shipment, error)
}
