// Package porepo provides the ledger codec and repository for purchase
// order records.
package porepo

import (
	"time"

	"pharmaledger/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderDTO is the ledger byte representation of a purchase order
// record.
type PurchaseOrderDTO struct {
	PoID      string    `json:"poID"`
	BuyerCRN  string    `json:"buyerCRN"`
	DrugName  string    `json:"drugName"`
	Quantity  int       `json:"quantity"`
	Buyer     string    `json:"buyer"`
	Seller    string    `json:"seller"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomain converts a purchase order aggregate to its ledger
// representation.
func FromDomain(aggregate *purchaseorder.PurchaseOrder) (PurchaseOrderDTO, error) {
	key, err := aggregate.Key()
	if err != nil {
		return PurchaseOrderDTO{}, err
	}

	return PurchaseOrderDTO{
		PoID:      key.String(),
		BuyerCRN:  aggregate.BuyerCRN(),
		DrugName:  aggregate.DrugName(),
		Quantity:  aggregate.Quantity(),
		Buyer:     aggregate.BuyerRef(),
		Seller:    aggregate.SellerRef(),
		CreatedBy: aggregate.CreatedBy(),
		CreatedAt: aggregate.CreatedAt(),
	}, nil
}

// ToDomain reconstructs a purchase order aggregate from its ledger
// representation.
func ToDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	return purchaseorder.RestorePurchaseOrder(
		dto.BuyerCRN, dto.DrugName, dto.Quantity,
		dto.Buyer, dto.Seller, dto.CreatedBy, dto.CreatedAt,
	)
}
