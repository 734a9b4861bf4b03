// Package drugrepo provides the ledger codec and repository for drug unit
// records.
package drugrepo

import (
	"encoding/json"
	"time"

	"pharmaledger/internal/core/domain/model/drug"
)

// DrugDTO is the ledger byte representation of a drug unit record.
type DrugDTO struct {
	ProductID     string    `json:"productID"`
	Name          string    `json:"name"`
	SerialNo      string    `json:"serialNo"`
	Manufacturer  string    `json:"manufacturer"`
	MfgDate       string    `json:"manufacturingDate"`
	ExpDate       string    `json:"expiryDate"`
	Owner         string    `json:"owner"`
	Shipment      []string  `json:"shipment"`
	AddedBy       string    `json:"addedBy"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromDomain converts a drug aggregate to its ledger representation.
func FromDomain(aggregate *drug.Drug) (DrugDTO, error) {
	key, err := aggregate.Key()
	if err != nil {
		return DrugDTO{}, err
	}

	return DrugDTO{
		ProductID:     key.String(),
		Name:          aggregate.Name(),
		SerialNo:      aggregate.SerialNo(),
		Manufacturer:  aggregate.ManufacturerRef(),
		MfgDate:       aggregate.MfgDate(),
		ExpDate:       aggregate.ExpDate(),
		Owner:         aggregate.OwnerRef(),
		Shipment:      aggregate.ShipmentRefs(),
		AddedBy:       aggregate.AddedBy(),
		TransactionID: aggregate.TxID(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}, nil
}

// ToDomain reconstructs a drug aggregate from its ledger representation.
func ToDomain(dto DrugDTO) (*drug.Drug, error) {
	return drug.RestoreDrug(
		dto.Name, dto.SerialNo, dto.MfgDate, dto.ExpDate,
		dto.Manufacturer, dto.Owner, dto.Shipment,
		dto.AddedBy, dto.TransactionID, dto.CreatedAt, dto.UpdatedAt,
	)
}

// DecodeSnapshot reconstructs a drug aggregate from a raw ledger value, as
// returned by a history scan.
func DecodeSnapshot(value []byte) (*drug.Drug, error) {
	var dto DrugDTO
	if err := json.Unmarshal(value, &dto); err != nil {
		return nil, err
	}
	return ToDomain(dto)
}
