// Package shipmentrepo provides the ledger codec and repository for
// shipment records.
package shipmentrepo

import (
	"time"

	"pharmaledger/internal/core/domain/model/shipment"
)

// ShipmentDTO is the ledger byte representation of a shipment record.
type ShipmentDTO struct {
	ShipmentID     string    `json:"shipmentID"`
	BuyerCRN       string    `json:"buyerCRN"`
	DrugName       string    `json:"drugName"`
	Creator        string    `json:"creator"`
	Assets         []string  `json:"assets"`
	TransporterCRN string    `json:"transporterCRN"`
	Transporter    string    `json:"transporter"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FromDomain converts a shipment aggregate to its ledger representation.
func FromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	key, err := aggregate.Key()
	if err != nil {
		return ShipmentDTO{}, err
	}

	return ShipmentDTO{
		ShipmentID:     key.String(),
		BuyerCRN:       aggregate.BuyerCRN(),
		DrugName:       aggregate.DrugName(),
		Creator:        aggregate.CreatorRef(),
		Assets:         aggregate.AssetRefs(),
		TransporterCRN: aggregate.TransporterCRN(),
		Transporter:    aggregate.TransporterRef(),
		Status:         aggregate.Status().String(),
		CreatedBy:      aggregate.CreatedBy(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}, nil
}

// ToDomain reconstructs a shipment aggregate from its ledger representation.
func ToDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		dto.BuyerCRN, dto.DrugName, dto.Creator, dto.Assets,
		dto.TransporterCRN, dto.Transporter, status,
		dto.CreatedBy, dto.CreatedAt, dto.UpdatedAt,
	)
}
