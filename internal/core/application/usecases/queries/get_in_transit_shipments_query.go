package queries

import (
	"errors"
	"time"

	"pharmaledger/internal/pkg/guard"
)

var ErrGetInTransitShipmentsQueryIsNotConstructed = errors.New(
	"GetInTransitShipmentsQuery must be created via NewGetInTransitShipmentsQuery constructor",
)

// GetInTransitShipmentsQuery retrieves every consignment still on the road.
// Used by the shipment watch job to surface consignments that have not been
// confirmed delivered.
type GetInTransitShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInTransitShipmentsQuery creates a query for all in-transit
// shipments.
func NewGetInTransitShipmentsQuery() GetInTransitShipmentsQuery {
	return GetInTransitShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInTransitShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetInTransitShipmentsQueryIsNotConstructed)
}

// GetInTransitShipmentsQueryResponse represents one in-transit consignment
// in the read model.
type GetInTransitShipmentsQueryResponse struct {
	ShipmentID     string    `json:"shipmentID"`
	BuyerCRN       string    `json:"buyerCRN"`
	DrugName       string    `json:"drugName"`
	TransporterCRN string    `json:"transporterCRN"`
	UnitCount      int       `json:"unitCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
