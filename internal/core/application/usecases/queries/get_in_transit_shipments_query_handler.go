package queries

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// GetInTransitShipmentsQueryHandler retrieves in-transit shipments from the
// postgres ledger backend. Reads the stored records directly for optimal
// read performance; only the gorm-backed deployment runs the watch job, so
// this handler binds to the database rather than the ledger port.
type GetInTransitShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetInTransitShipmentsQueryHandler creates a handler for in-transit
// shipment queries.
func NewGetInTransitShipmentsQueryHandler(db *gorm.DB) GetInTransitShipmentsQueryHandler {
	return GetInTransitShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns the read models ordered by creation
// time, oldest consignment first.
func (h GetInTransitShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetInTransitShipmentsQuery,
) ([]GetInTransitShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetInTransitShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			key,
			value
		FROM ledger_records
		WHERE namespace = 'shipmentOrder'
		  AND value->>'status' = 'in-transit'
		ORDER BY value->>'createdAt'
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value []byte

		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}

		var record struct {
			ShipmentID     string    `json:"shipmentID"`
			BuyerCRN       string    `json:"buyerCRN"`
			DrugName       string    `json:"drugName"`
			TransporterCRN string    `json:"transporterCRN"`
			Assets         []string  `json:"assets"`
			CreatedAt      time.Time `json:"createdAt"`
		}
		if err := json.Unmarshal(value, &record); err != nil {
			return nil, err
		}

		shipments = append(shipments, GetInTransitShipmentsQueryResponse{
			ShipmentID:     record.ShipmentID,
			BuyerCRN:       record.BuyerCRN,
			DrugName:       record.DrugName,
			TransporterCRN: record.TransporterCRN,
			UnitCount:      len(record.Assets),
			CreatedAt:      record.CreatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
