package jobs

import (
	"context"
	"log/slog"
	"time"

	"pharmaledger/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ShipmentWatchJob periodically scans the ledger for consignments that are
// still in transit and flags the ones that have been on the road longer
// than the stale threshold. Delivery confirmation only ever arrives through
// the transporter, so a stuck consignment is invisible without this sweep.
type ShipmentWatchJob struct {
	handler        queries.GetInTransitShipmentsQueryHandler
	cron           *cron.Cron
	logger         *slog.Logger
	staleThreshold time.Duration
	now            func() time.Time
}

// NewShipmentWatchJob creates a job that sweeps in-transit shipments every
// minute. Consignments older than staleThreshold are logged as warnings.
func NewShipmentWatchJob(
	handler queries.GetInTransitShipmentsQueryHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *ShipmentWatchJob {
	return &ShipmentWatchJob{
		handler:        handler,
		cron:           cron.New(),
		logger:         logger.With("component", "shipment_watch_job"),
		staleThreshold: staleThreshold,
		now:            time.Now,
	}
}

// Start begins the shipment watch job to run every minute.
func (j *ShipmentWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment watch job started (running every minute)",
		"staleThreshold", j.staleThreshold)
	return nil
}

// Stop stops the shipment watch job.
func (j *ShipmentWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment watch job stopped")
}

func (j *ShipmentWatchJob) sweep() {
	ctx := context.Background()
	query := queries.NewGetInTransitShipmentsQuery()

	shipments, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Shipment watch sweep failed", "error", err)
		return
	}

	cutoff := j.now().Add(-j.staleThreshold)
	stale := 0

	for _, consignment := range shipments {
		if consignment.CreatedAt.After(cutoff) {
			continue
		}

		stale++
		j.logger.WarnContext(ctx, "Consignment in transit past stale threshold",
			"shipmentID", consignment.ShipmentID,
			"buyerCRN", consignment.BuyerCRN,
			"drugName", consignment.DrugName,
			"transporterCRN", consignment.TransporterCRN,
			"unitCount", consignment.UnitCount,
			"createdAt", consignment.CreatedAt)
	}

	j.logger.DebugContext(ctx, "Shipment watch sweep completed",
		"inTransit", len(shipments), "stale", stale)
}
