package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LateOrderJob periodically re-evaluates urgency flags for every restaurant
// with active orders and logs the ones that are late or coming due. The
// flags themselves are never persisted; this job exists so that an unwatched
// dashboard still leaves an operational trail.
type LateOrderJob struct {
	activeRestaurantsHandler queries.GetActiveRestaurantsQueryHandler
	activeOrdersHandler      queries.GetActiveOrdersQueryHandler
	cron                     *cron.Cron
	logger                   *slog.Logger
}

// NewLateOrderJob creates the urgency watchdog job.
func NewLateOrderJob(
	activeRestaurantsHandler queries.GetActiveRestaurantsQueryHandler,
	activeOrdersHandler queries.GetActiveOrdersQueryHandler,
	logger *slog.Logger,
) *LateOrderJob {
	return &LateOrderJob{
		activeRestaurantsHandler: activeRestaurantsHandler,
		activeOrdersHandler:      activeOrdersHandler,
		cron:                     cron.New(cron.WithSeconds()),
		logger:                   logger.With("component", "late_order_job"),
	}
}

// Start begins the watchdog, scanning every 30 seconds.
func (j *LateOrderJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late order job started (scanning every 30 seconds)")
	return nil
}

// Stop stops the watchdog.
func (j *LateOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Late order job stopped")
}

func (j *LateOrderJob) scan() {
	ctx := context.Background()

	restaurantIDs, err := j.activeRestaurantsHandler.Handle(ctx, queries.NewGetActiveRestaurantsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Late order scan failed to list restaurants", "error", err)
		return
	}

	for _, restaurantID := range restaurantIDs {
		query, err := queries.NewGetActiveOrdersQuery(restaurantID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Late order scan skipped restaurant",
				"restaurant_id", restaurantID.String(), "error", err)
			continue
		}

		activeOrders, err := j.activeOrdersHandler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Late order scan failed",
				"restaurant_id", restaurantID.String(), "error", err)
			continue
		}

		for _, activeOrder := range activeOrders {
			switch {
			case activeOrder.Late:
				j.logger.WarnContext(ctx, "Order is late",
					"restaurant_id", restaurantID.String(),
					"order_id", activeOrder.ID.String(),
					"status", activeOrder.Status,
					"placed_at", activeOrder.PlacedAt)
			case activeOrder.Soon:
				j.logger.InfoContext(ctx, "Order is coming due",
					"restaurant_id", restaurantID.String(),
					"order_id", activeOrder.ID.String(),
					"status", activeOrder.Status)
			}
		}
	}
}
