package jobs

import (
	"context"
	"errors"
	"log/slog"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ShipmentDispatchJob manages the scheduled dispatch of approved orders.
// Runs every ten seconds to hand approved orders over to the carrier.
type ShipmentDispatchJob struct {
	shipHandler    commands.ShipOrderCommandHandler
	pendingHandler queries.GetAwaitingShipmentOrdersQueryHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewShipmentDispatchJob creates a new job for dispatching approved orders.
// Uses the awaiting-shipment query to find work and ShipOrderCommandHandler
// to dispatch each order.
func NewShipmentDispatchJob(
	shipHandler commands.ShipOrderCommandHandler,
	pendingHandler queries.GetAwaitingShipmentOrdersQueryHandler,
	logger *slog.Logger,
) *ShipmentDispatchJob {
	return &ShipmentDispatchJob{
		shipHandler:    shipHandler,
		pendingHandler: pendingHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "shipment_dispatch_job"),
	}
}

// Start begins the shipment dispatch job to run every ten seconds.
func (j *ShipmentDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		pending, err := j.pendingHandler.Handle(ctx, queries.NewGetAwaitingShipmentOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to query orders awaiting shipment", "error", err)
			return
		}

		for _, p := range pending {
			cmd, cmdErr := commands.NewShipOrderCommand(p.ID)
			if cmdErr != nil {
				j.logger.ErrorContext(ctx, "Failed to build ship command", "orderID", p.ID, "error", cmdErr)
				continue
			}

			if handleErr := j.shipHandler.Handle(ctx, cmd); handleErr != nil {
				// An order shipped or deleted between the query and the
				// dispatch is an expected race, not a system issue.
				if order.IsTransitionError(handleErr) || errors.Is(handleErr, errs.ErrObjectNotFound) {
					continue
				}
				j.logger.ErrorContext(ctx, "Shipment dispatch failed", "orderID", p.ID, "error", handleErr)
				continue
			}

			j.logger.InfoContext(ctx, "Order dispatched to carrier", "orderID", p.ID)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment dispatch job started (running every ten seconds)")
	return nil
}

// Stop stops the shipment dispatch job.
func (j *ShipmentDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment dispatch job stopped")
}
