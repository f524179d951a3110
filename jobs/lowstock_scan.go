package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/observability"
)

// procurementInbox receives low-stock reminder emails.
const procurementInbox = "procurement@pharmaflow.com"

// LowStockScanJob scans inventory for items below their reorder threshold
// and enqueues one reminder email per scan with the affected items.
type LowStockScanJob struct {
	service *inventory.Service
	client  *Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLowStockScanJob constructs the job. client may be nil in tests; the
// scan then only logs.
func NewLowStockScanJob(service *inventory.Service, client *Client, logger *slog.Logger, metrics *observability.Metrics) *LowStockScanJob {
	return &LowStockScanJob{service: service, client: client, logger: logger, metrics: metrics}
}

// Handle processes TaskTypeLowStockScan tasks.
func (j *LowStockScanJob) Handle(ctx context.Context, _ *asynq.Task) error {
	low, err := j.service.LowStock(ctx)
	if err != nil {
		j.metrics.ObserveJob(TaskTypeLowStockScan, "error")
		j.logger.Error("low stock scan", slog.Any("error", err))
		return err
	}
	j.metrics.ObserveJob(TaskTypeLowStockScan, "ok")
	if len(low) == 0 {
		return nil
	}

	body := "The following items are below their reorder threshold:\n"
	for _, item := range low {
		body += fmt.Sprintf("- %s (%s): %d %s, threshold %d\n", item.Name, item.ID, item.Quantity, item.Unit, item.MinThreshold)
	}
	j.logger.Warn("low stock detected", slog.Int("items", len(low)))

	if j.client == nil {
		return nil
	}
	_, err = j.client.EnqueueSendEmail(ctx, SendEmailPayload{
		To:      procurementInbox,
		Subject: fmt.Sprintf("Low stock alert: %d item(s)", len(low)),
		Body:    body,
	})
	if err != nil {
		j.logger.Error("enqueue low stock reminder", slog.Any("error", err))
		return err
	}
	return nil
}
