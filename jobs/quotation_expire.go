package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/pharmaflow/pharmaflow/internal/observability"
	"github.com/pharmaflow/pharmaflow/internal/sales/quotations"
)

// QuotationExpireJob moves Draft and Sent quotations past their expiry date
// to Expired.
type QuotationExpireJob struct {
	service *quotations.Service
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewQuotationExpireJob constructs the job.
func NewQuotationExpireJob(service *quotations.Service, logger *slog.Logger, metrics *observability.Metrics) *QuotationExpireJob {
	return &QuotationExpireJob{service: service, logger: logger, metrics: metrics}
}

// Handle processes TaskTypeQuotationExpire tasks.
func (j *QuotationExpireJob) Handle(ctx context.Context, _ *asynq.Task) error {
	expired, err := j.service.ExpireOverdue(ctx, time.Now().UTC())
	if err != nil {
		j.metrics.ObserveJob(TaskTypeQuotationExpire, "error")
		j.logger.Error("quotation expiry sweep", slog.Any("error", err))
		return err
	}
	j.metrics.ObserveJob(TaskTypeQuotationExpire, "ok")
	if len(expired) > 0 {
		j.logger.Info("quotations expired", slog.Int("count", len(expired)), slog.Any("ids", expired))
	}
	return nil
}
