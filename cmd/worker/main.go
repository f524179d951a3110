package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/pharmaflow/pharmaflow/internal/app"
	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/masterdata/products"
	"github.com/pharmaflow/pharmaflow/internal/observability"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/sales/quotations"
	"github.com/pharmaflow/pharmaflow/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}

	store, closeStore, err := openStore(ctx, cfg, redisClient)
	if err != nil {
		logger.Error("open snapshot store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	customerRepo, err := customers.NewRepository(ctx, store)
	if err != nil {
		logger.Error("bootstrap customers", slog.Any("error", err))
		os.Exit(1)
	}
	productRepo, err := products.NewRepository(ctx, store)
	if err != nil {
		logger.Error("bootstrap products", slog.Any("error", err))
		os.Exit(1)
	}
	quotationRepo, err := quotations.NewRepository(ctx, store)
	if err != nil {
		logger.Error("bootstrap quotations", slog.Any("error", err))
		os.Exit(1)
	}
	inventoryRepo, err := inventory.NewRepository(ctx, store)
	if err != nil {
		logger.Error("bootstrap inventory", slog.Any("error", err))
		os.Exit(1)
	}

	lookup := func(ctx context.Context, productID string) (string, decimal.Decimal, error) {
		product, err := productRepo.Get(ctx, productID)
		if err != nil {
			return "", decimal.Zero, err
		}
		return product.Name, product.UnitPrice, nil
	}
	quotationService := quotations.NewService(quotationRepo, customerRepo, quotations.NewBuilder(lookup))
	inventoryService := inventory.NewService(inventoryRepo)

	client, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init jobs client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()
	expireJob := jobs.NewQuotationExpireJob(quotationService, logger, metrics)
	lowStockJob := jobs.NewLowStockScanJob(inventoryService, client, logger, metrics)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeQuotationExpire, Handler: expireJob.Handle},
			{Type: jobs.TaskTypeLowStockScan, Handler: lowStockJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 * * * *", Task: jobs.NewQuotationExpireTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "30 6 * * *", Task: jobs.NewLowStockScanTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}

// openStore selects the snapshot backend from configuration.
func openStore(ctx context.Context, cfg *app.Config, redisClient *redis.Client) (kv.Store, func(), error) {
	switch cfg.SnapshotBackend {
	case app.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		store, err := kv.NewPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	case app.BackendMemory:
		return kv.NewMemory(), func() {}, nil
	default:
		store, err := kv.NewRedis(ctx, redisClient)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
