package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pharmaflow/pharmaflow/internal/app"
	"github.com/pharmaflow/pharmaflow/internal/assist"
	"github.com/pharmaflow/pharmaflow/internal/auth"
	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/manufacturing/batches"
	"github.com/pharmaflow/pharmaflow/internal/masterdata/products"
	"github.com/pharmaflow/pharmaflow/internal/observability"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/reports"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
	"github.com/pharmaflow/pharmaflow/internal/sales/leads"
	"github.com/pharmaflow/pharmaflow/internal/sales/quotations"
	"github.com/pharmaflow/pharmaflow/internal/shared"
	"github.com/pharmaflow/pharmaflow/internal/users"
	"github.com/pharmaflow/pharmaflow/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	store, closeStore, err := openStore(ctx, cfg, redisClient)
	if err != nil {
		logger.Error("open snapshot store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	sessionManager := shared.NewSessionManager(redisClient, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())

	var (
		customerRepo  customers.Repository
		productRepo   products.Repository
		inquiryRepo   inquiries.Repository
		quotationRepo quotations.Repository
		leadRepo      leads.Repository
		batchRepo     batches.Repository
		inventoryRepo inventory.Repository
		userRepo      users.Repository
	)

	// Repositories seed themselves on first run, so bootstrap them
	// concurrently before any service wiring.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { customerRepo, err = customers.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { productRepo, err = products.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { inquiryRepo, err = inquiries.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { quotationRepo, err = quotations.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { leadRepo, err = leads.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { batchRepo, err = batches.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { inventoryRepo, err = inventory.NewRepository(gctx, store); return err })
	g.Go(func() (err error) { userRepo, err = users.NewRepository(gctx, store); return err })
	if err := g.Wait(); err != nil {
		logger.Error("bootstrap repositories", slog.Any("error", err))
		os.Exit(1)
	}

	lookup := func(ctx context.Context, productID string) (string, decimal.Decimal, error) {
		product, err := productRepo.Get(ctx, productID)
		if err != nil {
			return "", decimal.Zero, err
		}
		return product.Name, product.UnitPrice, nil
	}
	resolve := func(ctx context.Context, productID string) (string, error) {
		product, err := productRepo.Get(ctx, productID)
		if err != nil {
			return "", err
		}
		return product.Name, nil
	}

	assistService := assist.NewService(logger, assist.NewClient(cfg.AssistURL, cfg.AssistAPIKey))
	insight := reports.InsightFunc(assistService.ReportSummary)
	if !cfg.AssistEnabled() {
		insight = nil
	}

	customerService := customers.NewService(customerRepo)
	productService := products.NewService(productRepo)
	inquiryService := inquiries.NewService(inquiryRepo, customerRepo)
	quotationService := quotations.NewService(quotationRepo, customerRepo, quotations.NewBuilder(lookup))
	leadService := leads.NewService(leadRepo)
	batchService := batches.NewService(batchRepo, resolve)
	inventoryService := inventory.NewService(inventoryRepo)
	userService := users.NewService(userRepo)
	authService := auth.NewService(userRepo, store)
	reportService := reports.NewService(customerRepo, productRepo, inquiryRepo, quotationRepo, leadRepo, inventoryRepo, insight)

	metrics := observability.NewMetrics()

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		AuthHandler:       auth.NewHandler(logger, authService),
		UsersHandler:      users.NewHandler(logger, userService),
		CustomersHandler:  customers.NewHandler(logger, customerService),
		ProductsHandler:   products.NewHandler(logger, productService),
		InquiriesHandler:  inquiries.NewHandler(logger, inquiryService),
		QuotationsHandler: quotations.NewHandler(logger, quotationService, store),
		LeadsHandler:      leads.NewHandler(logger, leadService),
		BatchesHandler:    batches.NewHandler(logger, batchService),
		InventoryHandler:  inventory.NewHandler(logger, inventoryService),
		ReportsHandler:    reports.NewHandler(logger, reportService),
		AssistHandler:     assist.NewHandler(logger, assistService),
		JobHandler:        jobs.NewHandler(inspector, logger),
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
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
