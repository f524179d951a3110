package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/pharmaflow/pharmaflow/internal/assist"
	"github.com/pharmaflow/pharmaflow/internal/auth"
	"github.com/pharmaflow/pharmaflow/internal/inventory"
	"github.com/pharmaflow/pharmaflow/internal/manufacturing/batches"
	"github.com/pharmaflow/pharmaflow/internal/masterdata/products"
	"github.com/pharmaflow/pharmaflow/internal/observability"
	"github.com/pharmaflow/pharmaflow/internal/reports"
	"github.com/pharmaflow/pharmaflow/internal/sales/customers"
	"github.com/pharmaflow/pharmaflow/internal/sales/inquiries"
	"github.com/pharmaflow/pharmaflow/internal/sales/leads"
	"github.com/pharmaflow/pharmaflow/internal/sales/quotations"
	"github.com/pharmaflow/pharmaflow/internal/shared"
	"github.com/pharmaflow/pharmaflow/internal/users"
	"github.com/pharmaflow/pharmaflow/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager

	AuthHandler       *auth.Handler
	UsersHandler      *users.Handler
	CustomersHandler  *customers.Handler
	ProductsHandler   *products.Handler
	InquiriesHandler  *inquiries.Handler
	QuotationsHandler *quotations.Handler
	LeadsHandler      *leads.Handler
	BatchesHandler    *batches.Handler
	InventoryHandler  *inventory.Handler
	ReportsHandler    *reports.Handler
	AssistHandler     *assist.Handler
	JobHandler        *jobs.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with PharmaFlow defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		if params.AuthHandler != nil {
			params.AuthHandler.MountRoutes(r)
		}
		if params.UsersHandler != nil {
			params.UsersHandler.MountRoutes(r)
		}
		if params.CustomersHandler != nil {
			params.CustomersHandler.MountRoutes(r)
		}
		if params.ProductsHandler != nil {
			params.ProductsHandler.MountRoutes(r)
		}
		if params.InquiriesHandler != nil {
			params.InquiriesHandler.MountRoutes(r)
		}
		if params.QuotationsHandler != nil {
			params.QuotationsHandler.MountRoutes(r)
		}
		if params.LeadsHandler != nil {
			params.LeadsHandler.MountRoutes(r)
		}
		if params.BatchesHandler != nil {
			params.BatchesHandler.MountRoutes(r)
		}
		if params.InventoryHandler != nil {
			params.InventoryHandler.MountRoutes(r)
		}
		if params.ReportsHandler != nil {
			params.ReportsHandler.MountRoutes(r)
		}
		if params.AssistHandler != nil {
			params.AssistHandler.MountRoutes(r)
		}
		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
