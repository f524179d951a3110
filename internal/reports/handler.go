package reports

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/shared"
)

// Handler exposes dashboard tiles and report exports.
type Handler struct {
	logger  *slog.Logger
	service *Service
	now     shared.Clock
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, now: shared.SystemClock}
}

// MountRoutes attaches reporting routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/reports/dashboard", h.Dashboard)
	r.Get("/reports/{type}", h.Show)
	r.Get("/reports/{type}/export", h.Export)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("build dashboard", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dashboard)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	reportType := chi.URLParam(r, "type")
	title, lines, err := h.service.ReportData(r.Context(), reportType)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"title": title, "data": lines})
}

// Export renders the plain-text report. The AI insight is best-effort: an
// assist failure degrades to the placeholder, never a failed export.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	reportType := chi.URLParam(r, "type")
	title, lines, err := h.service.ReportData(r.Context(), reportType)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	insight, err := h.service.Insight(r.Context(), reportType)
	if err != nil {
		h.logger.Warn("report insight unavailable", slog.String("report", reportType), slog.Any("error", err))
		insight = ""
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+reportType+`_report.txt"`)
	httpx.Text(w, http.StatusOK, ExportReport(title, lines, insight, h.now()))
}
