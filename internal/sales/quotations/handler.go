package quotations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
	"github.com/pharmaflow/pharmaflow/internal/platform/kv"
	"github.com/pharmaflow/pharmaflow/internal/shared"
	"github.com/pharmaflow/pharmaflow/internal/store"
)

// Handler exposes the quotation workflow over JSON, plus the plain-text
// document export.
type Handler struct {
	logger  *slog.Logger
	service *Service
	kvStore kv.Store
	now     shared.Clock
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service, kvStore kv.Store) *Handler {
	return &Handler{logger: logger, service: service, kvStore: kvStore, now: shared.SystemClock}
}

// MountRoutes attaches quotation routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/quotations", h.List)
	r.Post("/quotations", h.Create)
	r.Get("/quotations/{id}", h.Show)
	r.Post("/quotations/{id}/approve", h.Approve)
	r.Post("/quotations/{id}/status", h.UpdateStatus)
	r.Get("/quotations/{id}/export", h.Export)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list quotations", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	quotation, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create quotation", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, quotation)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	quotation, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, quotation)
}

// Export handles GET /quotations/{id}/export, returning the formal
// plain-text quote under the current company branding.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	quotation, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	branding, err := store.LoadBranding(r.Context(), h.kvStore)
	if err != nil {
		h.logger.Error("load branding", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+quotation.ID+`_PharmaFlow_Quote.txt"`)
	httpx.Text(w, http.StatusOK, ExportDocument(*quotation, branding, h.now()))
}
