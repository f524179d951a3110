package inquiries

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
)

// Handler exposes the inquiry lifecycle over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes attaches inquiry routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/inquiries", h.List)
	r.Post("/inquiries", h.Create)
	r.Get("/inquiries/{id}", h.Show)
	r.Post("/inquiries/{id}/follow-ups", h.LogFollowUp)
	r.Post("/inquiries/{id}/status", h.UpdateStatus)
	r.Post("/inquiries/{id}/convert", h.Convert)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list inquiries", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, records)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inquiry)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInquiryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	inquiry, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create inquiry", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inquiry)
}

func (h *Handler) LogFollowUp(w http.ResponseWriter, r *http.Request) {
	var req LogFollowUpRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	inquiry, err := h.service.LogFollowUp(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.logger.Error("log follow-up", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inquiry)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	inquiry, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), Status(req.Status))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inquiry)
}

// Convert returns the prefill snapshot used to seed a quotation draft.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	prefill, err := h.service.ConvertToQuoteDraft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, prefill)
}
