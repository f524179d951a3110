package assist

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
)

// Handler exposes the assist endpoints. Generation is expensive upstream,
// so the whole group is rate limited per client IP.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// MountRoutes attaches assist routes under a per-IP rate limit.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/assist/follow-up-email", h.FollowUpEmail)
		r.Post("/assist/sales-trends", h.SalesTrends)
		r.Post("/assist/report-summary", h.ReportSummary)
	})
}

func (h *Handler) FollowUpEmail(w http.ResponseWriter, r *http.Request) {
	var req FollowUpEmailRequest
	if err := h.decode(w, r, &req); err != nil {
		return
	}
	text, err := h.service.FollowUpEmail(r.Context(), req.CustomerName, req.Context)
	h.respond(w, text, err)
}

func (h *Handler) SalesTrends(w http.ResponseWriter, r *http.Request) {
	var req SalesTrendsRequest
	if err := h.decode(w, r, &req); err != nil {
		return
	}
	text, err := h.service.SalesTrends(r.Context(), req.DataSummary)
	h.respond(w, text, err)
}

func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	var req ReportSummaryRequest
	if err := h.decode(w, r, &req); err != nil {
		return
	}
	text, err := h.service.ReportSummary(r.Context(), req.ReportType, req.Data)
	h.respond(w, text, err)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req any) error {
	if err := httpx.DecodeJSON(r, req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
		return err
	}
	return nil
}

func (h *Handler) respond(w http.ResponseWriter, text string, err error) {
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			httpx.Problem(w, http.StatusConflict, "Superseded", "a newer assist request replaced this one")
			return
		}
		h.logger.Error("assist request", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, GeneratedText{Text: text})
}
