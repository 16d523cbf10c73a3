package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Bidding  port.BiddingUseCase
	Auctions port.AuctionUseCase
	Learning port.LearningUseCase
	Campaign port.CampaignUseCase
}

// Handler is the inbound HTTP adapter. It triggers bidding runs, auction
// resolution and rental learning, and exposes campaign lifecycle and
// Prometheus metrics.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Metrics are
// served from gatherer on /metrics.
func NewHandler(svc Services, gatherer prometheus.Gatherer, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleCampaignDetail)
			r.Post("/run-bidding", h.handleRunBidding)
			r.Post("/pause", h.handlePause)
			r.Post("/resume", h.handleResume)
		})
		r.Post("/auctions/resolve", h.handleResolveAuction)
		r.Post("/rentals/{id}/complete", h.handleCompleteRental)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps a use case error to a status code. Internal errors are
// logged and reported without detail.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrCampaignCompleted):
		h.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrLedgerConflict), errors.Is(err, domain.ErrAuctionResolved):
		h.writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID parses the {id} URL parameter, answering 400 when it is not a UUID.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
