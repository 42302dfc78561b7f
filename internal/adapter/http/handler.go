package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"plate-ads/internal/core/domain"
	"plate-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a use case to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.ReadingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// use case implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.ReadingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/readings", h.handleSubmitReading)
		r.Get("/metrics", h.handleMetrics)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps a core error onto the wire: validation failures are
// client errors, duplicate reading ids are conflicts, everything else is a
// server-side failure with the detail kept out of the response.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Error()})
	case errors.Is(err, port.ErrDuplicateReading):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "Duplicate reading_id"})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Internal server error"})
	}
}
