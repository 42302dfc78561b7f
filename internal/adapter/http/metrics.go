package httpadapter

import (
	"net/http"
	"strconv"
)

// defaultMetricsLimit is applied when the limit query parameter is absent.
const defaultMetricsLimit = 10

// handleMetrics returns aggregate counts over stored readings and
// exposures. It accepts an optional `limit` query parameter bounding the
// recent-exposures list; when absent it defaults to 10. A limit that is
// not a positive integer results in HTTP 400. Internal errors produce
// HTTP 500. On success it writes the metrics JSON.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	limit := defaultMetricsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "limit: must be a positive integer"})
			return
		}
		limit = n
	}

	metrics, err := h.svc.QueryMetrics(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, metrics)
}
