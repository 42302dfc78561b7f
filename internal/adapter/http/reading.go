package httpadapter

import (
	"encoding/json"
	"net/http"

	"plate-ads/internal/core/domain"
)

// handleSubmitReading ingests one vehicle-detection event. The request body
// is decoded into a domain.ReadingInput and handed to the use case, which
// validates it, matches it against the campaign catalog and records it. On
// success it returns the submit result, including ad_served null when no
// campaign applied. Malformed bodies and validation failures produce HTTP
// 400, duplicate reading ids HTTP 409, internal failures HTTP 500.
func (h *Handler) handleSubmitReading(w http.ResponseWriter, r *http.Request) {
	var in domain.ReadingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON body"})
		return
	}
	result, err := h.svc.SubmitReading(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
