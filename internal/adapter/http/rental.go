package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

// handleCompleteRental learns from a finished rental. An optional JSON
// body carries measured traffic, which is stored first. 204 means there
// was nothing to learn: the rental is unknown or was already recorded.
func (h *Handler) handleCompleteRental(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	// m stays nil for an empty body; an all-zero body is a real measurement.
	var m *domain.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if m != nil && (m.TrafficGenerated < 0 || m.Conversions < 0 || m.Impressions < 0 ||
		m.Clicks < 0 || m.KnowledgeGained < 0) {
		h.writeError(w, http.StatusBadRequest, "measurements must not be negative")
		return
	}

	var (
		res *port.LearningResult
		err error
	)
	if m == nil {
		res, err = h.svc.Learning.RecordRentalCompletion(r.Context(), id)
	} else {
		res, err = h.svc.Learning.CompleteRental(r.Context(), id, *m)
	}
	if err != nil {
		h.writeFailure(w, r, "complete rental", err)
		return
	}
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
