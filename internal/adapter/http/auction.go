package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type resolveAuctionRequest struct {
	SlotID      uuid.UUID `json:"slotId"`
	AuctionDate time.Time `json:"auctionDate"`
}

// handleResolveAuction resolves the pending bids of one slot and date.
// Both fields are required; the date is an RFC3339 timestamp.
func (h *Handler) handleResolveAuction(w http.ResponseWriter, r *http.Request) {
	var req resolveAuctionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.SlotID == uuid.Nil || req.AuctionDate.IsZero() {
		h.writeError(w, http.StatusBadRequest, "slotId and auctionDate are required")
		return
	}

	res, err := h.svc.Auctions.ResolveAuction(r.Context(), req.SlotID, req.AuctionDate)
	if err != nil {
		h.writeFailure(w, r, "resolve auction", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
