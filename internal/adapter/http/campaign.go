package httpadapter

import (
	"net/http"
)

// handleRunBidding triggers one bidding run for the campaign. Skipped runs
// are reported with 200 and a reason.
func (h *Handler) handleRunBidding(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Bidding.RunBidding(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "run bidding", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaign.PauseCampaign(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "pause campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleResume reactivates a paused campaign. Completed campaigns answer
// 409. Resuming does not start a bidding run.
func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Campaign.ResumeCampaign(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "resume campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.Campaign.GetCampaignDetail(r.Context(), id)
	if err != nil {
		h.writeFailure(w, r, "campaign detail", err)
		return
	}
	h.writeJSON(w, http.StatusOK, detail)
}
