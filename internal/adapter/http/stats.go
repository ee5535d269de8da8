package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCampaignStats returns reach, engagement and budget figures for the
// {id} campaign. Unknown campaigns result in HTTP 404.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Campaigns.GetStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeDomainError(w, r, "campaign stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
