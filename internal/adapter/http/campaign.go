package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stormy/internal/core/domain"
	"stormy/internal/core/port"
)

// createCampaignRequest decodes leniently: targetCriteria is kept as sent
// and mistyped scalars fall back to their zero value.
type createCampaignRequest struct {
	Name           looseString           `json:"name"`
	Description    looseString           `json:"description"`
	Budget         looseFloat            `json:"budget"`
	TargetCriteria domain.TargetCriteria `json:"targetCriteria"`
}

// addCreatorRequest names the creator to add. Platform is optional and
// picks between creators sharing a native id.
type addCreatorRequest struct {
	CreatorID looseString `json:"creatorId"`
	Platform  looseString `json:"platform"`
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Name:           string(req.Name),
		Description:    string(req.Description),
		Budget:         float64(req.Budget),
		TargetCriteria: req.TargetCriteria,
	})
	if err != nil {
		h.writeDomainError(w, r, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeDomainError(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleAddCreator adds the creator named in the body to the {id} campaign
// and returns the updated campaign. Re-adding a member is a no-op.
func (h *Handler) handleAddCreator(w http.ResponseWriter, r *http.Request) {
	var req addCreatorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	ref := creatorRef(string(req.CreatorID), string(req.Platform))
	c, err := h.svc.Campaigns.AddCreator(r.Context(), chi.URLParam(r, "id"), ref)
	if err != nil {
		h.writeDomainError(w, r, "add creator", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
