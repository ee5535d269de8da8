package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stormy/internal/core/domain"
)

// handleGetCreator resolves a creator by the {id} path parameter and an
// optional ?platform= query. Unknown ids result in HTTP 404.
func (h *Handler) handleGetCreator(w http.ResponseWriter, r *http.Request) {
	ref := creatorRef(chi.URLParam(r, "id"), r.URL.Query().Get("platform"))
	c, err := h.svc.Creators.GetCreator(r.Context(), ref)
	if err != nil {
		h.writeDomainError(w, r, "get creator", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// creatorRef builds a reference; an unknown platform name is ignored.
func creatorRef(id, platform string) domain.CreatorRef {
	ref := domain.CreatorRef{ID: id}
	if p, ok := domain.ParsePlatform(platform); ok {
		ref.Platform = p
	}
	return ref
}
