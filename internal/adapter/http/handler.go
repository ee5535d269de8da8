package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"stormy/internal/config/configs"
	"stormy/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Search    port.SearchUseCase
	Creators  port.CreatorUseCase
	Campaigns port.CampaignUseCase
	Users     port.UserUseCase
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router behind request id, panic recovery, access logging and CORS
// middleware.
type Handler struct {
	svc       Services
	logger    *slog.Logger
	router    chi.Router
	startedAt time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, cfg configs.HTTP, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, startedAt: time.Now()}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(corsHandler(cfg.CORSOrigins))

	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.handleRegister)
		r.Post("/search/creators", h.handleSearch)
		r.Get("/creators/{id}", h.handleGetCreator)
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Post("/{id}/creators", h.handleAddCreator)
			r.Get("/{id}/stats", h.handleCampaignStats)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
