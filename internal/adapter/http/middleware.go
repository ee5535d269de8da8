package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

const corsMaxAge = 300

// corsHandler allows the configured origins to call the API; "*" or an
// empty list allows any. Preflight requests are answered without reaching
// the router.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         corsMaxAge,
	})
}

// accessLog writes one concise record per request through the service
// logger, so it follows LOG_LEVEL and LOG_FORMAT.
func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.Handler(&httplog.Logger{
		Logger:  logger,
		Options: httplog.Options{Concise: true},
	})
}
