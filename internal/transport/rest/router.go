package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ipa-transcriber/internal/config"
	"github.com/heartmarshall/ipa-transcriber/internal/transport/middleware"
)

// NewRouter assembles the HTTP routes and the middleware stack.
// Middleware order matters: the request ID must exist before anything logs,
// and recovery must wrap everything that can panic.
func NewRouter(
	log *slog.Logger,
	cfg *config.Config,
	transcribe *TranscribeHandler,
	health *HealthHandler,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Live)
	mux.HandleFunc("GET /readyz", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /transcribe", transcribe.Transcribe)
	mux.HandleFunc("GET /ipa", transcribe.Lookup)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimit),
	)

	return chain(mux)
}
