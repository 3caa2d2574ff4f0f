package api

import (
	"log/slog"
	"net/http"

	"github.com/kyc-tools/companymatch/internal/adapter/api/handler"
	"github.com/kyc-tools/companymatch/internal/adapter/api/middleware"
	"github.com/kyc-tools/companymatch/internal/pkg/config"
)

// NewRouter creates and configures the main HTTP router for the resolve
// service.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	resolver handler.Resolver,
) http.Handler {
	mux := http.NewServeMux()

	resolveHandler := handler.NewResolveHandler(resolver, logger, cfg.MaxBodySize)

	rateLimit := middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)

	mux.Handle("POST /v1/resolve", rateLimit(resolveHandler))

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return middleware.RequestID(middleware.Logging(logger)(mux))
}
