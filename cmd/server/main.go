package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/kyc-tools/companymatch/internal/adapter/api"
	"github.com/kyc-tools/companymatch/internal/adapter/metrics"
	"github.com/kyc-tools/companymatch/internal/adapter/repository/postgres"
	redisrepo "github.com/kyc-tools/companymatch/internal/adapter/repository/redis"
	"github.com/kyc-tools/companymatch/internal/adapter/source"
	"github.com/kyc-tools/companymatch/internal/adapter/suffixlist"
	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/matcher"
	"github.com/kyc-tools/companymatch/internal/pkg/config"
	"github.com/kyc-tools/companymatch/internal/pkg/logger"
	"github.com/kyc-tools/companymatch/internal/usecase"

	_ "github.com/lib/pq" // postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	m := metrics.NewMatchMetrics()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Reference Data Sources ---
	var registrySource domain.RegistrySource
	var creditSource domain.CreditSource
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("failed to ping postgres", "error", err)
			os.Exit(1)
		}
		repo := postgres.NewReferenceRepository(db, log)
		registrySource, creditSource = repo, repo
		log.Info("using postgres reference source")
	} else {
		registrySource = source.NewRegistryFile(cfg.RegistryFile)
		creditSource = source.NewCreditFile(cfg.CreditFile)
		log.Info("using file reference sources", "registry", cfg.RegistryFile, "credit", cfg.CreditFile)
	}

	// --- Initial Index Build ---
	rebuildUseCase := usecase.NewRebuildIndexUseCase(registrySource, creditSource, m, log)
	idx, err := rebuildUseCase.Rebuild(ctx)
	if err != nil {
		log.Error("failed to build reference index", "error", err)
		os.Exit(1)
	}

	// --- Optional Strict Domain Validation ---
	var findOpts []matcher.Option
	if cfg.StrictDomainCheck {
		fetcher := suffixlist.NewFetcher(cfg.SuffixListURL, cfg.SuffixListTimeout, log)
		findOpts = append(findOpts, matcher.StrictDomainValidation(fetcher.Resolve(ctx)))
	}

	// --- Optional Redis Result Cache ---
	var cache domain.ResultCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("could not connect to redis, proceeding without result cache", "error", err)
		} else {
			cache = redisrepo.NewResultCache(redisClient, cfg.CacheTTL, log)
			log.Info("result cache enabled", "ttl", cfg.CacheTTL)
		}
	}

	resolveUseCase := usecase.NewResolveUseCase(idx, cache, m, log, findOpts...)

	// --- Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())
	adminMux.HandleFunc("POST /reload", func(w http.ResponseWriter, r *http.Request) {
		fresh, err := rebuildUseCase.Rebuild(r.Context())
		if err != nil {
			log.Error("index reload failed, keeping previous index", "error", err)
			http.Error(w, "Reload failed", http.StatusInternalServerError)
			return
		}
		resolveUseCase.SwapIndex(fresh)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	go func() {
		log.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Periodic Reload ---
	if cfg.ReloadInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.ReloadInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					fresh, err := rebuildUseCase.Rebuild(ctx)
					if err != nil {
						log.Error("periodic index reload failed, keeping previous index", "error", err)
						continue
					}
					resolveUseCase.SwapIndex(fresh)
				}
			}
		}()
	}

	// --- Resolve Server ---
	router := api.NewRouter(cfg, log, resolveUseCase)
	resolveServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		log.Info("starting resolve server", "addr", resolveServer.Addr)
		if err := resolveServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("resolve server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	log.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		log.Error("admin server shutdown failed", "error", err)
	}
	if err := resolveServer.Shutdown(shutdownCtx); err != nil {
		log.Error("resolve server shutdown failed", "error", err)
	}

	log.Info("servers shut down gracefully")
}
