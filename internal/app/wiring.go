package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordbot-backend/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/tatoeba"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/wikipedia"
	"github.com/heartmarshall/wordbot-backend/internal/auth"
	"github.com/heartmarshall/wordbot-backend/internal/config"
	"github.com/heartmarshall/wordbot-backend/internal/provider"
	"github.com/heartmarshall/wordbot-backend/internal/service/dictionary"
	"github.com/heartmarshall/wordbot-backend/internal/service/enrichment"
	"github.com/heartmarshall/wordbot-backend/internal/service/session"
	"github.com/heartmarshall/wordbot-backend/internal/transport/middleware"
	"github.com/heartmarshall/wordbot-backend/internal/transport/rest"
)

// NewSources builds one client per external source. Each client owns its
// own connection pool and rate limiter.
func NewSources(cfg config.SourcesConfig, logger *slog.Logger) enrichment.Sources {
	opts := func(baseURL string) provider.ClientOptions {
		return provider.ClientOptions{
			BaseURL:       baseURL,
			Timeout:       cfg.Timeout,
			RatePerSecond: cfg.RatePerSecond,
			UserAgent:     cfg.UserAgent,
		}
	}

	sources := enrichment.Sources{
		Definitions: freedict.NewProvider(opts(cfg.DictionaryURL), logger),
		Examples:    tatoeba.NewProvider(opts(cfg.ExamplesURL), logger),
		References:  wikipedia.NewProvider(opts(cfg.ReferenceURL), logger),
	}
	if cfg.TranslationEnabled {
		sources.Translations = translate.NewProvider(opts(cfg.TranslateURL), cfg.TranslationSource, cfg.TranslationTarget, logger)
	} else {
		logger.Warn("translation source disabled")
		sources.Translations = translate.NewStub()
	}
	return sources
}

// NewRetryPolicy maps the source settings to the orchestrator retry policy.
func NewRetryPolicy(cfg config.SourcesConfig) enrichment.RetryPolicy {
	return enrichment.RetryPolicy{
		Attempts: cfg.RetryAttempts,
		Delay:    cfg.RetryDelay,
		Budget:   cfg.LookupTimeout,
	}
}

// NewHandler wires repositories, services and transport into the root
// HTTP handler.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) http.Handler {
	words := lexicon.New(pool)
	resolver := enrichment.NewService(logger, words, NewSources(cfg.Sources, logger), NewRetryPolicy(cfg.Sources))
	pending := session.NewStore(cfg.Session.Size, cfg.Session.TTL)
	dict := dictionary.NewService(logger, resolver, words, pending)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.MaxClients, cfg.RateLimit.IdleTTL)

	api := http.NewServeMux()
	rest.NewWordHandler(dict, logger).Register(api)

	health := rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Pinger: pool})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("/v1/", limiter.Limit(cfg.RateLimit.RequestsPerMinute)(api))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(mux)
}
