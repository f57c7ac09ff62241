// Package app builds a ready estimation engine from configuration.
// The server and the CLI share it so both classify the same way.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"capcost/core/benchmarks"
	"capcost/core/classifier"
	"capcost/core/engine"
	"capcost/internal/config"
	"capcost/internal/logging"
	"capcost/internal/metrics"
)

const redisPingTimeout = 2 * time.Second

// Options overrides parts of the wiring
type Options struct {
	// Cache replaces the configured classification cache
	Cache classifier.Cache

	// Metrics receives classifier and engine collectors; nil disables them
	Metrics *metrics.Metrics
}

// NewEngine wires the classifier, its cache and the engine. The returned
// cleanup releases external connections and is never nil.
func NewEngine(ctx context.Context, cfg *config.Config, opts Options) (*engine.Engine, func(), error) {
	log := logging.Named("app")
	catalog := benchmarks.Default()
	cleanup := func() {}

	var primary classifier.Classifier
	if cfg.Classifier.Provider == "gemini" && cfg.Classifier.APIKey != "" {
		g, err := classifier.NewGemini(ctx, classifier.GeminiConfig{
			APIKey:     cfg.Classifier.APIKey,
			Model:      cfg.Classifier.Model,
			Timeout:    time.Duration(cfg.Classifier.TimeoutSeconds) * time.Second,
			MaxRetries: cfg.Classifier.MaxRetries,
		}, catalog)
		if err != nil {
			return nil, cleanup, err
		}
		primary = g
		log.Info("gemini classifier enabled", zap.String("model", cfg.Classifier.Model))
	} else {
		log.Info("external classifier disabled, using keyword analysis",
			zap.String("provider", cfg.Classifier.Provider))
	}

	cache := opts.Cache
	if cache == nil {
		cache, cleanup = configuredCache(ctx, cfg.Cache, log)
	}

	resolver := classifier.NewResolver(catalog, primary,
		classifier.WithCache(cache),
		classifier.WithMetrics(opts.Metrics),
		classifier.WithLogger(logging.Named("classifier")),
	)
	eng := engine.NewEngine(catalog, resolver, engine.EngineConfig{
		GrowthRate: cfg.Estimate.GrowthRate,
		Metrics:    opts.Metrics,
	})
	return eng, cleanup, nil
}

// configuredCache dials Redis when an address is set. An unreachable Redis
// degrades to an in-process cache.
func configuredCache(ctx context.Context, cfg config.CacheConfig, log *zap.Logger) (classifier.Cache, func()) {
	if cfg.RedisAddr == "" {
		return classifier.NewMemoryCache(), func() {}
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	rc := classifier.DialRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, ttl)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		log.Warn("redis cache unavailable, using memory cache",
			zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		return classifier.NewMemoryCache(), func() {}
	}

	log.Info("redis cache enabled", zap.String("addr", cfg.RedisAddr))
	return rc, func() { _ = rc.Close() }
}
