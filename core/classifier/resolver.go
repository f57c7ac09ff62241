package classifier

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"capcost/core/benchmarks"
	"capcost/internal/errors"
	"capcost/internal/logging"
	"capcost/internal/metrics"
)

// Fallback reasons reported in logs and metrics
const (
	ReasonUnavailable = "unavailable"
	ReasonTimeout     = "timeout"
	ReasonMalformed   = "malformed"
	ReasonError       = "error"
)

// Resolver chooses between the primary classifier and the keyword fallback
type Resolver struct {
	catalog  *benchmarks.Catalog
	primary  Classifier
	fallback *KeywordClassifier
	cache    Cache
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// Option configures a Resolver
type Option func(*Resolver)

// WithCache sets the analysis cache
func WithCache(c Cache) Option {
	return func(r *Resolver) {
		if c != nil {
			r.cache = c
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// NewResolver creates a resolver. primary may be nil, in which case every
// description goes to the keyword fallback.
func NewResolver(catalog *benchmarks.Catalog, primary Classifier, opts ...Option) *Resolver {
	if catalog == nil {
		catalog = benchmarks.Default()
	}
	r := &Resolver{
		catalog:  catalog,
		primary:  primary,
		fallback: NewKeywordClassifier(catalog),
		cache:    NopCache{},
		log:      logging.Named("classifier"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Available reports whether the primary classifier can answer
func (r *Resolver) Available() bool {
	return r.primary != nil && r.primary.Available()
}

// Classify returns a validated primary analysis, or the keyword analysis
// when the primary is missing, fails or answers garbage. The only error is
// an empty description.
func (r *Resolver) Classify(ctx context.Context, description string) (*Analysis, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.Input("description is required")
	}

	if !r.Available() {
		return r.fallbackFor(description, ReasonUnavailable, nil), nil
	}

	key := CacheKey(description)
	if cached, ok := r.cache.Get(ctx, key); ok {
		r.metrics.CacheLookup(true)
		cached.Cached = true
		return cached, nil
	}
	r.metrics.CacheLookup(false)

	start := time.Now()
	a, err := r.primary.Classify(ctx, description)
	if err == nil && a == nil {
		err = ErrMalformedOutput
	}
	if err != nil {
		reason := failureReason(err)
		r.metrics.ObserveClassifier(reason, time.Since(start))
		return r.fallbackFor(description, reason, err), nil
	}
	r.metrics.ObserveClassifier("ok", time.Since(start))

	if Validate(a, r.catalog) {
		r.log.Info("classifier category substituted",
			zap.String("category", string(a.Category)),
			zap.Float64("confidence", a.Confidence))
	}
	r.cache.Set(ctx, key, a)
	return a, nil
}

func (r *Resolver) fallbackFor(description, reason string, cause error) *Analysis {
	fields := []zap.Field{zap.String("reason", reason)}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	r.log.Warn("using keyword classifier", fields...)
	r.metrics.ClassifierFallback(reason)
	return r.fallback.Analyze(description)
}

func failureReason(err error) string {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case stderrors.Is(err, ErrMalformedOutput):
		return ReasonMalformed
	default:
		return ReasonError
	}
}

// Insights asks the primary for advice when it can give some and falls
// back to the deterministic insights otherwise. It never fails.
func (r *Resolver) Insights(ctx context.Context, description string, category benchmarks.Category, mau int64) *Insights {
	if adv, ok := r.primary.(Advisor); ok && r.Available() {
		in, err := adv.Advise(ctx, description, category, mau)
		if err == nil && in != nil {
			return in
		}
		r.log.Warn("using fallback insights", zap.Error(err))
	}
	return FallbackInsights(r.catalog, category)
}
