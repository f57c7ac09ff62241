// Package engine provides the API-primary estimation engine.
// CLI and HTTP are thin wrappers around this engine.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"capcost/core/benchmarks"
	"capcost/core/classifier"
	"capcost/core/confidence"
	"capcost/core/estimate"
	"capcost/core/pricing"
	"capcost/internal/errors"
	"capcost/internal/metrics"
)

// Media size assumed for described products
const (
	describedMediaSizeMB = 2.0
	videoMediaSizeMB     = 50.0
)

// Estimate paths reported in metrics
const (
	PathDirect   = "direct"
	PathDescribe = "describe"
)

// Engine is the primary API for capacity and cost estimation.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog   *benchmarks.Catalog
	projector *estimate.Projector
	pricing   *pricing.Engine
	resolver  *classifier.Resolver

	config EngineConfig
}

// EngineConfig configures the estimation engine
type EngineConfig struct {
	// GrowthRate is the monthly MAU growth for timelines (0 = default)
	GrowthRate float64

	// Metrics receives estimate counters; nil disables them
	Metrics *metrics.Metrics
}

// NewEngine creates an engine. A nil catalog selects the built-in tables
// and a nil resolver classifies with keywords only.
func NewEngine(catalog *benchmarks.Catalog, resolver *classifier.Resolver, config EngineConfig) *Engine {
	if catalog == nil {
		catalog = benchmarks.Default()
	}
	if resolver == nil {
		resolver = classifier.NewResolver(catalog, nil)
	}
	if config.GrowthRate <= 0 {
		config.GrowthRate = estimate.DefaultGrowthRate
	}
	return &Engine{
		catalog:   catalog,
		projector: estimate.NewProjector(catalog),
		pricing:   pricing.NewEngine(),
		resolver:  resolver,
		config:    config,
	}
}

// EstimateDirect projects and prices explicit input. Unknown feature ids
// are ignored.
func (e *Engine) EstimateDirect(ctx context.Context, req DirectRequest) (*DirectResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in := req.Input
	in.Features = e.catalog.FilterFeatures(in.Features)

	est, priced, err := e.projectAndPrice(in)
	if err != nil {
		return nil, err
	}

	resp := &DirectResponse{Estimate: est, Pricing: priced}
	if req.Timeline {
		if resp.Timeline, err = e.timeline(in, priced); err != nil {
			return nil, err
		}
	}

	e.config.Metrics.EstimateProduced(string(est.Category), PathDirect)
	return resp, nil
}

// Estimate classifies a description, then projects and prices it at the
// month 6 target
func (e *Engine) Estimate(ctx context.Context, req DescriptionRequest) (*DescriptionResponse, error) {
	if err := e.validateDescription(req); err != nil {
		return nil, err
	}

	analysis, err := e.resolver.Classify(ctx, req.Description)
	if err != nil {
		return nil, err
	}

	in := inputFromAnalysis(analysis, req)
	est, priced, err := e.projectAndPrice(in)
	if err != nil {
		return nil, err
	}

	tl, err := e.timeline(in, priced)
	if err != nil {
		return nil, err
	}

	conf := confidence.AggregateConfidence(analysis.Confidence, est.Confidence)
	resp := &DescriptionResponse{
		Analysis:        analysis,
		Estimate:        est,
		Pricing:         priced,
		Insights:        e.resolver.Insights(ctx, req.Description, analysis.Category, req.TargetUsers.Month6),
		Timeline:        tl,
		ReferenceMatch:  e.ReferenceMatch(req.ReferenceApps),
		Confidence:      conf,
		ConfidenceLevel: confidence.ConfidenceLevel(conf),
	}

	e.config.Metrics.EstimateProduced(string(est.Category), PathDescribe)
	return resp, nil
}

func (e *Engine) validateDescription(req DescriptionRequest) error {
	if strings.TrimSpace(req.Description) == "" {
		return errors.Input("description is required")
	}
	if req.TargetUsers.Month6 <= 0 {
		return errors.Inputf("month 6 target must be positive, got %d", req.TargetUsers.Month6)
	}
	if req.TargetUsers.Month12 < 0 {
		return errors.Inputf("month 12 target must not be negative, got %d", req.TargetUsers.Month12)
	}
	if req.Region != "" && !e.catalog.IsRegion(req.Region) {
		return errors.Inputf("unknown region %q", req.Region)
	}
	return nil
}

// inputFromAnalysis derives projection input from a classification
func inputFromAnalysis(a *classifier.Analysis, req DescriptionRequest) estimate.Input {
	mediaSize := describedMediaSizeMB
	if a.HasFeature("video-streaming") {
		mediaSize = videoMediaSizeMB
	}
	return estimate.Input{
		Category:       a.Category,
		TargetMAU:      req.TargetUsers.Month6,
		Features:       a.Features(),
		HasMediaUpload: a.HasFeature("media-upload"),
		AvgMediaSizeMB: mediaSize,
		HasRealtime:    a.HasFeature("real-time") || a.HasFeature("chat") || a.HasFeature("collaboration"),
		Region:         req.Region,
	}
}

func (e *Engine) projectAndPrice(in estimate.Input) (*estimate.Result, *pricing.Result, error) {
	est, err := e.projector.Project(in)
	if err != nil {
		return nil, nil, err
	}
	priced := e.pricing.Price(est)
	e.pricing.PriceScenarios(est)
	return est, priced, nil
}

// timeline projects the growth horizons. Month 1 reuses the pricing of in.
func (e *Engine) timeline(in estimate.Input, month1 *pricing.Result) (*Timeline, error) {
	tl, err := e.projector.ProjectTimeline(in, e.config.GrowthRate)
	if err != nil {
		return nil, err
	}
	return &Timeline{
		GrowthRate: tl.GrowthRate,
		Month1:     point(tl.Month1, month1),
		Month6:     point(tl.Month6, e.pricing.Price(tl.Month6)),
		Month12:    point(tl.Month12, e.pricing.Price(tl.Month12)),
	}, nil
}

func point(est *estimate.Result, priced *pricing.Result) TimelinePoint {
	cost := decimal.Zero
	if cheapest, ok := priced.Cheapest(); ok {
		cost = cheapest.MonthlyTotal
	}
	return TimelinePoint{
		MAU:               est.Users.MAU,
		RequestsPerSecond: est.Requests.AvgPerSecond,
		StorageGB:         est.Storage.TotalGB,
		EstimatedCostUSD:  cost,
	}
}

// ReferenceMatch finds the benchmark closest to a list of reference apps.
// Domains such as "notion.so" are reduced to their first label.
func (e *Engine) ReferenceMatch(apps []string) *ReferenceMatch {
	keywords := referenceKeywords(apps)
	if len(keywords) == 0 {
		return nil
	}
	b, ok := e.catalog.SimilarBenchmark(keywords)
	if !ok {
		return nil
	}
	return &ReferenceMatch{Category: b.Category, Name: b.Name, Keywords: keywords}
}

func referenceKeywords(apps []string) []string {
	var out []string
	for _, app := range apps {
		kw := strings.ToLower(strings.TrimSpace(app))
		kw = strings.TrimPrefix(kw, "https://")
		kw = strings.TrimPrefix(kw, "http://")
		kw = strings.TrimPrefix(kw, "www.")
		if i := strings.IndexAny(kw, "./"); i >= 0 {
			kw = kw[:i]
		}
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// Catalog returns the benchmark catalog the engine reads
func (e *Engine) Catalog() *benchmarks.Catalog {
	return e.catalog
}

// Categories lists the known categories
func (e *Engine) Categories() []benchmarks.CategorySummary {
	return e.catalog.Categories()
}

// Features lists the known features
func (e *Engine) Features() []benchmarks.Feature {
	return e.catalog.Features()
}

// Regions lists the known regions
func (e *Engine) Regions() []benchmarks.RegionProfile {
	return e.catalog.Regions()
}

// Benchmark returns the benchmark of one category id
func (e *Engine) Benchmark(id string) (*benchmarks.Benchmark, error) {
	category, _ := e.catalog.ParseCategory(id)
	return e.catalog.Lookup(category)
}

// Benchmarks returns every benchmark
func (e *Engine) Benchmarks() []benchmarks.Benchmark {
	return e.catalog.Benchmarks()
}

// Providers lists the priced providers
func (e *Engine) Providers() []pricing.Provider {
	return e.pricing.Providers()
}

// Health reports status at now
func (e *Engine) Health(now time.Time) Health {
	return Health{
		Status:              "ok",
		ClassifierAvailable: e.resolver.Available(),
		Timestamp:           now.UTC(),
	}
}
