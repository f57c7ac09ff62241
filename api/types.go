// Package api - HTTP transport types
// Request bodies are validated here before the engine sees them.
package api

import (
	"strings"

	"capcost/core/benchmarks"
	"capcost/core/engine"
	"capcost/core/estimate"
	"capcost/internal/errors"
)

// maxBodyBytes bounds every request body
const maxBodyBytes = 1 << 20

// DirectEstimateRequest is the body of POST /api/estimate/direct
type DirectEstimateRequest struct {
	AppType         string   `json:"appType"`
	TargetMAU       int64    `json:"targetMAU"`
	Features        []string `json:"features"`
	HasMediaUpload  bool     `json:"hasMediaUpload"`
	AvgMediaSizeMB  float64  `json:"avgMediaSizeMB"`
	HasRealtime     bool     `json:"hasRealtime"`
	Region          string   `json:"region"`
	IncludeTimeline bool     `json:"includeTimeline"`
}

func (r *DirectEstimateRequest) validate(catalog *benchmarks.Catalog) (engine.DirectRequest, error) {
	if strings.TrimSpace(r.AppType) == "" {
		return engine.DirectRequest{}, errors.Input("appType is required")
	}
	category, ok := catalog.ParseCategory(r.AppType)
	if !ok {
		return engine.DirectRequest{}, errors.Inputf("unknown appType %q", r.AppType)
	}
	if r.TargetMAU <= 0 {
		return engine.DirectRequest{}, errors.Inputf("targetMAU must be positive, got %d", r.TargetMAU)
	}
	if r.AvgMediaSizeMB < 0 {
		return engine.DirectRequest{}, errors.Inputf("avgMediaSizeMB must not be negative, got %v", r.AvgMediaSizeMB)
	}
	region, err := parseRegion(catalog, r.Region)
	if err != nil {
		return engine.DirectRequest{}, err
	}

	return engine.DirectRequest{
		Input: estimate.Input{
			Category:       category,
			TargetMAU:      r.TargetMAU,
			Features:       r.Features,
			HasMediaUpload: r.HasMediaUpload,
			AvgMediaSizeMB: r.AvgMediaSizeMB,
			HasRealtime:    r.HasRealtime,
			Region:         region,
		},
		Timeline: r.IncludeTimeline,
	}, nil
}

// DescriptionEstimateRequest is the body of POST /api/estimate
type DescriptionEstimateRequest struct {
	Description   string             `json:"description"`
	TargetUsers   engine.TargetUsers `json:"targetUsers"`
	Region        string             `json:"region"`
	ReferenceApps []string           `json:"referenceApps"`
}

func (r *DescriptionEstimateRequest) validate(catalog *benchmarks.Catalog) (engine.DescriptionRequest, error) {
	if strings.TrimSpace(r.Description) == "" {
		return engine.DescriptionRequest{}, errors.Input("description is required")
	}
	if r.TargetUsers.Month6 <= 0 {
		return engine.DescriptionRequest{}, errors.Inputf("targetUsers.month6 must be positive, got %d", r.TargetUsers.Month6)
	}
	if r.TargetUsers.Month12 < 0 {
		return engine.DescriptionRequest{}, errors.Inputf("targetUsers.month12 must not be negative, got %d", r.TargetUsers.Month12)
	}
	region, err := parseRegion(catalog, r.Region)
	if err != nil {
		return engine.DescriptionRequest{}, err
	}

	return engine.DescriptionRequest{
		Description:   r.Description,
		TargetUsers:   r.TargetUsers,
		Region:        region,
		ReferenceApps: r.ReferenceApps,
	}, nil
}

// parseRegion defaults an empty region to brazil
func parseRegion(catalog *benchmarks.Catalog, raw string) (benchmarks.Region, error) {
	if raw == "" {
		return benchmarks.RegionBrazil, nil
	}
	region := benchmarks.Region(strings.ToLower(raw))
	if !catalog.IsRegion(region) {
		return "", errors.Inputf("unknown region %q", raw)
	}
	return region, nil
}

// CategoriesResponse is the body of GET /api/categories
type CategoriesResponse struct {
	Categories []benchmarks.CategorySummary `json:"categories"`
}

// FeaturesResponse is the body of GET /api/features
type FeaturesResponse struct {
	Features []benchmarks.Feature `json:"features"`
}

// BenchmarkResponse is the body of GET /api/benchmarks?category=
type BenchmarkResponse struct {
	Benchmark *benchmarks.Benchmark `json:"benchmark"`
}

// BenchmarksResponse is the body of GET /api/benchmarks
type BenchmarksResponse struct {
	Benchmarks []benchmarks.Benchmark `json:"benchmarks"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	engine.Health
	Version string `json:"version,omitempty"`
}
