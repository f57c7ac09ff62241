package estimate

import (
	"math"

	"capcost/core/benchmarks"
)

const (
	// peakShare of DAU is active inside a peakWindowHours window
	peakShare       = 0.6
	peakWindowHours = 4

	// realtimeOverhead accounts for persistent connection traffic
	realtimeOverhead = 1.5

	// uploadShare of content items per user are media uploads each month
	uploadShare = 0.3

	// servedMediaShare of stored media is served each month
	servedMediaShare = 0.3

	// storageGrowth is the monthly storage growth assumption
	storageGrowth = 0.1

	secondsPerDay   = 86400
	daysPerMonth    = 30
	secondsPerMonth = daysPerMonth * secondsPerDay
)

// Projector turns an Input into a capacity Result.
// It only reads its catalog and is safe for concurrent use.
type Projector struct {
	catalog *benchmarks.Catalog
}

// NewProjector creates a projector over a catalog.
// A nil catalog selects benchmarks.Default().
func NewProjector(catalog *benchmarks.Catalog) *Projector {
	if catalog == nil {
		catalog = benchmarks.Default()
	}
	return &Projector{catalog: catalog}
}

// Catalog returns the catalog the projector reads
func (p *Projector) Catalog() *benchmarks.Catalog {
	return p.catalog
}

// Project computes the capacity estimate for one input
func (p *Projector) Project(in Input) (*Result, error) {
	benchmark, err := p.catalog.Lookup(in.Category)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(p.catalog); err != nil {
		return nil, err
	}

	impact := p.catalog.FeatureImpact(in.Features)
	mau := float64(in.TargetMAU)

	// Users
	dau := math.Round(mau * benchmark.DAUMAURatio)
	concurrentPeak := math.Round(dau * peakShare / peakWindowHours)

	// Requests
	daily := dau * benchmark.AvgRequestsPerDAU * impact.Requests
	if in.HasRealtime {
		daily *= realtimeOverhead
	}
	avgPerSecond := daily / secondsPerDay
	peakPerSecond := avgPerSecond * benchmark.PeakMultiplier
	monthly := daily * daysPerMonth

	// Storage, computed in MB
	userMB := mau * benchmark.StoragePerUserMB
	contentMB := mau * benchmark.AvgContentItemsPerUser * benchmark.StoragePerContentItemMB
	mediaMB := 0.0
	if in.HasMediaUpload {
		mediaMB = mau * benchmark.AvgContentItemsPerUser * uploadShare * in.mediaSizeMB()
	}
	databaseGB := (userMB + contentMB) * impact.Storage / 1024
	mediaGB := mediaMB / 1024
	totalGB := databaseGB + mediaGB

	// Bandwidth, computed in KB
	pageViews := dau * benchmark.AvgSessionsPerDay * benchmark.AvgPageViewsPerSession * daysPerMonth
	pageKB := pageViews * benchmark.AvgPageSizeKB
	mediaKB := 0.0
	if in.HasMediaUpload {
		mediaKB = mediaMB * 1024 * servedMediaShare
	}
	bandwidthGB := (pageKB + mediaKB) * impact.Bandwidth / 1024 / 1024
	avgMbps := bandwidthGB * 8 * 1024 / secondsPerMonth

	result := &Result{
		Category:   benchmark.Category,
		Confidence: DirectConfidence,
		Requests: Requests{
			AvgPerSecond:    round2(avgPerSecond),
			PeakPerSecond:   round2(peakPerSecond),
			MonthlyTotal:    int64(math.Round(monthly)),
			ReadPercentage:  int(math.Round(benchmark.ReadRatio * 100)),
			WritePercentage: int(math.Round((1 - benchmark.ReadRatio) * 100)),
		},
		Storage: Storage{
			DatabaseGB:      round2(databaseGB),
			MediaStorageGB:  round2(mediaGB),
			TotalGB:         round2(totalGB),
			MonthlyGrowthGB: round2(totalGB * storageGrowth),
		},
		Bandwidth: Bandwidth{
			MonthlyGB: round2(bandwidthGB),
			AvgMbps:   round3(avgMbps),
		},
		Users: Users{
			MAU:            in.TargetMAU,
			DAU:            int64(dau),
			ConcurrentPeak: int64(concurrentPeak),
		},
	}
	result.Scenarios = buildScenarios(result)

	if in.Region != "" {
		if profile, err := p.catalog.RegionProfile(in.Region); err == nil {
			result.RegionProfile = &profile
		}
	}

	return result, nil
}

// buildScenarios scales the rounded moderate figures so that every
// scenario is an exact multiple of the reported estimate
func buildScenarios(r *Result) Scenarios {
	scale := func(name ScenarioName, m float64) Scenario {
		return Scenario{
			Name:        name,
			Multiplier:  m,
			Requests:    round2(r.Requests.AvgPerSecond * m),
			StorageGB:   round2(r.Storage.TotalGB * m),
			BandwidthGB: round2(r.Bandwidth.MonthlyGB * m),
		}
	}

	return Scenarios{
		Conservative: scale(ScenarioConservative, ConservativeMultiplier),
		Moderate:     scale(ScenarioModerate, ModerateMultiplier),
		Optimistic:   scale(ScenarioOptimistic, OptimisticMultiplier),
	}
}

// ProjectTimeline projects month 1, 6 and 12 with compounding MAU growth.
// A growth rate of zero or less selects DefaultGrowthRate.
func (p *Projector) ProjectTimeline(in Input, growthRate float64) (*Timeline, error) {
	if growthRate <= 0 {
		growthRate = DefaultGrowthRate
	}

	timeline := &Timeline{GrowthRate: growthRate}
	horizons := []struct {
		months int
		dst    **Result
	}{
		{0, &timeline.Month1},
		{5, &timeline.Month6},
		{11, &timeline.Month12},
	}

	for _, h := range horizons {
		scaled := in
		scaled.TargetMAU = GrowMAU(in.TargetMAU, growthRate, h.months)
		r, err := p.Project(scaled)
		if err != nil {
			return nil, err
		}
		*h.dst = r
	}
	return timeline, nil
}

// GrowMAU compounds mau over months at rate
func GrowMAU(mau int64, rate float64, months int) int64 {
	return int64(math.Round(float64(mau) * math.Pow(1+rate, float64(months))))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
