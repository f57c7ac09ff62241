// Package estimate projects capacity from a category benchmark.
// Projections are pure functions of their input and the read-only catalog.
package estimate

import (
	"github.com/shopspring/decimal"

	"capcost/core/benchmarks"
	"capcost/core/confidence"
	"capcost/internal/errors"
)

const (
	// DefaultMediaSizeMB is used when uploads are enabled without a size
	DefaultMediaSizeMB = 2.0

	// DefaultGrowthRate is the monthly MAU growth used by timelines
	DefaultGrowthRate = 0.15

	// DirectConfidence is reported for every projection from explicit input
	DirectConfidence = confidence.Direct
)

// ErrInvalidInput matches every input validation failure
var ErrInvalidInput = &errors.Error{Type: errors.TypeInput}

// Input is one projection request
type Input struct {
	Category       benchmarks.Category `json:"appType"`
	TargetMAU      int64               `json:"targetMAU"`
	Features       []string            `json:"features"`
	HasMediaUpload bool                `json:"hasMediaUpload"`
	AvgMediaSizeMB float64             `json:"avgMediaSizeMB,omitempty"`
	HasRealtime    bool                `json:"hasRealtime"`
	Region         benchmarks.Region   `json:"region"`
}

// Validate checks the caller supplied fields. The category is checked by
// the projector against its catalog.
func (in *Input) Validate(catalog *benchmarks.Catalog) error {
	if in.TargetMAU <= 0 {
		return errors.Inputf("target MAU must be positive, got %d", in.TargetMAU)
	}
	if in.AvgMediaSizeMB < 0 {
		return errors.Inputf("average media size must not be negative, got %v", in.AvgMediaSizeMB)
	}
	if in.Region != "" && !catalog.IsRegion(in.Region) {
		return errors.Inputf("unknown region %q", in.Region)
	}
	return nil
}

// mediaSizeMB applies the upload size default
func (in *Input) mediaSizeMB() float64 {
	if in.HasMediaUpload && in.AvgMediaSizeMB == 0 {
		return DefaultMediaSizeMB
	}
	return in.AvgMediaSizeMB
}

// Requests is the request volume of an estimate
type Requests struct {
	AvgPerSecond    float64 `json:"avgPerSecond"`
	PeakPerSecond   float64 `json:"peakPerSecond"`
	MonthlyTotal    int64   `json:"monthlyTotal"`
	ReadPercentage  int     `json:"readPercentage"`
	WritePercentage int     `json:"writePercentage"`
}

// Storage is in GB
type Storage struct {
	DatabaseGB      float64 `json:"databaseGB"`
	MediaStorageGB  float64 `json:"mediaStorageGB"`
	TotalGB         float64 `json:"totalGB"`
	MonthlyGrowthGB float64 `json:"monthlyGrowthGB"`
}

// Bandwidth is monthly egress
type Bandwidth struct {
	MonthlyGB float64 `json:"monthlyGB"`
	AvgMbps   float64 `json:"avgMbps"`
}

// Users is the audience of an estimate
type Users struct {
	MAU            int64 `json:"mau"`
	DAU            int64 `json:"dau"`
	ConcurrentPeak int64 `json:"concurrentPeak"`
}

// ScenarioName names a scaled view of an estimate
type ScenarioName string

const (
	ScenarioConservative ScenarioName = "conservative"
	ScenarioModerate     ScenarioName = "moderate"
	ScenarioOptimistic   ScenarioName = "optimistic"
)

// Scenario multipliers
const (
	ConservativeMultiplier = 0.7
	ModerateMultiplier     = 1.0
	OptimisticMultiplier   = 1.5
)

// Scenario is a linearly scaled view of the base estimate.
// MonthlyCostUSD stays nil until the pricing layer fills it.
type Scenario struct {
	Name           ScenarioName     `json:"name"`
	Multiplier     float64          `json:"multiplier"`
	Requests       float64          `json:"requests"`
	StorageGB      float64          `json:"storageGB"`
	BandwidthGB    float64          `json:"bandwidthGB"`
	MonthlyCostUSD *decimal.Decimal `json:"monthlyCostUSD"`
}

// Scenarios holds the three named scenarios
type Scenarios struct {
	Conservative Scenario `json:"conservative"`
	Moderate     Scenario `json:"moderate"`
	Optimistic   Scenario `json:"optimistic"`
}

// All returns the scenarios from conservative to optimistic
func (s *Scenarios) All() []*Scenario {
	return []*Scenario{&s.Conservative, &s.Moderate, &s.Optimistic}
}

// Result is one capacity estimate
type Result struct {
	Category   benchmarks.Category `json:"appType"`
	Confidence float64             `json:"confidence"`
	Requests   Requests            `json:"requests"`
	Storage    Storage             `json:"storage"`
	Bandwidth  Bandwidth           `json:"bandwidth"`
	Users      Users               `json:"users"`
	Scenarios  Scenarios           `json:"scenarios"`

	// RegionProfile is display context only
	RegionProfile *benchmarks.RegionProfile `json:"regionProfile,omitempty"`
}

// Scenario looks up a scenario by name
func (r *Result) Scenario(name ScenarioName) (*Scenario, bool) {
	for _, s := range r.Scenarios.All() {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// SetScenarioCost backfills the cost of one scenario. It is the only
// mutation a Result accepts after projection.
func (r *Result) SetScenarioCost(name ScenarioName, cost decimal.Decimal) bool {
	s, ok := r.Scenario(name)
	if !ok {
		return false
	}
	c := cost
	s.MonthlyCostUSD = &c
	return true
}

// Timeline is a projection at three growth horizons
type Timeline struct {
	GrowthRate float64 `json:"growthRate"`
	Month1     *Result `json:"month1"`
	Month6     *Result `json:"month6"`
	Month12    *Result `json:"month12"`
}
