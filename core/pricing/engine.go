package pricing

import (
	"math"

	"capcost/core/determinism"
	"capcost/core/estimate"
)

// Engine prices estimates across a fixed set of providers.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	calculators []Calculator
}

// NewEngine creates an engine. With no calculators the built-in
// providers are used.
func NewEngine(calculators ...Calculator) *Engine {
	if len(calculators) == 0 {
		calculators = DefaultCalculators()
	}
	return &Engine{calculators: calculators}
}

// Providers lists the priced providers in listing order
func (e *Engine) Providers() []Provider {
	out := make([]Provider, 0, len(e.calculators))
	for _, c := range e.calculators {
		out = append(out, c.Provider())
	}
	return out
}

// Price computes every provider, sorts them by monthly total and picks a
// recommendation. Equal totals keep listing order.
func (e *Engine) Price(est *estimate.Result) *Result {
	estimates := make([]CloudPricing, 0, len(e.calculators))
	for _, c := range e.calculators {
		estimates = append(estimates, c.Price(est))
	}

	determinism.SortSlice(estimates, func(a, b CloudPricing) bool {
		return a.MonthlyTotal.LessThan(b.MonthlyTotal)
	})

	rec := Recommend(est, estimates)
	return &Result{
		Estimates:           estimates,
		RecommendedProvider: rec.Provider,
		Recommendation:      rec.Rationale,
		Profile:             rec.Profile,
	}
}

// PriceScenarios prices each scenario of est and backfills its monthly
// cost with the cheapest provider total
func (e *Engine) PriceScenarios(est *estimate.Result) {
	for _, s := range est.Scenarios.All() {
		priced := e.Price(scaleEstimate(est, s))
		if cheapest, ok := priced.Cheapest(); ok {
			est.SetScenarioCost(s.Name, cheapest.MonthlyTotal)
		}
	}
}

// scaleEstimate builds the estimate a scenario stands for
func scaleEstimate(est *estimate.Result, s *estimate.Scenario) *estimate.Result {
	m := s.Multiplier
	scaled := *est
	scaled.Scenarios = estimate.Scenarios{}

	scaled.Requests.AvgPerSecond = s.Requests
	scaled.Requests.PeakPerSecond = round2(est.Requests.PeakPerSecond * m)
	scaled.Requests.MonthlyTotal = int64(math.Round(float64(est.Requests.MonthlyTotal) * m))

	scaled.Storage.DatabaseGB = round2(est.Storage.DatabaseGB * m)
	scaled.Storage.MediaStorageGB = round2(est.Storage.MediaStorageGB * m)
	scaled.Storage.TotalGB = s.StorageGB
	scaled.Storage.MonthlyGrowthGB = round2(est.Storage.MonthlyGrowthGB * m)

	scaled.Bandwidth.MonthlyGB = s.BandwidthGB
	scaled.Bandwidth.AvgMbps = est.Bandwidth.AvgMbps * m

	scaled.Users.MAU = int64(math.Round(float64(est.Users.MAU) * m))
	scaled.Users.DAU = int64(math.Round(float64(est.Users.DAU) * m))
	scaled.Users.ConcurrentPeak = int64(math.Round(float64(est.Users.ConcurrentPeak) * m))
	return &scaled
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
