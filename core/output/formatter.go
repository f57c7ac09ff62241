// Package output provides output formatting.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"capcost/core/benchmarks"
	"capcost/core/engine"
	"capcost/core/estimate"
	"capcost/core/pricing"
	"capcost/core/ui"
	"capcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes v. Supported values are engine responses, benchmark
	// listings and single benchmarks.
	Render(w io.Writer, v interface{}) error
}

// New returns the formatter for a format name
func New(format string, noColor bool) (Formatter, error) {
	switch Format(strings.ToLower(format)) {
	case FormatCLI, "":
		return &CLIFormatter{NoColor: noColor}, nil
	case FormatJSON:
		return JSONFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format %q (want cli or json)", format)
	}
}

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

func (JSONFormatter) Format() Format { return FormatJSON }

func (JSONFormatter) Render(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// CLIFormatter writes tables for a terminal
type CLIFormatter struct {
	NoColor bool
}

func (f *CLIFormatter) Format() Format { return FormatCLI }

func (f *CLIFormatter) Render(w io.Writer, v interface{}) error {
	out := ui.NewWriter(w, f.NoColor)
	switch r := v.(type) {
	case *engine.DirectResponse:
		renderEstimate(out, r.Estimate)
		renderPricing(out, r.Pricing, r.Estimate.Confidence)
		if r.Timeline != nil {
			renderTimeline(out, r.Timeline)
		}
	case *engine.DescriptionResponse:
		renderAnalysis(out, r)
		renderEstimate(out, r.Estimate)
		renderPricing(out, r.Pricing, r.Confidence)
		renderTimeline(out, r.Timeline)
		renderInsights(out, r)
	case []benchmarks.CategorySummary:
		t := out.NewTable("ID", "NAME", "DESCRIPTION")
		for _, c := range r {
			t.AddRow(string(c.ID), c.Name, c.Description)
		}
		t.Render()
	case []benchmarks.Feature:
		t := out.NewTable("ID", "NAME", "REQUESTS", "STORAGE", "BANDWIDTH")
		for _, ft := range r {
			t.AddRow(ft.ID, ft.Name, multiplier(ft.ImpactOnRequests), multiplier(ft.ImpactOnStorage), multiplier(ft.ImpactOnBandwidth))
		}
		t.Render()
	case *benchmarks.Benchmark:
		renderBenchmark(out, r)
	case []benchmarks.Benchmark:
		t := out.NewTable("CATEGORY", "DAU/MAU", "READS", "PEAK", "REQ/DAU")
		for _, b := range r {
			t.AddRow(string(b.Category), percent(b.DAUMAURatio), percent(b.ReadRatio),
				multiplier(b.PeakMultiplier), fmt.Sprintf("%.0f", b.AvgRequestsPerDAU))
		}
		t.Render()
	default:
		return errors.Newf(errors.TypeInternal, "cannot render %T", v)
	}
	return nil
}

func renderAnalysis(out *ui.Writer, r *engine.DescriptionResponse) {
	a := r.Analysis
	out.Header("Analysis")
	out.KeyValue("Category", string(a.Category))
	out.KeyValue("Classifier", string(a.Source))
	out.KeyValue("Confidence", fmt.Sprintf("%.0f%% (%s)", r.Confidence*100, r.ConfidenceLevel))
	out.KeyValue("Detected features", strings.Join(a.DetectedFeatures, ", "))
	if len(a.SuggestedFeatures) > 0 {
		out.KeyValue("Suggested features", strings.Join(a.SuggestedFeatures, ", "))
	}
	if a.Reasoning != "" {
		out.KeyValue("Reasoning", a.Reasoning)
	}
	if r.ReferenceMatch != nil {
		out.KeyValue("Reference match", fmt.Sprintf("%s (%s)", r.ReferenceMatch.Name, r.ReferenceMatch.Category))
	}
}

func renderEstimate(out *ui.Writer, est *estimate.Result) {
	out.Header("Capacity Estimate")

	out.SubHeader("Users")
	out.KeyValue("MAU", fmt.Sprintf("%d", est.Users.MAU))
	out.KeyValue("DAU", fmt.Sprintf("%d", est.Users.DAU))
	out.KeyValue("Concurrent peak", fmt.Sprintf("%d", est.Users.ConcurrentPeak))

	out.SubHeader("Requests")
	out.KeyValue("Average", fmt.Sprintf("%.2f req/s", est.Requests.AvgPerSecond))
	out.KeyValue("Peak", fmt.Sprintf("%.2f req/s", est.Requests.PeakPerSecond))
	out.KeyValue("Monthly", fmt.Sprintf("%d", est.Requests.MonthlyTotal))
	out.KeyValue("Read/write", fmt.Sprintf("%d%% / %d%%", est.Requests.ReadPercentage, est.Requests.WritePercentage))

	out.SubHeader("Storage and bandwidth")
	out.KeyValue("Database", gb(est.Storage.DatabaseGB))
	out.KeyValue("Media", gb(est.Storage.MediaStorageGB))
	out.KeyValue("Total", gb(est.Storage.TotalGB))
	out.KeyValue("Monthly growth", gb(est.Storage.MonthlyGrowthGB))
	out.KeyValue("Bandwidth", fmt.Sprintf("%s/month (%.3f Mbps)", gb(est.Bandwidth.MonthlyGB), est.Bandwidth.AvgMbps))

	out.Println("")
	t := out.NewTable("SCENARIO", "REQ/S", "STORAGE", "BANDWIDTH", "COST/MONTH")
	for _, s := range est.Scenarios.All() {
		cost := "-"
		if s.MonthlyCostUSD != nil {
			cost = "$" + s.MonthlyCostUSD.StringFixed(2)
		}
		t.AddRow(fmt.Sprintf("%s (x%.1f)", s.Name, s.Multiplier), fmt.Sprintf("%.2f", s.Requests), gb(s.StorageGB), gb(s.BandwidthGB), cost)
	}
	t.Render()
}

func renderPricing(out *ui.Writer, p *pricing.Result, confidence float64) {
	out.Header("Monthly Cost by Provider")
	t := out.NewTable("PROVIDER", "TIER", "COMPUTE", "DATABASE", "STORAGE", "BANDWIDTH", "OTHER", "TOTAL")
	for _, e := range p.Estimates {
		b := e.Breakdown
		t.AddRow(e.Name, e.Tier, usd(b.Compute.StringFixed(2)), usd(b.Database.StringFixed(2)),
			usd(b.Storage.StringFixed(2)), usd(b.Bandwidth.StringFixed(2)), usd(b.Other.StringFixed(2)),
			usd(e.MonthlyTotal.StringFixed(2)))
	}
	t.Render()

	summary := out.NewCostSummary()
	if cheapest, ok := p.Cheapest(); ok {
		summary.MonthlyCost = usd(cheapest.MonthlyTotal.StringFixed(2))
		summary.Cheapest = cheapest.Name
	}
	if rec, ok := p.Find(p.RecommendedProvider); ok {
		summary.Recommended = fmt.Sprintf("%s (%s)", rec.Name, usd(rec.MonthlyTotal.StringFixed(2)))
	}
	summary.Confidence = confidence
	summary.Render()

	out.Println("")
	out.Info("%s", p.Recommendation)
}

func renderTimeline(out *ui.Writer, tl *engine.Timeline) {
	out.Header(fmt.Sprintf("Growth Timeline (%.0f%% per month)", tl.GrowthRate*100))
	t := out.NewTable("HORIZON", "MAU", "REQ/S", "STORAGE", "CHEAPEST/MONTH")
	for _, row := range []struct {
		label string
		p     engine.TimelinePoint
	}{
		{"month 1", tl.Month1},
		{"month 6", tl.Month6},
		{"month 12", tl.Month12},
	} {
		t.AddRow(row.label, fmt.Sprintf("%d", row.p.MAU), fmt.Sprintf("%.2f", row.p.RequestsPerSecond),
			gb(row.p.StorageGB), usd(row.p.EstimatedCostUSD.StringFixed(2)))
	}
	t.Render()
}

func renderInsights(out *ui.Writer, r *engine.DescriptionResponse) {
	if r.Insights == nil {
		return
	}
	out.Header("Insights")
	sections := []struct {
		title string
		items []string
	}{
		{"Insights", r.Insights.Insights},
		{"Risks", r.Insights.Risks},
		{"Recommendations", r.Insights.Recommendations},
		{"Scaling", r.Insights.ScalingConsiderations},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		out.SubHeader(s.title)
		for _, item := range s.items {
			out.Bullet(item)
		}
	}
}

func renderBenchmark(out *ui.Writer, b *benchmarks.Benchmark) {
	out.Header(b.Name)
	out.Println(b.Description)
	out.Println("")
	out.KeyValue("DAU/MAU", percent(b.DAUMAURatio))
	out.KeyValue("Reads", percent(b.ReadRatio))
	out.KeyValue("Peak multiplier", multiplier(b.PeakMultiplier))
	out.KeyValue("Requests per DAU", fmt.Sprintf("%.0f", b.AvgRequestsPerDAU))
	out.KeyValue("Sessions per day", fmt.Sprintf("%.1f", b.AvgSessionsPerDay))
	out.KeyValue("Session length", fmt.Sprintf("%.0f min", b.AvgSessionMinutes))
	out.KeyValue("Page size", fmt.Sprintf("%.0f KB", b.AvgPageSizeKB))
	out.KeyValue("Storage per user", fmt.Sprintf("%.2f MB", b.StoragePerUserMB))
	out.KeyValue("Typical features", strings.Join(b.TypicalFeatures, ", "))
	out.KeyValue("Examples", strings.Join(b.RealWorldExamples, ", "))
	out.KeyValue("Source", b.DataSource)
}

func gb(v float64) string {
	return fmt.Sprintf("%.2f GB", v)
}

func usd(amount string) string {
	return "$" + amount
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

func multiplier(m float64) string {
	return fmt.Sprintf("x%.2f", m)
}
