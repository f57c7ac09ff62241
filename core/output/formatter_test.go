package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"capcost/core/benchmarks"
	"capcost/core/engine"
	"capcost/core/estimate"
	"capcost/internal/errors"
)

func directResponse(t *testing.T) *engine.DirectResponse {
	t.Helper()
	resp, err := engine.NewEngine(nil, nil, engine.EngineConfig{}).EstimateDirect(context.Background(), engine.DirectRequest{
		Input: estimate.Input{
			Category:  benchmarks.CategorySaaSB2B,
			TargetMAU: 10000,
			Features:  []string{"auth"},
			Region:    benchmarks.RegionUS,
		},
		Timeline: true,
	})
	if err != nil {
		t.Fatalf("EstimateDirect: %v", err)
	}
	return resp
}

func TestNew(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatCLI, false},
		{"cli", FormatCLI, false},
		{"JSON", FormatJSON, false},
		{"html", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := New(tt.in, true)
			if tt.wantErr {
				if !errors.IsType(err, errors.TypeInput) {
					t.Errorf("err = %v, want input error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if f.Format() != tt.want {
				t.Errorf("Format() = %s, want %s", f.Format(), tt.want)
			}
		})
	}
}

func TestJSONRendersMoneyAsStrings(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONFormatter{}).Render(&buf, directResponse(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded struct {
		Pricing struct {
			Estimates []struct {
				Provider     string `json:"provider"`
				MonthlyTotal string `json:"monthlyTotal"`
			} `json:"estimates"`
			RecommendedProvider string `json:"recommendedProvider"`
		} `json:"pricing"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Pricing.Estimates[0].Provider != "aws" || decoded.Pricing.Estimates[0].MonthlyTotal != "427.45" {
		t.Errorf("first estimate = %+v", decoded.Pricing.Estimates[0])
	}
	if decoded.Pricing.RecommendedProvider != "supabase" {
		t.Errorf("recommendedProvider = %s", decoded.Pricing.RecommendedProvider)
	}
}

func TestCLIRendersDirectResponse(t *testing.T) {
	var buf bytes.Buffer
	f := &CLIFormatter{NoColor: true}
	if err := f.Render(&buf, directResponse(t)); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Capacity Estimate",
		"14.86 req/s",
		"AWS (DIY)",
		"$427.45",
		"Growth Timeline (15% per month)",
		"month 12",
		"Supabase",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("NoColor output contains escape codes")
	}
}

func TestCLIRendersListings(t *testing.T) {
	catalog := benchmarks.Default()
	fintech, _ := catalog.Lookup(benchmarks.CategoryFintech)

	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"categories", catalog.Categories(), "developer-tools"},
		{"features", catalog.Features(), "video-streaming"},
		{"benchmark", fintech, "Fintech"},
		{"benchmarks", catalog.Benchmarks(), "e-commerce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&CLIFormatter{NoColor: true}).Render(&buf, tt.v); err != nil {
				t.Fatalf("Render: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestCLIRejectsUnknownValues(t *testing.T) {
	err := (&CLIFormatter{}).Render(&bytes.Buffer{}, 42)
	if !errors.IsType(err, errors.TypeInternal) {
		t.Errorf("err = %v, want internal error", err)
	}
}
