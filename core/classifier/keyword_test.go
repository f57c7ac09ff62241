package classifier

import (
	"context"
	"reflect"
	"testing"

	"capcost/core/benchmarks"
)

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		name         string
		description  string
		wantCategory benchmarks.Category
		wantConf     float64
		wantFeatures []string
	}{
		{
			name:         "marketplace keywords accumulate",
			description:  "Um marketplace tipo Airbnb para aluguel de barcos",
			wantCategory: benchmarks.CategoryMarketplace,
			wantConf:     0.7,
			wantFeatures: []string{"auth"},
		},
		{
			name:         "no keyword defaults to saas-b2b",
			description:  "a todo list for gardeners",
			wantCategory: benchmarks.CategorySaaSB2B,
			wantConf:     0.5,
			wantFeatures: []string{"auth"},
		},
		{
			name:         "ties go to the first category in the catalog",
			description:  "blog and ecommerce",
			wantCategory: benchmarks.CategoryContentPlatform,
			wantConf:     0.7,
			wantFeatures: []string{"auth"},
		},
		{
			name:         "english feature keywords",
			description:  "Photo sharing with chat, search and Stripe payments, push notifications",
			wantCategory: benchmarks.CategorySaaSB2B,
			wantConf:     0.5,
			wantFeatures: []string{"auth", "media-upload", "search", "chat", "payments", "notifications"},
		},
		{
			name:         "portuguese feature keywords",
			description:  "Plataforma de telemedicina com chat em tempo real",
			wantCategory: benchmarks.CategoryHealthtech,
			wantConf:     0.7,
			wantFeatures: []string{"auth", "real-time", "chat"},
		},
		{
			name:         "matching ignores case",
			description:  "INSTAGRAM for pets",
			wantCategory: benchmarks.CategorySocialNetwork,
			wantConf:     0.7,
			wantFeatures: []string{"auth"},
		},
	}

	k := NewKeywordClassifier(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := k.Classify(context.Background(), tt.description)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if a.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", a.Category, tt.wantCategory)
			}
			if a.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", a.Confidence, tt.wantConf)
			}
			if !reflect.DeepEqual(a.DetectedFeatures, tt.wantFeatures) {
				t.Errorf("DetectedFeatures = %v, want %v", a.DetectedFeatures, tt.wantFeatures)
			}
			if a.Source != SourceKeyword {
				t.Errorf("Source = %s, want %s", a.Source, SourceKeyword)
			}
			if len(a.SuggestedFeatures) != 0 {
				t.Errorf("SuggestedFeatures = %v, want none", a.SuggestedFeatures)
			}
		})
	}
}

func TestKeywordClassifierIsDeterministic(t *testing.T) {
	k := NewKeywordClassifier(nil)
	desc := "fintech with bank transfers and realtime chat"
	first := k.Analyze(desc)
	for i := 0; i < 10; i++ {
		if got := k.Analyze(desc); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestValidate(t *testing.T) {
	catalog := benchmarks.Default()

	tests := []struct {
		name            string
		in              Analysis
		wantCategory    benchmarks.Category
		wantConf        float64
		wantDetected    []string
		wantSuggested   []string
		wantSubstituted bool
	}{
		{
			name: "unknown category is substituted and capped",
			in: Analysis{
				Category:          "crypto-casino",
				Confidence:        0.9,
				DetectedFeatures:  []string{"auth", "teleport", "auth"},
				SuggestedFeatures: []string{"search", "x"},
			},
			wantCategory:    benchmarks.CategorySaaSB2B,
			wantConf:        0.5,
			wantDetected:    []string{"auth"},
			wantSuggested:   []string{"search"},
			wantSubstituted: true,
		},
		{
			name:            "low confidence survives substitution",
			in:              Analysis{Category: "", Confidence: 0.2},
			wantCategory:    benchmarks.CategorySaaSB2B,
			wantConf:        0.2,
			wantDetected:    []string{},
			wantSuggested:   []string{},
			wantSubstituted: true,
		},
		{
			name: "known category is normalized and confidence clamped",
			in: Analysis{
				Category:         "Fintech ",
				Confidence:       1.4,
				DetectedFeatures: []string{"payments"},
			},
			wantCategory:  benchmarks.CategoryFintech,
			wantConf:      1,
			wantDetected:  []string{"payments"},
			wantSuggested: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.in
			substituted := Validate(&a, catalog)
			if substituted != tt.wantSubstituted {
				t.Errorf("substituted = %v, want %v", substituted, tt.wantSubstituted)
			}
			if a.Category != tt.wantCategory {
				t.Errorf("Category = %s, want %s", a.Category, tt.wantCategory)
			}
			if a.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", a.Confidence, tt.wantConf)
			}
			if !reflect.DeepEqual(a.DetectedFeatures, tt.wantDetected) {
				t.Errorf("DetectedFeatures = %v, want %v", a.DetectedFeatures, tt.wantDetected)
			}
			if !reflect.DeepEqual(a.SuggestedFeatures, tt.wantSuggested) {
				t.Errorf("SuggestedFeatures = %v, want %v", a.SuggestedFeatures, tt.wantSuggested)
			}
		})
	}
}

func TestAnalysisFeatures(t *testing.T) {
	a := &Analysis{
		DetectedFeatures:  []string{"auth", "chat"},
		SuggestedFeatures: []string{"chat", "search"},
	}
	want := []string{"auth", "chat", "search"}
	if got := a.Features(); !reflect.DeepEqual(got, want) {
		t.Errorf("Features() = %v, want %v", got, want)
	}
	if !a.HasFeature("chat") || a.HasFeature("search") {
		t.Error("HasFeature must only consider detected features")
	}
}

func TestFallbackInsights(t *testing.T) {
	tests := []struct {
		category benchmarks.Category
		first    string
		second   string
	}{
		{benchmarks.CategorySaaSB2B, "SaaS B2B apps typically serve 60% reads", "The average DAU/MAU ratio is 60%"},
		{benchmarks.CategoryECommerce, "E-commerce apps typically serve 90% reads", "The average DAU/MAU ratio is 10%"},
		{"bogus", "bogus apps typically serve 70% reads", "The average DAU/MAU ratio is 30%"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			in := FallbackInsights(benchmarks.Default(), tt.category)
			if in.Insights[0] != tt.first || in.Insights[1] != tt.second {
				t.Errorf("Insights = %q", in.Insights)
			}
			if len(in.Risks) != 2 || len(in.Recommendations) != 3 || len(in.ScalingConsiderations) != 2 {
				t.Errorf("unexpected section sizes: %+v", in)
			}
		})
	}
}
