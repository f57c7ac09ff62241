package benchmarks

import (
	stderrors "errors"
	"testing"

	"capcost/internal/errors"
)

func TestDefaultCatalogHasAllCategories(t *testing.T) {
	c := Default()

	want := []Category{
		CategoryContentPlatform, CategoryMarketplace, CategorySaaSB2B, CategorySaaSB2C, CategoryECommerce,
		CategorySocialNetwork, CategoryFintech, CategoryEdtech, CategoryHealthtech, CategoryDeveloperTools,
	}
	got := c.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(want))
	}
	for i, cat := range want {
		if got[i].ID != cat {
			t.Errorf("Categories()[%d] = %s, want %s", i, got[i].ID, cat)
		}
		if got[i].Name == "" || got[i].Description == "" {
			t.Errorf("category %s has empty name or description", cat)
		}
	}
	if n := len(c.Features()); n != 12 {
		t.Errorf("Features() returned %d entries, want 12", n)
	}
	if n := len(c.Regions()); n != 5 {
		t.Errorf("Regions() returned %d entries, want 5", n)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	b, err := c.Lookup(CategorySaaSB2B)
	if err != nil {
		t.Fatalf("Lookup(saas-b2b): %v", err)
	}
	if b.DAUMAURatio != 0.60 || b.AvgRequestsPerDAU != 200 || b.PeakMultiplier != 2 {
		t.Errorf("saas-b2b benchmark = %+v", b)
	}

	_, err = c.Lookup("foo")
	if err == nil {
		t.Fatal("Lookup(foo) should fail")
	}
	if !stderrors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Lookup(foo) error %v should match ErrCategoryNotFound", err)
	}
	if stderrors.Is(err, ErrRegionNotFound) {
		t.Errorf("Lookup(foo) error %v must not match ErrRegionNotFound", err)
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Lookup(foo) error type = %s", errors.TypeOf(err))
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	c := Default()
	b, _ := c.Lookup(CategoryFintech)
	b.ReadRatio = 0.01

	again, _ := c.Lookup(CategoryFintech)
	if again.ReadRatio != 0.70 {
		t.Errorf("catalog was mutated through a lookup result: %v", again.ReadRatio)
	}
}

func TestFeatureImpact(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		ids  []string
		want Impact
	}{
		{name: "empty", ids: nil, want: NoImpact},
		{name: "unknown only", ids: []string{"teleport"}, want: NoImpact},
		{name: "auth", ids: []string{"auth"}, want: Impact{Requests: 1.07, Storage: 1.03, Bandwidth: 1}},
		{name: "realtime and chat", ids: []string{"real-time", "chat"}, want: Impact{Requests: 2.16, Storage: 1.28, Bandwidth: 1.51}},
		{name: "unknown ignored", ids: []string{"auth", "teleport"}, want: Impact{Requests: 1.07, Storage: 1.03, Bandwidth: 1}},
		{name: "auth and media", ids: []string{"auth", "media-upload"}, want: Impact{Requests: 1.21, Storage: 2.23, Bandwidth: 1.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FeatureImpact(tt.ids); got != tt.want {
				t.Errorf("FeatureImpact(%v) = %+v, want %+v", tt.ids, got, tt.want)
			}
		})
	}
}

func TestFilterFeatures(t *testing.T) {
	c := Default()
	got := c.FilterFeatures([]string{"chat", "teleport", "auth", "chat"})
	want := []string{"chat", "auth"}
	if len(got) != len(want) {
		t.Fatalf("FilterFeatures = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterFeatures[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSimilarBenchmark(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		keywords []string
		want     Category
		found    bool
	}{
		{name: "example name", keywords: []string{"Instagram"}, want: CategorySocialNetwork, found: true},
		{name: "example in description", keywords: []string{"airbnb"}, want: CategoryMarketplace, found: true},
		{name: "category name", keywords: []string{"fintech"}, want: CategoryFintech, found: true},
		{name: "tie goes to catalog order", keywords: []string{"auth"}, want: CategoryContentPlatform, found: true},
		{name: "no match", keywords: []string{"zzz"}, found: false},
		{name: "blank keywords", keywords: []string{"", "  "}, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := c.SimilarBenchmark(tt.keywords)
			if ok != tt.found {
				t.Fatalf("SimilarBenchmark(%v) found = %v, want %v", tt.keywords, ok, tt.found)
			}
			if ok && b.Category != tt.want {
				t.Errorf("SimilarBenchmark(%v) = %s, want %s", tt.keywords, b.Category, tt.want)
			}
		})
	}
}

func TestRegionProfile(t *testing.T) {
	c := Default()

	p, err := c.RegionProfile(RegionUS)
	if err != nil {
		t.Fatalf("RegionProfile(us): %v", err)
	}
	if p.Timezone != "America/New_York" || p.PeakHours != (HourWindow{Start: 18, End: 22}) {
		t.Errorf("us profile = %+v", p)
	}

	if _, err := c.RegionProfile("mars"); !stderrors.Is(err, ErrRegionNotFound) {
		t.Errorf("RegionProfile(mars) error = %v, want ErrRegionNotFound", err)
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	valid := Benchmark{Category: "x", ReadRatio: 0.5, DAUMAURatio: 0.5, PeakMultiplier: 2}
	validFeature := Feature{ID: "f", ImpactOnRequests: 1, ImpactOnStorage: 1, ImpactOnBandwidth: 1}

	tests := []struct {
		name       string
		benchmarks []Benchmark
		features   []Feature
	}{
		{name: "duplicate category", benchmarks: []Benchmark{valid, valid}},
		{name: "zero read ratio", benchmarks: []Benchmark{{Category: "x", ReadRatio: 0, DAUMAURatio: 0.5, PeakMultiplier: 2}}},
		{name: "dau ratio above one", benchmarks: []Benchmark{{Category: "x", ReadRatio: 0.5, DAUMAURatio: 1.2, PeakMultiplier: 2}}},
		{name: "peak below one", benchmarks: []Benchmark{{Category: "x", ReadRatio: 0.5, DAUMAURatio: 0.5, PeakMultiplier: 0.5}}},
		{name: "duplicate feature", features: []Feature{validFeature, validFeature}},
		{name: "feature below one", features: []Feature{{ID: "f", ImpactOnRequests: 0.9, ImpactOnStorage: 1, ImpactOnBandwidth: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.benchmarks, tt.features, nil)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("error type = %s, want %s", errors.TypeOf(err), errors.TypeConfig)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	c := Default()
	if cat, ok := c.ParseCategory(" SaaS-B2B "); !ok || cat != CategorySaaSB2B {
		t.Errorf("ParseCategory = %s, %v", cat, ok)
	}
	if _, ok := c.ParseCategory("crypto"); ok {
		t.Error("ParseCategory(crypto) should fail")
	}
}
