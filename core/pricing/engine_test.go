package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"capcost/core/benchmarks"
	"capcost/core/estimate"
)

func project(t *testing.T, in estimate.Input) *estimate.Result {
	t.Helper()
	r, err := estimate.NewProjector(nil).Project(in)
	if err != nil {
		t.Fatalf("Project(%+v): %v", in, err)
	}
	return r
}

func assertMoney(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", label, got, want)
	}
}

func TestPriceSaaSB2B(t *testing.T) {
	est := project(t, estimate.Input{
		Category:  benchmarks.CategorySaaSB2B,
		TargetMAU: 10000,
		Features:  []string{"auth"},
		Region:    benchmarks.RegionUS,
	})

	result := NewEngine().Price(est)

	wantOrder := []struct {
		provider Provider
		tier     string
		total    string
	}{
		{ProviderAWS, TierMedium, "427.45"},
		{ProviderVercel, TierEnterprise, "532.70"},
		{ProviderRailway, TierPro, "791.03"},
		{ProviderSupabase, TierTeam, "860.23"},
		{ProviderRender, TierStandard, "2269.21"},
	}
	if len(result.Estimates) != len(wantOrder) {
		t.Fatalf("got %d estimates, want %d", len(result.Estimates), len(wantOrder))
	}
	for i, w := range wantOrder {
		e := result.Estimates[i]
		if e.Provider != w.provider || e.Tier != w.tier {
			t.Errorf("estimates[%d] = %s/%s, want %s/%s", i, e.Provider, e.Tier, w.provider, w.tier)
			continue
		}
		assertMoney(t, string(e.Provider)+" total", e.MonthlyTotal, w.total)
	}

	if result.RecommendedProvider != ProviderSupabase {
		t.Errorf("recommended = %s, want supabase (medium, 40%% writes)", result.RecommendedProvider)
	}
	if result.Profile != ProfileMedium {
		t.Errorf("profile = %s, want medium", result.Profile)
	}
}

func TestBreakdowns(t *testing.T) {
	est := project(t, estimate.Input{
		Category:  benchmarks.CategorySaaSB2B,
		TargetMAU: 10000,
		Features:  []string{"auth"},
	})
	result := NewEngine().Price(est)

	tests := []struct {
		provider Provider
		want     Breakdown
	}{
		{ProviderVercel, Breakdown{Compute: dec("500"), Database: dec("25"), Storage: dec("0"), Bandwidth: dec("7.70"), Other: dec("0")}},
		{ProviderRailway, Breakdown{Compute: dec("20.61"), Database: dec("512.93"), Storage: dec("0"), Bandwidth: dec("257.49"), Other: dec("0")}},
		{ProviderSupabase, Breakdown{Compute: dec("239.60"), Database: dec("239.60"), Storage: dec("130.61"), Bandwidth: dec("130.61"), Other: dec("0")}},
		{ProviderRender, Breakdown{Compute: dec("25"), Database: dec("2036.72"), Storage: dec("0"), Bandwidth: dec("207.49"), Other: dec("0")}},
		{ProviderAWS, Breakdown{Compute: dec("50"), Database: dec("148.59"), Storage: dec("0"), Bandwidth: dec("218.87"), Other: dec("10")}},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			e, ok := result.Find(tt.provider)
			if !ok {
				t.Fatalf("provider %s missing", tt.provider)
			}
			b := e.Breakdown
			assertMoney(t, "compute", b.Compute, tt.want.Compute.String())
			assertMoney(t, "database", b.Database, tt.want.Database.String())
			assertMoney(t, "storage", b.Storage, tt.want.Storage.String())
			assertMoney(t, "bandwidth", b.Bandwidth, tt.want.Bandwidth.String())
			assertMoney(t, "other", b.Other, tt.want.Other.String())
			if len(e.Notes) == 0 {
				t.Error("expected notes")
			}
		})
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTierSelection(t *testing.T) {
	base := func() *estimate.Result {
		return &estimate.Result{Users: estimate.Users{MAU: 100}}
	}

	tests := []struct {
		name   string
		mutate func(*estimate.Result)
		fn     func(*estimate.Result) string
		want   string
	}{
		{"vercel hobby", func(*estimate.Result) {}, VercelTierFor, TierHobby},
		{"vercel pro by requests", func(r *estimate.Result) { r.Requests.MonthlyTotal = 100_001 }, VercelTierFor, TierPro},
		{"vercel pro by bandwidth", func(r *estimate.Result) { r.Bandwidth.MonthlyGB = 101 }, VercelTierFor, TierPro},
		{"vercel enterprise", func(r *estimate.Result) { r.Bandwidth.MonthlyGB = 1001 }, VercelTierFor, TierEnterprise},
		{"railway hobby at 10 req/s", func(r *estimate.Result) { r.Requests.AvgPerSecond = 10 }, RailwayTierFor, TierHobby},
		{"railway pro", func(r *estimate.Result) { r.Requests.AvgPerSecond = 10.01 }, RailwayTierFor, TierPro},
		{"supabase free", func(*estimate.Result) {}, SupabaseTierFor, TierFree},
		{"supabase pro", func(r *estimate.Result) { r.Storage.DatabaseGB = 0.6 }, SupabaseTierFor, TierPro},
		{"supabase team", func(r *estimate.Result) { r.Bandwidth.MonthlyGB = 251 }, SupabaseTierFor, TierTeam},
		{"render starter", func(r *estimate.Result) { r.Requests.AvgPerSecond = 5 }, RenderTierFor, TierStarter},
		{"render standard", func(r *estimate.Result) { r.Requests.AvgPerSecond = 5.5 }, RenderTierFor, TierStandard},
		{"aws small", func(*estimate.Result) {}, AWSTierFor, TierSmall},
		{"aws medium by users", func(r *estimate.Result) { r.Users.ConcurrentPeak = 501 }, AWSTierFor, TierMedium},
		{"aws large by requests", func(r *estimate.Result) { r.Requests.AvgPerSecond = 51 }, AWSTierFor, TierLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.mutate(r)
			if got := tt.fn(r); got != tt.want {
				t.Errorf("tier = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFreeTierSupabaseHasNoOverage(t *testing.T) {
	est := &estimate.Result{
		Users:     estimate.Users{MAU: 50},
		Storage:   estimate.Storage{DatabaseGB: 0.2, MediaStorageGB: 5},
		Bandwidth: estimate.Bandwidth{MonthlyGB: 1},
	}
	e := priceSupabase(est)
	if e.Tier != TierFree {
		t.Fatalf("tier = %s, want free", e.Tier)
	}
	assertMoney(t, "total", e.MonthlyTotal, "0")
	if e.Notes[2] != "Free tier limits may require a quick upgrade" {
		t.Errorf("notes = %v", e.Notes)
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		in      estimate.Input
		want    Provider
		profile Profile
	}{
		{
			name:    "small project",
			in:      estimate.Input{Category: benchmarks.CategoryContentPlatform, TargetMAU: 500},
			want:    ProviderSupabase,
			profile: ProfileSmall,
		},
		{
			name:    "medium with little writing",
			in:      estimate.Input{Category: benchmarks.CategoryECommerce, TargetMAU: 10000},
			want:    ProviderRailway,
			profile: ProfileMedium,
		},
		{
			name:    "medium with heavy media",
			in:      estimate.Input{Category: benchmarks.CategoryContentPlatform, TargetMAU: 40000, HasMediaUpload: true, AvgMediaSizeMB: 50},
			want:    ProviderAWS,
			profile: ProfileMedium,
		},
		{
			name:    "large project",
			in:      estimate.Input{Category: benchmarks.CategoryECommerce, TargetMAU: 100000},
			want:    ProviderAWS,
			profile: ProfileLarge,
		},
	}

	engine := NewEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Price(project(t, tt.in))
			if result.RecommendedProvider != tt.want {
				t.Errorf("recommended = %s, want %s", result.RecommendedProvider, tt.want)
			}
			if result.Profile != tt.profile {
				t.Errorf("profile = %s, want %s", result.Profile, tt.profile)
			}
			if result.Recommendation == "" {
				t.Error("empty rationale")
			}
		})
	}
}

func TestRecommendFallsBackToCheapest(t *testing.T) {
	// Under 1000 MAU but busy enough to not be small
	est := project(t, estimate.Input{Category: benchmarks.CategoryDeveloperTools, TargetMAU: 999})
	result := NewEngine().Price(est)

	if result.Profile != ProfileOther {
		t.Fatalf("profile = %s, want other", result.Profile)
	}
	if result.RecommendedProvider != result.Estimates[0].Provider {
		t.Errorf("recommended = %s, want cheapest %s", result.RecommendedProvider, result.Estimates[0].Provider)
	}
}

func TestPriceIsSortedAndDeterministic(t *testing.T) {
	engine := NewEngine()
	for _, b := range benchmarks.Default().Benchmarks() {
		est := project(t, estimate.Input{Category: b.Category, TargetMAU: 25000, Features: []string{"chat", "media-upload"}, HasMediaUpload: true})

		first := engine.Price(est)
		second := engine.Price(est)
		for i := range first.Estimates {
			if i > 0 && first.Estimates[i].MonthlyTotal.LessThan(first.Estimates[i-1].MonthlyTotal) {
				t.Errorf("%s: estimates not sorted at %d", b.Category, i)
			}
			if !first.Estimates[i].MonthlyTotal.Equal(second.Estimates[i].MonthlyTotal) ||
				first.Estimates[i].Provider != second.Estimates[i].Provider {
				t.Errorf("%s: pricing is not reproducible at %d", b.Category, i)
			}
		}
	}
}

func TestStableOrderOnTies(t *testing.T) {
	flat := func(id Provider) Calculator {
		return CalculatorFunc{ID: id, Fn: func(*estimate.Result) CloudPricing {
			return CloudPricing{Provider: id, Name: string(id), MonthlyTotal: dec("10")}
		}}
	}
	engine := NewEngine(flat("b"), flat("a"), flat("c"))

	result := engine.Price(&estimate.Result{Users: estimate.Users{MAU: 500}, Requests: estimate.Requests{AvgPerSecond: 2}})
	got := []Provider{result.Estimates[0].Provider, result.Estimates[1].Provider, result.Estimates[2].Provider}
	want := []Provider{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPriceScenarios(t *testing.T) {
	est := project(t, estimate.Input{Category: benchmarks.CategorySaaSB2C, TargetMAU: 20000, Features: []string{"auth", "search"}})
	engine := NewEngine()

	engine.PriceScenarios(est)

	cheapest, _ := engine.Price(est).Cheapest()
	moderate := est.Scenarios.Moderate.MonthlyCostUSD
	if moderate == nil || !moderate.Equal(cheapest.MonthlyTotal) {
		t.Errorf("moderate cost = %v, want %s", moderate, cheapest.MonthlyTotal)
	}

	c := est.Scenarios.Conservative.MonthlyCostUSD
	o := est.Scenarios.Optimistic.MonthlyCostUSD
	if c == nil || o == nil {
		t.Fatal("scenario costs were not backfilled")
	}
	if c.GreaterThan(*moderate) || moderate.GreaterThan(*o) {
		t.Errorf("scenario costs not ordered: %s, %s, %s", c, moderate, o)
	}
}

func TestPlanetScaleIsListedButNotPriced(t *testing.T) {
	tiers := PlanetScaleTiers()
	if len(tiers) == 0 {
		t.Fatal("PlanetScale table is empty")
	}
	tiers["mutated"] = PlanetScaleTier{}
	if _, ok := PlanetScaleTiers()["mutated"]; ok {
		t.Error("PlanetScaleTiers returned a shared map")
	}

	for _, p := range NewEngine().Providers() {
		if p == ProviderPlanetScale {
			t.Error("planetscale must not be priced")
		}
	}
}
