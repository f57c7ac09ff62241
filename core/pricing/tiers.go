package pricing

import (
	"github.com/shopspring/decimal"

	p "capcost/core/pricing/primitives"
)

// Provider identifies a hosting provider
type Provider string

const (
	ProviderVercel      Provider = "vercel"
	ProviderRailway     Provider = "railway"
	ProviderSupabase    Provider = "supabase"
	ProviderRender      Provider = "render"
	ProviderAWS         Provider = "aws"
	ProviderPlanetScale Provider = "planetscale"
)

// Tier names
const (
	TierHobby      = "hobby"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
	TierFree       = "free"
	TierTeam       = "team"
	TierStarter    = "starter"
	TierStandard   = "standard"
	TierSmall      = "small"
	TierMedium     = "medium"
	TierLarge      = "large"
	TierScaler     = "scaler"
)

// Reference tables, 2024 list prices in USD per month.
// They are compiled in and never change at runtime.

// VercelTier is a Vercel plan
type VercelTier struct {
	Base                decimal.Decimal
	FunctionsPerMillion decimal.Decimal
	BandwidthPerGB      decimal.Decimal
	IncludedGB          float64
}

// RailwayTier is a Railway plan; compute is billed per GB-hour of RAM
type RailwayTier struct {
	Base         decimal.Decimal
	RAMPerGBHour decimal.Decimal
	CPUPerVCPUHr decimal.Decimal
	EgressPerGB  decimal.Decimal
}

// AWSTier is a fixed-size EC2 plus RDS footprint
type AWSTier struct {
	EC2             decimal.Decimal
	RDS             decimal.Decimal
	S3PerGB         decimal.Decimal
	CloudFrontPerGB decimal.Decimal
}

// SupabaseTier is a Supabase plan with included allowances
type SupabaseTier struct {
	Base                decimal.Decimal
	IncludedDBGB        float64
	IncludedStorageGB   float64
	IncludedBandwidthGB float64
	ExtraDBPerGB        decimal.Decimal
	ExtraStoragePerGB   decimal.Decimal
	ExtraBandwidthPerGB decimal.Decimal
}

// RenderTier is a Render web service plus managed PostgreSQL
type RenderTier struct {
	ServiceBase    decimal.Decimal
	DBBase         decimal.Decimal
	BandwidthPerGB decimal.Decimal
	IncludedGB     float64
}

// PlanetScaleTier is a PlanetScale database plan. The table is kept for
// reference; no calculator prices it.
type PlanetScaleTier struct {
	Base           decimal.Decimal
	IncludedGB     float64
	RowsRead       int64
	RowsWritten    int64
	ExtraStorageGB decimal.Decimal
}

var vercelTiers = map[string]VercelTier{
	TierHobby: {
		Base:                decimal.Zero,
		FunctionsPerMillion: decimal.Zero,
		BandwidthPerGB:      decimal.Zero,
		IncludedGB:          100,
	},
	TierPro: {
		Base:                p.MustUSD("20"),
		FunctionsPerMillion: p.MustUSD("0.40"),
		BandwidthPerGB:      p.MustUSD("0.15"),
		IncludedGB:          1000,
	},
	TierEnterprise: {
		Base:                p.MustUSD("500"),
		FunctionsPerMillion: p.MustUSD("0.20"),
		BandwidthPerGB:      p.MustUSD("0.10"),
		IncludedGB:          5000,
	},
}

var railwayTiers = map[string]RailwayTier{
	TierHobby: {
		Base:         p.MustUSD("5"),
		RAMPerGBHour: p.MustUSD("0.000463"),
		CPUPerVCPUHr: p.MustUSD("0.000231"),
		EgressPerGB:  p.MustUSD("0.10"),
	},
	TierPro: {
		Base:         p.MustUSD("20"),
		RAMPerGBHour: p.MustUSD("0.000463"),
		CPUPerVCPUHr: p.MustUSD("0.000231"),
		EgressPerGB:  p.MustUSD("0.10"),
	},
}

var awsTiers = map[string]AWSTier{
	TierSmall: {
		EC2:             p.MustUSD("15"), // t3.small
		RDS:             p.MustUSD("15"), // db.t3.micro
		S3PerGB:         p.MustUSD("0.023"),
		CloudFrontPerGB: p.MustUSD("0.085"),
	},
	TierMedium: {
		EC2:             p.MustUSD("50"),
		RDS:             p.MustUSD("50"),
		S3PerGB:         p.MustUSD("0.023"),
		CloudFrontPerGB: p.MustUSD("0.085"),
	},
	TierLarge: {
		EC2:             p.MustUSD("150"),
		RDS:             p.MustUSD("150"),
		S3PerGB:         p.MustUSD("0.023"),
		CloudFrontPerGB: p.MustUSD("0.075"),
	},
}

var supabaseTiers = map[string]SupabaseTier{
	TierFree: {
		Base:                decimal.Zero,
		IncludedDBGB:        0.5,
		IncludedStorageGB:   1,
		IncludedBandwidthGB: 2,
	},
	TierPro: {
		Base:                p.MustUSD("25"),
		IncludedDBGB:        8,
		IncludedStorageGB:   100,
		IncludedBandwidthGB: 250,
		ExtraDBPerGB:        p.MustUSD("0.125"),
		ExtraStoragePerGB:   p.MustUSD("0.021"),
		ExtraBandwidthPerGB: p.MustUSD("0.09"),
	},
	TierTeam: {
		Base:                p.MustUSD("599"),
		IncludedDBGB:        50,
		IncludedStorageGB:   500,
		IncludedBandwidthGB: 1000,
		ExtraDBPerGB:        p.MustUSD("0.125"),
		ExtraStoragePerGB:   p.MustUSD("0.021"),
		ExtraBandwidthPerGB: p.MustUSD("0.09"),
	},
}

var renderTiers = map[string]RenderTier{
	TierStarter: {
		ServiceBase:    p.MustUSD("7"),
		DBBase:         p.MustUSD("7"),
		BandwidthPerGB: p.MustUSD("0.10"),
		IncludedGB:     100,
	},
	TierStandard: {
		ServiceBase:    p.MustUSD("25"),
		DBBase:         p.MustUSD("25"),
		BandwidthPerGB: p.MustUSD("0.10"),
		IncludedGB:     500,
	},
}

var planetScaleTiers = map[string]PlanetScaleTier{
	TierHobby: {
		Base:        decimal.Zero,
		IncludedGB:  5,
		RowsRead:    1_000_000_000,
		RowsWritten: 10_000_000,
	},
	TierScaler: {
		Base:           p.MustUSD("29"),
		IncludedGB:     10,
		RowsRead:       1_000_000_000,
		RowsWritten:    10_000_000,
		ExtraStorageGB: p.MustUSD("2.5"),
	},
}

// Flat add-on rates used by the calculators
var (
	vercelExternalDB     = p.MustUSD("25")   // Supabase or Neon once past 5 GB
	vercelObjectStorage  = p.MustUSD("0.02") // R2 or S3
	railwayVolumePerGB   = p.MustUSD("0.10")
	railwayPostgresBase  = p.MustUSD("10")
	railwayPostgresPerGB = p.MustUSD("0.5")
	railwayPostgresSmall = p.MustUSD("5")
	renderDBPerGB        = p.MustUSD("2")
	renderDiskPerGB      = p.MustUSD("0.15")
	awsRDSExtraPerGB     = p.MustUSD("0.1")
	awsOther             = p.MustUSD("10") // Route53, CloudWatch
)

// PlanetScaleTiers returns the PlanetScale reference table
func PlanetScaleTiers() map[string]PlanetScaleTier {
	out := make(map[string]PlanetScaleTier, len(planetScaleTiers))
	for k, v := range planetScaleTiers {
		out[k] = v
	}
	return out
}
