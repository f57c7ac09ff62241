package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"capcost/core/estimate"
	p "capcost/core/pricing/primitives"
)

// Calculator prices an estimate on one provider
type Calculator interface {
	// Provider returns the provider id
	Provider() Provider

	// Price computes the monthly cost. It must not fail or mutate the estimate.
	Price(est *estimate.Result) CloudPricing
}

// CalculatorFunc adapts a function to Calculator
type CalculatorFunc struct {
	ID Provider
	Fn func(est *estimate.Result) CloudPricing
}

// Provider returns the provider id
func (c CalculatorFunc) Provider() Provider { return c.ID }

// Price calls Fn
func (c CalculatorFunc) Price(est *estimate.Result) CloudPricing { return c.Fn(est) }

// DefaultCalculators returns the built-in providers in listing order
func DefaultCalculators() []Calculator {
	return []Calculator{
		CalculatorFunc{ID: ProviderVercel, Fn: priceVercel},
		CalculatorFunc{ID: ProviderRailway, Fn: priceRailway},
		CalculatorFunc{ID: ProviderSupabase, Fn: priceSupabase},
		CalculatorFunc{ID: ProviderRender, Fn: priceRender},
		CalculatorFunc{ID: ProviderAWS, Fn: priceAWS},
	}
}

// VercelTierFor selects the Vercel plan
func VercelTierFor(est *estimate.Result) string {
	switch {
	case est.Requests.MonthlyTotal > 10_000_000 || est.Bandwidth.MonthlyGB > 1000:
		return TierEnterprise
	case est.Requests.MonthlyTotal > 100_000 || est.Bandwidth.MonthlyGB > 100:
		return TierPro
	default:
		return TierHobby
	}
}

func priceVercel(est *estimate.Result) CloudPricing {
	tier := VercelTierFor(est)
	t := vercelTiers[tier]

	functions := p.PerMillion(est.Requests.MonthlyTotal, t.FunctionsPerMillion)
	egress := p.FreeTier(est.Bandwidth.MonthlyGB, t.IncludedGB, t.BandwidthPerGB)

	// No database or object storage; priced as external services
	database := decimal.Zero
	if est.Storage.DatabaseGB > 5 {
		database = vercelExternalDB
	}

	var notes []string
	if tier == TierHobby {
		notes = append(notes, "Free tier, limited to personal projects")
	}
	notes = append(notes, "Does not include a database (use Supabase, Neon or PlanetScale)")
	if est.Storage.MediaStorageGB > 0 {
		notes = append(notes, "Media storage via Cloudflare R2 or S3")
	}

	return costs{
		compute:   t.Base,
		database:  database,
		storage:   p.PerUnit(est.Storage.MediaStorageGB, vercelObjectStorage),
		bandwidth: functions.Add(egress),
		other:     decimal.Zero,
	}.finish(ProviderVercel, "Vercel", tier, notes)
}

// RailwayTierFor selects the Railway plan
func RailwayTierFor(est *estimate.Result) string {
	if est.Requests.AvgPerSecond > 10 {
		return TierPro
	}
	return TierHobby
}

// railwayConcurrentPerGB is how many concurrent users one GB of RAM serves
const railwayConcurrentPerGB = 500

func priceRailway(est *estimate.Result) CloudPricing {
	tier := RailwayTierFor(est)
	t := railwayTiers[tier]

	ramGB := math.Max(0.5, float64(est.Users.ConcurrentPeak)/railwayConcurrentPerGB)

	database := railwayPostgresSmall
	if est.Storage.DatabaseGB > 1 {
		database = railwayPostgresBase.Add(p.PerUnit(est.Storage.DatabaseGB, railwayPostgresPerGB))
	}

	return costs{
		compute:   t.Base.Add(p.Hourly(ramGB, t.RAMPerGBHour)),
		database:  database,
		storage:   p.PerUnit(est.Storage.MediaStorageGB, railwayVolumePerGB),
		bandwidth: p.PerUnit(est.Bandwidth.MonthlyGB, t.EgressPerGB),
		other:     decimal.Zero,
	}.finish(ProviderRailway, "Railway", tier, []string{
		"Includes PostgreSQL add-on",
		"Usage-based pricing (RAM + CPU)",
		"Good option for MVPs and smaller projects",
	})
}

// SupabaseTierFor selects the Supabase plan
func SupabaseTierFor(est *estimate.Result) string {
	switch {
	case est.Storage.DatabaseGB > 8 || est.Bandwidth.MonthlyGB > 250:
		return TierTeam
	case est.Storage.DatabaseGB > 0.5 || est.Bandwidth.MonthlyGB > 2:
		return TierPro
	default:
		return TierFree
	}
}

// Supabase bills one plan fee; the breakdown apportions it for display
const (
	supabasePlanShare    = 0.4
	supabaseOverageShare = 0.5
)

func priceSupabase(est *estimate.Result) CloudPricing {
	tier := SupabaseTierFor(est)
	t := supabaseTiers[tier]

	total := t.Base
	if tier != TierFree {
		total = p.Sum(total,
			p.FreeTier(est.Storage.DatabaseGB, t.IncludedDBGB, t.ExtraDBPerGB),
			p.FreeTier(est.Storage.MediaStorageGB, t.IncludedStorageGB, t.ExtraStoragePerGB),
			p.FreeTier(est.Bandwidth.MonthlyGB, t.IncludedBandwidthGB, t.ExtraBandwidthPerGB),
		)
	}
	overage := total.Sub(t.Base)

	last := "Includes daily backups"
	if tier == TierFree {
		last = "Free tier limits may require a quick upgrade"
	}

	return CloudPricing{
		Provider:     ProviderSupabase,
		Name:         "Supabase",
		Tier:         tier,
		MonthlyTotal: p.Cents(total),
		Breakdown: Breakdown{
			Compute:   p.Cents(p.Share(t.Base, supabasePlanShare)),
			Database:  p.Cents(p.Share(t.Base, supabasePlanShare)),
			Storage:   p.Cents(p.Share(overage, supabaseOverageShare)),
			Bandwidth: p.Cents(p.Share(overage, supabaseOverageShare)),
			Other:     decimal.Zero,
		},
		Notes: []string{
			"All-in-one: Auth, Database, Storage, Realtime",
			"Great for MVPs and startups",
			last,
		},
	}
}

// RenderTierFor selects the Render plan
func RenderTierFor(est *estimate.Result) string {
	if est.Requests.AvgPerSecond > 5 {
		return TierStandard
	}
	return TierStarter
}

func priceRender(est *estimate.Result) CloudPricing {
	tier := RenderTierFor(est)
	t := renderTiers[tier]

	database := t.DBBase
	if est.Storage.DatabaseGB > 1 {
		database = database.Add(p.PerUnit(est.Storage.DatabaseGB, renderDBPerGB))
	}

	return costs{
		compute:   t.ServiceBase,
		database:  database,
		storage:   p.PerUnit(est.Storage.MediaStorageGB, renderDiskPerGB),
		bandwidth: p.FreeTier(est.Bandwidth.MonthlyGB, t.IncludedGB, t.BandwidthPerGB),
		other:     decimal.Zero,
	}.finish(ProviderRender, "Render", tier, []string{
		"Simple setup, good DX",
		"Managed PostgreSQL included",
		"Auto-scaling available on paid tier",
	})
}

// AWSTierFor selects the AWS footprint
func AWSTierFor(est *estimate.Result) string {
	switch {
	case est.Requests.AvgPerSecond > 50 || est.Users.ConcurrentPeak > 2000:
		return TierLarge
	case est.Requests.AvgPerSecond > 10 || est.Users.ConcurrentPeak > 500:
		return TierMedium
	default:
		return TierSmall
	}
}

// awsIncludedDBGB is the RDS volume included in the instance price
const awsIncludedDBGB = 20

func priceAWS(est *estimate.Result) CloudPricing {
	tier := AWSTierFor(est)
	t := awsTiers[tier]

	return costs{
		compute:   t.EC2,
		database:  t.RDS.Add(p.FreeTier(est.Storage.DatabaseGB, awsIncludedDBGB, awsRDSExtraPerGB)),
		storage:   p.PerUnit(est.Storage.MediaStorageGB, t.S3PerGB),
		bandwidth: p.PerUnit(est.Bandwidth.MonthlyGB, t.CloudFrontPerGB),
		other:     awsOther,
	}.finish(ProviderAWS, "AWS (DIY)", tier, []string{
		"Maximum flexibility and control",
		"Requires more DevOps knowledge",
		"Free tier available for new accounts (12 months)",
		"Consider AWS Amplify to simplify",
	})
}
