package pricing

import (
	"fmt"

	"capcost/core/estimate"
)

// Profile is the size class of a project
type Profile string

const (
	ProfileSmall  Profile = "small"
	ProfileMedium Profile = "medium"
	ProfileLarge  Profile = "large"

	// ProfileOther covers low MAU projects whose traffic is not small
	ProfileOther Profile = "other"
)

const (
	smallMAU          = 1000
	largeMAU          = 50000
	smallAvgPerSecond = 1

	// realtimeWritePercent is the write share treated as a realtime proxy
	realtimeWritePercent = 30

	// heavyMediaGB is the media volume that favours raw object storage
	heavyMediaGB = 50
)

// Recommendation is the chosen provider and why
type Recommendation struct {
	Provider  Provider `json:"provider"`
	Rationale string   `json:"rationale"`
	Profile   Profile  `json:"profile"`
}

// Classify returns the size class of an estimate
func Classify(est *estimate.Result) Profile {
	mau := est.Users.MAU
	switch {
	case mau < smallMAU && est.Requests.AvgPerSecond < smallAvgPerSecond:
		return ProfileSmall
	case mau >= smallMAU && mau < largeMAU:
		return ProfileMedium
	case mau >= largeMAU:
		return ProfileLarge
	default:
		return ProfileOther
	}
}

// Recommend picks one provider. The first matching rule wins; the last
// rule falls back to the cheapest entry of sorted.
func Recommend(est *estimate.Result, sorted []CloudPricing) Recommendation {
	profile := Classify(est)
	needsRealtime := est.Requests.WritePercentage > realtimeWritePercent
	heavyMedia := est.Storage.MediaStorageGB > heavyMediaGB

	switch {
	case profile == ProfileSmall:
		return Recommendation{
			Provider: ProviderSupabase,
			Profile:  profile,
			Rationale: "For early-stage projects Supabase offers the best cost-benefit with auth, database, " +
				"storage and realtime included. Start on the free tier and scale as you grow.",
		}
	case profile == ProfileMedium && needsRealtime:
		return Recommendation{
			Provider: ProviderSupabase,
			Profile:  profile,
			Rationale: "Supabase Pro fits your volume and realtime needs. PostgreSQL plus Realtime " +
				"subscriptions serve this use case well.",
		}
	case profile == ProfileMedium && !heavyMedia:
		return Recommendation{
			Provider: ProviderRailway,
			Profile:  profile,
			Rationale: "Railway offers a good cost/simplicity balance for medium projects. Usage-based " +
				"pricing lets costs track real demand.",
		}
	case profile == ProfileLarge || heavyMedia:
		return Recommendation{
			Provider: ProviderAWS,
			Profile:  profile,
			Rationale: "At your volume AWS offers better scalability and long-term cost control. Consider " +
				"managed services (RDS, ElastiCache, S3) to reduce operational overhead.",
		}
	}

	if len(sorted) == 0 {
		return Recommendation{Profile: profile}
	}
	cheapest := sorted[0]
	return Recommendation{
		Provider: cheapest.Provider,
		Profile:  profile,
		Rationale: fmt.Sprintf("%s is the most economical option for your current use case. "+
			"Monitor growth and re-evaluate in 3-6 months.", cheapest.Name),
	}
}
