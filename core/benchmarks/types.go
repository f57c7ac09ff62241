// Package benchmarks holds the static usage reference tables:
// per-category benchmarks, the feature impact table and region profiles.
//
// The tables are built once and shared read-only. Nothing in this package
// mutates a Catalog after New returns, so concurrent readers never race.
package benchmarks

// Category identifies an application benchmark
type Category string

const (
	CategoryContentPlatform Category = "content-platform"
	CategoryMarketplace     Category = "marketplace"
	CategorySaaSB2B         Category = "saas-b2b"
	CategorySaaSB2C         Category = "saas-b2c"
	CategoryECommerce       Category = "e-commerce"
	CategorySocialNetwork   Category = "social-network"
	CategoryFintech         Category = "fintech"
	CategoryEdtech          Category = "edtech"
	CategoryHealthtech      Category = "healthtech"
	CategoryDeveloperTools  Category = "developer-tools"
)

// String returns the category id
func (c Category) String() string {
	return string(c)
}

// Region is the primary operating region of a product
type Region string

const (
	RegionBrazil Region = "brazil"
	RegionLatam  Region = "latam"
	RegionUS     Region = "us"
	RegionEurope Region = "europe"
	RegionGlobal Region = "global"
)

// Benchmark describes typical usage of one application category
type Benchmark struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`

	// ReadRatio is the fraction of requests that are reads (0.85 = 85% reads)
	ReadRatio float64 `json:"readWriteRatio"`

	// DAUMAURatio is DAU / MAU
	DAUMAURatio float64 `json:"dauMauRatio"`

	// PeakMultiplier is peak traffic over average traffic
	PeakMultiplier float64 `json:"peakMultiplier"`

	AvgRequestsPerDAU      float64 `json:"avgRequestsPerDAU"`
	AvgSessionMinutes      float64 `json:"avgSessionDuration"`
	AvgSessionsPerDay      float64 `json:"avgSessionsPerDay"`
	AvgPageViewsPerSession float64 `json:"avgPageViewsPerSession"`

	// AvgPageSizeKB is the average transferred page size
	AvgPageSizeKB float64 `json:"avgPageSize"`

	// StoragePerUserMB covers profile and preference data
	StoragePerUserMB float64 `json:"storagePerUser"`

	// StoragePerContentItemMB covers one post, product or document
	StoragePerContentItemMB float64 `json:"storagePerContentItem"`
	AvgContentItemsPerUser  float64 `json:"avgContentItemsPerUser"`

	TypicalFeatures   []string `json:"typicalFeatures"`
	RealWorldExamples []string `json:"realWorldExamples"`
	DataSource        string   `json:"dataSource"`
}

// Feature is an optional product capability and its load impact.
// A multiplier of 1.0 means no impact.
type Feature struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	ImpactOnRequests    float64 `json:"impactOnRequests"`
	ImpactOnStorage     float64 `json:"impactOnStorage"`
	ImpactOnBandwidth   float64 `json:"impactOnBandwidth"`
	RequiresRealtime    bool    `json:"requiresRealtime,omitempty"`
	RequiresMediaUpload bool    `json:"requiresMediaUpload,omitempty"`
}

// Impact is the composed multiplier of a feature set
type Impact struct {
	Requests  float64 `json:"requestsMultiplier"`
	Storage   float64 `json:"storageMultiplier"`
	Bandwidth float64 `json:"bandwidthMultiplier"`
}

// NoImpact is the identity element of feature composition
var NoImpact = Impact{Requests: 1, Storage: 1, Bandwidth: 1}

// HourWindow is a local-time window, End exclusive
type HourWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// RegionProfile is display context for a region.
// It is not folded into the numeric model.
type RegionProfile struct {
	Region                  Region     `json:"region"`
	PeakHours               HourWindow `json:"peakHours"`
	Timezone                string     `json:"timezone"`
	BandwidthCostMultiplier float64    `json:"bandwidthCostMultiplier"`
	Latency                 string     `json:"latencyRequirement"`
}

// CategorySummary is the listing view of a benchmark
type CategorySummary struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}
