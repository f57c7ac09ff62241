package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"capcost/core/benchmarks"
	"capcost/core/classifier"
	"capcost/core/estimate"
	"capcost/core/pricing"
)

// DirectRequest projects explicit input without classification
type DirectRequest struct {
	estimate.Input

	// Timeline adds month 1, 6 and 12 projections
	Timeline bool `json:"timeline,omitempty"`
}

// DirectResponse is the result of EstimateDirect
type DirectResponse struct {
	Estimate *estimate.Result `json:"estimate"`
	Pricing  *pricing.Result  `json:"pricing"`
	Timeline *Timeline        `json:"timeline,omitempty"`
}

// TargetUsers are the MAU goals of a described product
type TargetUsers struct {
	Month6  int64 `json:"month6"`
	Month12 int64 `json:"month12"`
}

// DescriptionRequest estimates a product from its free-text description
type DescriptionRequest struct {
	Description string            `json:"description"`
	TargetUsers TargetUsers       `json:"targetUsers"`
	Region      benchmarks.Region `json:"region"`

	// ReferenceApps are names or domains of comparable products
	ReferenceApps []string `json:"referenceApps,omitempty"`
}

// DescriptionResponse is the result of Estimate
type DescriptionResponse struct {
	Analysis *classifier.Analysis `json:"analysis"`
	Estimate *estimate.Result     `json:"estimate"`
	Pricing  *pricing.Result      `json:"pricing"`
	Insights *classifier.Insights `json:"insights"`
	Timeline *Timeline            `json:"timeline"`

	// ReferenceMatch is the benchmark closest to the reference apps
	ReferenceMatch *ReferenceMatch `json:"referenceMatch,omitempty"`

	// Confidence is the minimum of classification and projection confidence
	Confidence      float64 `json:"confidence"`
	ConfidenceLevel string  `json:"confidenceLevel"`
}

// ReferenceMatch names the benchmark the reference apps resemble
type ReferenceMatch struct {
	Category benchmarks.Category `json:"category"`
	Name     string              `json:"name"`
	Keywords []string            `json:"keywords"`
}

// TimelinePoint summarizes one growth horizon
type TimelinePoint struct {
	MAU               int64           `json:"mau"`
	RequestsPerSecond float64         `json:"requestsPerSecond"`
	StorageGB         float64         `json:"storageGB"`
	EstimatedCostUSD  decimal.Decimal `json:"estimatedCostUSD"`
}

// Timeline summarizes growth at month 1, 6 and 12
type Timeline struct {
	GrowthRate float64       `json:"growthRate"`
	Month1     TimelinePoint `json:"month1"`
	Month6     TimelinePoint `json:"month6"`
	Month12    TimelinePoint `json:"month12"`
}

// Health reports service status
type Health struct {
	Status              string    `json:"status"`
	ClassifierAvailable bool      `json:"classifierAvailable"`
	Timestamp           time.Time `json:"timestamp"`
}
