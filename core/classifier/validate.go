package classifier

import (
	"capcost/core/benchmarks"
	"capcost/core/confidence"
)

// Validate checks a primary analysis against catalog in place. An unknown
// category becomes saas-b2b with confidence capped at 0.5, and unknown
// feature ids are dropped. It reports whether the category was substituted.
func Validate(a *Analysis, catalog *benchmarks.Catalog) bool {
	substituted := false
	if category, ok := catalog.ParseCategory(string(a.Category)); ok {
		a.Category = category
	} else {
		a.Category = benchmarks.CategorySaaSB2B
		a.Confidence = confidence.Cap(a.Confidence, confidence.FallbackCap)
		substituted = true
	}
	a.Confidence = confidence.Clamp(a.Confidence)
	a.DetectedFeatures = catalog.FilterFeatures(a.DetectedFeatures)
	a.SuggestedFeatures = catalog.FilterFeatures(a.SuggestedFeatures)
	return substituted
}
