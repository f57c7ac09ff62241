// Package confidence - Confidence values of an estimate
// Aggregate confidence = MIN(component confidence)
// This ensures a guessed classification is never hidden behind a direct projection.
package confidence

const (
	// Direct is reported for projections from explicit input
	Direct = 0.75

	// FallbackCap bounds confidence whenever a category was substituted
	FallbackCap = 0.5

	// KeywordBase is the keyword scorer's confidence with no evidence
	KeywordBase = 0.5

	// KeywordMax bounds the keyword scorer
	KeywordMax = 0.7
)

// Thresholds for ConfidenceLevel
const (
	ConfidenceHigh   = 0.9
	ConfidenceMedium = 0.7
	ConfidenceLow    = 0.5
	ConfidenceNone   = 0.0
)

// Clamp limits confidence to [0, 1]
func Clamp(confidence float64) float64 {
	switch {
	case confidence < 0:
		return 0
	case confidence > 1:
		return 1
	default:
		return confidence
	}
}

// Cap limits confidence to at most limit
func Cap(confidence, limit float64) float64 {
	if confidence > limit {
		return limit
	}
	return confidence
}

// Keyword converts an accumulated keyword score to confidence
func Keyword(score float64) float64 {
	return Cap(KeywordBase+score, KeywordMax)
}

// AggregateConfidence returns the minimum confidence (pessimistic)
func AggregateConfidence(values ...float64) float64 {
	if len(values) == 0 {
		return ConfidenceNone
	}

	min := 1.0
	for _, v := range values {
		if v < min {
			min = v
		}
	}
	return Clamp(min)
}

// ConfidenceLevel returns a human-readable level
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= ConfidenceHigh:
		return "high"
	case confidence >= ConfidenceMedium:
		return "medium"
	case confidence >= ConfidenceLow:
		return "low"
	default:
		return "unknown"
	}
}
