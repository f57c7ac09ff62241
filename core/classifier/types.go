// Package classifier maps free-text product descriptions to a benchmark
// category and a feature list.
//
// The external classifier is reached through the Classifier interface. The
// Resolver makes the two-branch decision between a validated primary answer
// and the deterministic KeywordClassifier; results of the two are never mixed.
package classifier

import (
	"context"

	"capcost/core/benchmarks"
	"capcost/internal/errors"
)

// ErrClassification matches any classifier failure
var ErrClassification = &errors.Error{Type: errors.TypeClassification}

// ErrMalformedOutput matches classifier answers that could not be decoded
var ErrMalformedOutput = errors.New(errors.TypeClassification, "malformed classifier output")

// Source names the branch that produced an analysis
type Source string

const (
	SourceGemini  Source = "gemini"
	SourceKeyword Source = "keyword"
)

// ExtractedInfo is optional context the classifier noticed in the text
type ExtractedInfo struct {
	TargetAudience    string   `json:"targetAudience,omitempty"`
	Vertical          string   `json:"vertical,omitempty"`
	SimilarApps       []string `json:"similarApps,omitempty"`
	KeyDifferentiator string   `json:"keyDifferentiator,omitempty"`
}

// Analysis is the structured result of classifying a description
type Analysis struct {
	Category          benchmarks.Category `json:"appType"`
	Confidence        float64             `json:"confidence"`
	DetectedFeatures  []string            `json:"detectedFeatures"`
	SuggestedFeatures []string            `json:"suggestedFeatures"`
	ExtractedInfo     ExtractedInfo       `json:"extractedInfo"`
	Reasoning         string              `json:"reasoning"`
	Source            Source              `json:"source"`

	// Cached is set when the analysis was served from the cache
	Cached bool `json:"cached,omitempty"`
}

// Features returns detected then suggested features without duplicates
func (a *Analysis) Features() []string {
	seen := make(map[string]bool, len(a.DetectedFeatures)+len(a.SuggestedFeatures))
	out := make([]string, 0, len(a.DetectedFeatures)+len(a.SuggestedFeatures))
	for _, list := range [][]string{a.DetectedFeatures, a.SuggestedFeatures} {
		for _, f := range list {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// HasFeature reports whether f was detected
func (a *Analysis) HasFeature(f string) bool {
	for _, d := range a.DetectedFeatures {
		if d == f {
			return true
		}
	}
	return false
}

func (a *Analysis) clone() *Analysis {
	c := *a
	c.DetectedFeatures = append([]string(nil), a.DetectedFeatures...)
	c.SuggestedFeatures = append([]string(nil), a.SuggestedFeatures...)
	c.ExtractedInfo.SimilarApps = append([]string(nil), a.ExtractedInfo.SimilarApps...)
	return &c
}

// Insights are qualitative notes attached to a description estimate
type Insights struct {
	Insights              []string `json:"insights"`
	Risks                 []string `json:"risks"`
	Recommendations       []string `json:"recommendations"`
	ScalingConsiderations []string `json:"scalingConsiderations"`
}

// Classifier maps a description to an analysis.
// Implementations may perform network I/O and must honor ctx.
type Classifier interface {
	Classify(ctx context.Context, description string) (*Analysis, error)

	// Available reports whether the classifier is configured to answer
	Available() bool
}

// Advisor produces insights for a classified description
type Advisor interface {
	Advise(ctx context.Context, description string, category benchmarks.Category, mau int64) (*Insights, error)
}
