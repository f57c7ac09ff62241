package benchmarks

import (
	"math"
	"strings"

	"capcost/internal/errors"
)

// ErrCategoryNotFound matches any lookup of an unknown category
var ErrCategoryNotFound = errors.New(errors.TypeNotFound, "category not found")

// ErrRegionNotFound matches any lookup of an unknown region
var ErrRegionNotFound = errors.New(errors.TypeNotFound, "region not found")

// featureDamping softens stacked feature multipliers
const featureDamping = 0.7

// Catalog is an indexed, validated set of reference tables
type Catalog struct {
	benchmarks []Benchmark
	features   []Feature
	regions    []RegionProfile

	byCategory map[Category]int
	byFeature  map[string]int
	byRegion   map[Region]int
}

// New validates the tables and indexes them.
// The slices are copied; later changes by the caller are not observed.
func New(benchmarks []Benchmark, features []Feature, regions []RegionProfile) (*Catalog, error) {
	c := &Catalog{
		benchmarks: append([]Benchmark(nil), benchmarks...),
		features:   append([]Feature(nil), features...),
		regions:    append([]RegionProfile(nil), regions...),
		byCategory: make(map[Category]int, len(benchmarks)),
		byFeature:  make(map[string]int, len(features)),
		byRegion:   make(map[Region]int, len(regions)),
	}

	for i, b := range c.benchmarks {
		if b.Category == "" {
			return nil, errors.Newf(errors.TypeConfig, "benchmark %d has no category", i)
		}
		if _, dup := c.byCategory[b.Category]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate benchmark %s", b.Category)
		}
		if !validRatio(b.ReadRatio) {
			return nil, errors.Newf(errors.TypeConfig, "benchmark %s: read ratio %v out of (0,1]", b.Category, b.ReadRatio)
		}
		if !validRatio(b.DAUMAURatio) {
			return nil, errors.Newf(errors.TypeConfig, "benchmark %s: DAU/MAU ratio %v out of (0,1]", b.Category, b.DAUMAURatio)
		}
		if b.PeakMultiplier < 1 {
			return nil, errors.Newf(errors.TypeConfig, "benchmark %s: peak multiplier %v below 1", b.Category, b.PeakMultiplier)
		}
		c.byCategory[b.Category] = i
	}

	for i, f := range c.features {
		if f.ID == "" {
			return nil, errors.Newf(errors.TypeConfig, "feature %d has no id", i)
		}
		if _, dup := c.byFeature[f.ID]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate feature %s", f.ID)
		}
		if f.ImpactOnRequests < 1 || f.ImpactOnStorage < 1 || f.ImpactOnBandwidth < 1 {
			return nil, errors.Newf(errors.TypeConfig, "feature %s: multipliers must be >= 1", f.ID)
		}
		c.byFeature[f.ID] = i
	}

	for i, r := range c.regions {
		if _, dup := c.byRegion[r.Region]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate region %s", r.Region)
		}
		c.byRegion[r.Region] = i
	}

	return c, nil
}

func validRatio(v float64) bool {
	return v > 0 && v <= 1
}

var defaultCatalog *Catalog

func init() {
	c, err := New(defaultBenchmarks, defaultFeatures, defaultRegions)
	if err != nil {
		panic("benchmarks: invalid built-in tables: " + err.Error())
	}
	defaultCatalog = c
}

// Default returns the built-in catalog
func Default() *Catalog {
	return defaultCatalog
}

// Lookup returns the benchmark for a category
func (c *Catalog) Lookup(category Category) (*Benchmark, error) {
	i, ok := c.byCategory[category]
	if !ok {
		return nil, errors.Wrapf(errors.TypeNotFound, ErrCategoryNotFound, "unknown category %q", category).
			WithContext("category", string(category))
	}
	b := c.benchmarks[i]
	return &b, nil
}

// Benchmarks returns every benchmark in catalog order
func (c *Catalog) Benchmarks() []Benchmark {
	return append([]Benchmark(nil), c.benchmarks...)
}

// Categories lists the category summaries in catalog order
func (c *Catalog) Categories() []CategorySummary {
	out := make([]CategorySummary, 0, len(c.benchmarks))
	for _, b := range c.benchmarks {
		out = append(out, CategorySummary{ID: b.Category, Name: b.Name, Description: b.Description})
	}
	return out
}

// ParseCategory converts an id into a known Category
func (c *Catalog) ParseCategory(id string) (Category, bool) {
	cat := Category(strings.ToLower(strings.TrimSpace(id)))
	_, ok := c.byCategory[cat]
	return cat, ok
}

// Feature returns a feature by id
func (c *Catalog) Feature(id string) (*Feature, bool) {
	i, ok := c.byFeature[id]
	if !ok {
		return nil, false
	}
	f := c.features[i]
	return &f, true
}

// Features returns every feature in catalog order
func (c *Catalog) Features() []Feature {
	return append([]Feature(nil), c.features...)
}

// IsFeature reports whether id names a catalog feature
func (c *Catalog) IsFeature(id string) bool {
	_, ok := c.byFeature[id]
	return ok
}

// FilterFeatures drops unknown and repeated ids, keeping order
func (c *Catalog) FilterFeatures(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !c.IsFeature(id) || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// SimilarBenchmark scores every benchmark against the keywords and returns
// the best match. Ties go to the benchmark listed first.
func (c *Catalog) SimilarBenchmark(keywords []string) (*Benchmark, bool) {
	bestIdx, bestScore := -1, 0
	for i := range c.benchmarks {
		score := similarityScore(&c.benchmarks[i], keywords)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx < 0 {
		return nil, false
	}
	b := c.benchmarks[bestIdx]
	return &b, true
}

func similarityScore(b *Benchmark, keywords []string) int {
	desc := strings.ToLower(b.Description)
	name := strings.ToLower(b.Name)

	score := 0
	for _, raw := range keywords {
		kw := strings.ToLower(strings.TrimSpace(raw))
		if kw == "" {
			continue
		}
		if strings.Contains(desc, kw) {
			score += 2
		}
		if strings.Contains(name, kw) {
			score += 3
		}
		if containsFold(b.RealWorldExamples, kw) {
			score += 5
		}
		if containsFold(b.TypicalFeatures, kw) {
			score++
		}
	}
	return score
}

func containsFold(values []string, kw string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), kw) {
			return true
		}
	}
	return false
}

// FeatureImpact composes the damped multipliers of the known features.
// An empty or all-unknown set yields NoImpact.
func (c *Catalog) FeatureImpact(ids []string) Impact {
	requests, storage, bandwidth := 1.0, 1.0, 1.0
	for _, id := range ids {
		f, ok := c.Feature(id)
		if !ok {
			continue
		}
		requests *= math.Pow(f.ImpactOnRequests, featureDamping)
		storage *= math.Pow(f.ImpactOnStorage, featureDamping)
		bandwidth *= math.Pow(f.ImpactOnBandwidth, featureDamping)
	}
	return Impact{
		Requests:  round2(requests),
		Storage:   round2(storage),
		Bandwidth: round2(bandwidth),
	}
}

// RegionProfile returns the display profile of a region
func (c *Catalog) RegionProfile(region Region) (RegionProfile, error) {
	i, ok := c.byRegion[region]
	if !ok {
		return RegionProfile{}, errors.Wrapf(errors.TypeNotFound, ErrRegionNotFound, "unknown region %q", region).
			WithContext("region", string(region))
	}
	return c.regions[i], nil
}

// Regions returns every region profile in catalog order
func (c *Catalog) Regions() []RegionProfile {
	return append([]RegionProfile(nil), c.regions...)
}

// IsRegion reports whether region has a profile
func (c *Catalog) IsRegion(region Region) bool {
	_, ok := c.byRegion[region]
	return ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
