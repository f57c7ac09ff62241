package classifier

import (
	"context"
	"strings"

	"capcost/core/benchmarks"
	"capcost/core/confidence"
)

const keywordReasoning = "Basic keyword analysis (fallback)"

type keywordBoost struct {
	keyword  string
	category benchmarks.Category
	boost    float64
}

// categoryKeywords is scanned in order; every match adds its boost.
var categoryKeywords = []keywordBoost{
	{"marketplace", benchmarks.CategoryMarketplace, 0.3},
	{"airbnb", benchmarks.CategoryMarketplace, 0.3},
	{"uber", benchmarks.CategoryMarketplace, 0.3},
	{"e-commerce", benchmarks.CategoryECommerce, 0.3},
	{"ecommerce", benchmarks.CategoryECommerce, 0.3},
	{"loja", benchmarks.CategoryECommerce, 0.2},
	{"online store", benchmarks.CategoryECommerce, 0.2},
	{"blog", benchmarks.CategoryContentPlatform, 0.3},
	{"medium", benchmarks.CategoryContentPlatform, 0.3},
	{"artigos", benchmarks.CategoryContentPlatform, 0.2},
	{"articles", benchmarks.CategoryContentPlatform, 0.2},
	{"rede social", benchmarks.CategorySocialNetwork, 0.3},
	{"social network", benchmarks.CategorySocialNetwork, 0.3},
	{"instagram", benchmarks.CategorySocialNetwork, 0.3},
	{"fintech", benchmarks.CategoryFintech, 0.3},
	{"banco", benchmarks.CategoryFintech, 0.2},
	{"bank", benchmarks.CategoryFintech, 0.2},
	{"pagamento", benchmarks.CategoryFintech, 0.2},
	{"curso", benchmarks.CategoryEdtech, 0.3},
	{"course", benchmarks.CategoryEdtech, 0.3},
	{"educação", benchmarks.CategoryEdtech, 0.2},
	{"education", benchmarks.CategoryEdtech, 0.2},
	{"saúde", benchmarks.CategoryHealthtech, 0.2},
	{"health", benchmarks.CategoryHealthtech, 0.2},
	{"telemedicina", benchmarks.CategoryHealthtech, 0.3},
	{"telemedicine", benchmarks.CategoryHealthtech, 0.3},
	{"notion", benchmarks.CategorySaaSB2B, 0.3},
	{"slack", benchmarks.CategorySaaSB2B, 0.3},
	{"produtividade", benchmarks.CategorySaaSB2B, 0.2},
	{"productivity", benchmarks.CategorySaaSB2B, 0.2},
	{"api", benchmarks.CategoryDeveloperTools, 0.2},
	{"developer", benchmarks.CategoryDeveloperTools, 0.3},
}

type featureKeywords struct {
	feature  string
	keywords []string
}

// auth is always assumed; the rest are appended in this order.
var featureRules = []featureKeywords{
	{"media-upload", []string{"upload", "imagem", "foto", "image", "photo"}},
	{"real-time", []string{"real-time", "tempo real", "colabora", "realtime", "collaborat"}},
	{"search", []string{"busca", "search", "filtro", "filter"}},
	{"chat", []string{"chat", "mensag", "messag"}},
	{"payments", []string{"pagamento", "payment", "stripe"}},
	{"notifications", []string{"notifica"}},
}

// KeywordClassifier is the deterministic fallback. It needs no network
// and always answers.
type KeywordClassifier struct {
	catalog *benchmarks.Catalog
}

// NewKeywordClassifier creates a keyword classifier over catalog
// (nil selects the default catalog).
func NewKeywordClassifier(catalog *benchmarks.Catalog) *KeywordClassifier {
	if catalog == nil {
		catalog = benchmarks.Default()
	}
	return &KeywordClassifier{catalog: catalog}
}

// Available is always true
func (k *KeywordClassifier) Available() bool { return true }

// Classify never fails
func (k *KeywordClassifier) Classify(_ context.Context, description string) (*Analysis, error) {
	return k.Analyze(description), nil
}

// Analyze scores description against the keyword table
func (k *KeywordClassifier) Analyze(description string) *Analysis {
	text := strings.ToLower(description)

	scores := make(map[benchmarks.Category]float64)
	for _, kw := range categoryKeywords {
		if strings.Contains(text, kw.keyword) {
			scores[kw.category] += kw.boost
		}
	}

	category := benchmarks.CategorySaaSB2B
	conf := confidence.KeywordBase
	best := 0.0
	for _, b := range k.catalog.Benchmarks() {
		if s := scores[b.Category]; s > best {
			best = s
			category = b.Category
		}
	}
	if best > 0 {
		conf = confidence.Keyword(best)
	}

	return &Analysis{
		Category:          category,
		Confidence:        conf,
		DetectedFeatures:  detectFeatures(text),
		SuggestedFeatures: []string{},
		Reasoning:         keywordReasoning,
		Source:            SourceKeyword,
	}
}

func detectFeatures(text string) []string {
	features := []string{"auth"}
	for _, rule := range featureRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				features = append(features, rule.feature)
				break
			}
		}
	}
	return features
}
