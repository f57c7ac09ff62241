package classifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"capcost/core/benchmarks"
	"capcost/internal/errors"
)

const (
	DefaultModel         = "gemini-2.5-flash"
	DefaultTimeout       = 15 * time.Second
	DefaultMaxRetries    = 2
	defaultRetryInterval = 250 * time.Millisecond
)

// Generator sends one prompt to a language model and returns its text
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiConfig configures the Gemini classifier
type GeminiConfig struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int

	// RetryInterval is the first backoff interval
	RetryInterval time.Duration
}

func (c *GeminiConfig) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = defaultRetryInterval
	}
}

type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GeminiClassifier classifies descriptions with a Gemini model.
// It implements Classifier and Advisor.
type GeminiClassifier struct {
	gen     Generator
	catalog *benchmarks.Catalog
	cfg     GeminiConfig
}

// NewGemini connects to the Gemini API
func NewGemini(ctx context.Context, cfg GeminiConfig, catalog *benchmarks.Catalog) (*GeminiClassifier, error) {
	if cfg.APIKey == "" {
		return nil, errors.Config("gemini api key is not set")
	}
	cfg.applyDefaults()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "create gemini client", err)
	}
	return NewGeminiWithGenerator(&genaiGenerator{client: client, model: cfg.Model}, cfg, catalog), nil
}

// NewGeminiWithGenerator builds the classifier over any Generator
func NewGeminiWithGenerator(gen Generator, cfg GeminiConfig, catalog *benchmarks.Catalog) *GeminiClassifier {
	if catalog == nil {
		catalog = benchmarks.Default()
	}
	cfg.applyDefaults()
	return &GeminiClassifier{gen: gen, catalog: catalog, cfg: cfg}
}

// Available reports whether a generator is configured
func (g *GeminiClassifier) Available() bool {
	return g != nil && g.gen != nil
}

// Classify asks the model for an analysis. The result is not validated
// against the catalog.
func (g *GeminiClassifier) Classify(ctx context.Context, description string) (*Analysis, error) {
	prompt, err := classifyPrompt(g.catalog, description)
	if err != nil {
		return nil, errors.Internal("build classify prompt", err)
	}

	var a Analysis
	if err := g.call(ctx, prompt, &a); err != nil {
		return nil, err
	}
	a.Source = SourceGemini
	a.Cached = false
	return &a, nil
}

// Advise asks the model for insights on a classified description
func (g *GeminiClassifier) Advise(ctx context.Context, description string, category benchmarks.Category, mau int64) (*Insights, error) {
	var in Insights
	if err := g.call(ctx, advisePrompt(g.catalog, description, category, mau), &in); err != nil {
		return nil, err
	}
	if len(in.Insights) == 0 && len(in.Recommendations) == 0 {
		return nil, ErrMalformedOutput
	}
	return &in, nil
}

// call generates under the configured timeout and decodes into out.
// Generation errors are retried; undecodable output is not.
func (g *GeminiClassifier) call(ctx context.Context, prompt string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	op := func() error {
		text, err := g.gen.Generate(ctx, prompt)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		cleaned := cleanJSON(text)
		if cleaned == "" {
			return backoff.Permanent(ErrMalformedOutput)
		}
		if err := json.Unmarshal([]byte(cleaned), out); err != nil {
			return backoff.Permanent(errors.Wrap(errors.TypeClassification, ErrMalformedOutput.Message, err))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.cfg.RetryInterval
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(g.cfg.MaxRetries)), ctx)

	if err := backoff.Retry(op, b); err != nil {
		if errors.IsType(err, errors.TypeClassification) {
			return err
		}
		return errors.Classification("gemini request failed", err)
	}
	return nil
}
