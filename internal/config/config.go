// Package config provides configuration management.
//
// Files may be written in HCL (.hcl) or JSON (.json). Both are decoded with
// hashicorp/hcl, and an `env` object exposes the process environment:
//
//	classifier {
//	  api_key = env.GEMINI_API_KEY
//	}
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"capcost/internal/errors"
	"capcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Classifier configures the external description classifier
	Classifier ClassifierConfig `json:"classifier"`

	// Cache configures the classification cache
	Cache CacheConfig `json:"cache"`

	// Estimate contains projection defaults
	Estimate EstimateConfig `json:"estimate"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr                string `json:"addr" hcl:"addr,optional"`
	ReadTimeoutSeconds  int    `json:"read_timeout_seconds" hcl:"read_timeout_seconds,optional"`
	WriteTimeoutSeconds int    `json:"write_timeout_seconds" hcl:"write_timeout_seconds,optional"`
}

// ClassifierConfig contains classifier settings
type ClassifierConfig struct {
	// Provider is "gemini" or "keyword"; keyword disables the external call
	Provider string `json:"provider" hcl:"provider,optional"`

	// Model is the vendor model name
	Model string `json:"model" hcl:"model,optional"`

	// APIKey authenticates against the vendor
	APIKey string `json:"api_key,omitempty" hcl:"api_key,optional"`

	// TimeoutSeconds bounds one classification call including retries
	TimeoutSeconds int `json:"timeout_seconds" hcl:"timeout_seconds,optional"`

	// MaxRetries is the number of retries after the first attempt
	MaxRetries int `json:"max_retries" hcl:"max_retries,optional"`
}

// CacheConfig contains classification cache settings
type CacheConfig struct {
	// RedisAddr enables the Redis cache when non-empty
	RedisAddr     string `json:"redis_addr,omitempty" hcl:"redis_addr,optional"`
	RedisPassword string `json:"redis_password,omitempty" hcl:"redis_password,optional"`
	RedisDB       int    `json:"redis_db" hcl:"redis_db,optional"`
	TTLSeconds    int    `json:"ttl_seconds" hcl:"ttl_seconds,optional"`
}

// EstimateConfig contains projection defaults
type EstimateConfig struct {
	// GrowthRate is the monthly MAU growth used for timelines
	GrowthRate float64 `json:"growth_rate" hcl:"growth_rate,optional"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 60,
		},
		Logging: logging.DefaultConfig(),
		Classifier: ClassifierConfig{
			Provider:       "gemini",
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 20,
			MaxRetries:     2,
		},
		Cache: CacheConfig{
			TTLSeconds: 86400, // 24 hours
		},
		Estimate: EstimateConfig{
			GrowthRate: 0.15,
		},
	}
}

// DefaultPath returns $HOME/.capcost/config.hcl
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".capcost", "config.hcl")
}

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "server"},
		{Type: "logging"},
		{Type: "classifier"},
		{Type: "cache"},
		{Type: "estimate"},
	},
}

// Load loads configuration from a file. A missing file yields the defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		config.applyEnv()
		return config, nil
	}

	if err := config.decode(path, data); err != nil {
		return nil, err
	}
	config.applyEnv()
	return config, nil
}

func (c *Config) decode(path string, data []byte) error {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.EqualFold(filepath.Ext(path), ".json") {
		file, diags = parser.ParseJSON(data, path)
	} else {
		file, diags = parser.ParseHCL(data, path)
	}
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "parse "+path, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "read "+path, diags)
	}

	ctx := evalContext()

	if attr, ok := content.Attributes["version"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, ctx, &c.Version)...)
	}

	// Blocks decode into the existing structs so unset attributes keep their defaults.
	for _, block := range content.Blocks {
		switch block.Type {
		case "server":
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, &c.Server)...)
		case "logging":
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, &c.Logging)...)
		case "classifier":
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, &c.Classifier)...)
		case "cache":
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, &c.Cache)...)
		case "estimate":
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, &c.Estimate)...)
		}
	}
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "decode "+path, diags)
	}
	return nil
}

// evalContext exposes environment variables as env.NAME
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("GEMINI_API_KEY"); ok && v != "" {
		c.Classifier.APIKey = v
	}
	if v, ok := os.LookupEnv("CAPCOST_ADDR"); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok && v != "" {
		c.Cache.RedisAddr = v
	}
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.Classifier.Provider {
	case "gemini", "keyword":
	default:
		return errors.Newf(errors.TypeConfig, "unknown classifier provider %q", c.Classifier.Provider)
	}
	if c.Classifier.MaxRetries < 0 {
		return errors.Config("classifier.max_retries must not be negative")
	}
	if c.Estimate.GrowthRate < 0 {
		return errors.Config("estimate.growth_rate must not be negative")
	}
	return nil
}

// Save saves configuration to a file as JSON
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
