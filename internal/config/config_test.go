package config

import (
	"os"
	"path/filepath"
	"testing"

	"capcost/internal/errors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Estimate.GrowthRate != 0.15 {
		t.Errorf("GrowthRate = %v, want 0.15", cfg.Estimate.GrowthRate)
	}
}

func TestLoadHCLKeepsUnsetDefaults(t *testing.T) {
	path := writeFile(t, "config.hcl", `
version = "2"

server {
  addr = ":9090"
}

classifier {
  provider    = "keyword"
  max_retries = 4
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != "2" {
		t.Errorf("Version = %q, want 2", cfg.Version)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeoutSeconds != 30 {
		t.Errorf("ReadTimeoutSeconds = %d, want default 30", cfg.Server.ReadTimeoutSeconds)
	}
	if cfg.Classifier.Provider != "keyword" || cfg.Classifier.MaxRetries != 4 {
		t.Errorf("Classifier = %+v", cfg.Classifier)
	}
	if cfg.Classifier.Model != "gemini-2.5-flash" {
		t.Errorf("Classifier.Model = %q, want default", cfg.Classifier.Model)
	}
}

func TestLoadHCLReadsEnv(t *testing.T) {
	t.Setenv("CAPCOST_TEST_REDIS", "cache.internal:6379")
	path := writeFile(t, "config.hcl", `
cache {
  redis_addr = env.CAPCOST_TEST_REDIS
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.RedisAddr != "cache.internal:6379" {
		t.Errorf("RedisAddr = %q", cfg.Cache.RedisAddr)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CAPCOST_ADDR", ":7000")
	t.Setenv("GEMINI_API_KEY", "from-env")
	path := writeFile(t, "config.hcl", `
server {
  addr = ":9090"
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.Classifier.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env override", cfg.Classifier.APIKey)
	}
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	path := writeFile(t, "config.hcl", `
server {
  port = 8080
}
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown attribute")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("error type = %s, want %s", errors.TypeOf(err), errors.TypeConfig)
	}
}

func TestSaveThenLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server.Addr = ":8181"
	cfg.Logging.Level = "debug"
	cfg.Estimate.GrowthRate = 0.2
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Addr != ":8181" || loaded.Logging.Level != "debug" || loaded.Estimate.GrowthRate != 0.2 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "keyword provider", mutate: func(c *Config) { c.Classifier.Provider = "keyword" }},
		{name: "unknown provider", mutate: func(c *Config) { c.Classifier.Provider = "openai" }, wantErr: true},
		{name: "negative retries", mutate: func(c *Config) { c.Classifier.MaxRetries = -1 }, wantErr: true},
		{name: "negative growth", mutate: func(c *Config) { c.Estimate.GrowthRate = -0.1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
