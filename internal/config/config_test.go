package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "scholar.db", cfg.Store.DatabaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.InDelta(t, 10, cfg.Server.RequestsPerSecond, 0.001)
	assert.Equal(t, 5, cfg.Batch.MaxConcurrentDocuments)
	assert.Equal(t, "apa", cfg.Citation.DefaultStyle)
	assert.True(t, cfg.Citation.SortByAuthor)
	assert.InDelta(t, 4.0, cfg.Credibility.QualityThreshold, 0.001)
	assert.InDelta(t, 0.05, cfg.Pipeline.AlphaLevel, 0.001)
	assert.InDelta(t, 0.3, cfg.Pipeline.MinTheoryConfidence, 0.001)
	assert.Equal(t, 4096, cfg.Anthropic.MaxTokens)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: postgres
  database_url: postgres://localhost/scholar
log:
  level: debug
  format: console
server:
  port: 9090
citation:
  default_style: ieee
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ieee", cfg.Citation.DefaultStyle)
	// Defaults still apply for unset values
	assert.InDelta(t, 4.0, cfg.Credibility.QualityThreshold, 0.001)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("SCHOLAR_STORE_DRIVER", "postgres")
	t.Setenv("SCHOLAR_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("SCHOLAR_CREDIBILITY_QUALITY_THRESHOLD", "11")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quality_threshold")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:       StoreConfig{Driver: "sqlite"},
			Citation:    CitationConfig{DefaultStyle: "apa"},
			Credibility: CredibilityConfig{QualityThreshold: 4.0},
			Pipeline:    PipelineConfig{AlphaLevel: 0.05, MinTheoryConfidence: 0.3},
			Batch:       BatchConfig{MaxConcurrentDocuments: 5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"threshold too high", func(c *Config) { c.Credibility.QualityThreshold = 10.5 }, "quality_threshold"},
		{"threshold negative", func(c *Config) { c.Credibility.QualityThreshold = -1 }, "quality_threshold"},
		{"alpha zero", func(c *Config) { c.Pipeline.AlphaLevel = 0 }, "alpha_level"},
		{"alpha one", func(c *Config) { c.Pipeline.AlphaLevel = 1 }, "alpha_level"},
		{"theory confidence", func(c *Config) { c.Pipeline.MinTheoryConfidence = 1.5 }, "min_theory_confidence"},
		{"concurrency zero", func(c *Config) { c.Batch.MaxConcurrentDocuments = 0 }, "max_concurrent_documents"},
		{"bad driver", func(c *Config) { c.Store.Driver = "oracle" }, "store driver"},
		{"bad style", func(c *Config) { c.Citation.DefaultStyle = "harvard" }, "citation style"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
