package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Anthropic   AnthropicConfig   `yaml:"anthropic" mapstructure:"anthropic"`
	Citation    CitationConfig    `yaml:"citation" mapstructure:"citation"`
	Credibility CredibilityConfig `yaml:"credibility" mapstructure:"credibility"`
	Pipeline    PipelineConfig    `yaml:"pipeline" mapstructure:"pipeline"`
	Batch       BatchConfig       `yaml:"batch" mapstructure:"batch"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// AnthropicConfig holds Anthropic API settings for report synthesis.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// CitationConfig configures citation formatting and export.
type CitationConfig struct {
	DefaultStyle string `yaml:"default_style" mapstructure:"default_style"`
	SortByAuthor bool   `yaml:"sort_by_author" mapstructure:"sort_by_author"`
}

// CredibilityConfig configures source credibility evaluation.
type CredibilityConfig struct {
	QualityThreshold float64 `yaml:"quality_threshold" mapstructure:"quality_threshold"`
	ListsPath        string  `yaml:"lists_path" mapstructure:"lists_path"`
}

// PipelineConfig configures extraction behavior.
type PipelineConfig struct {
	AlphaLevel          float64 `yaml:"alpha_level" mapstructure:"alpha_level"`
	MinTheoryConfidence float64 `yaml:"min_theory_confidence" mapstructure:"min_theory_confidence"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentDocuments int `yaml:"max_concurrent_documents" mapstructure:"max_concurrent_documents"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port              int     `yaml:"port" mapstructure:"port"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment, then validates it.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SCHOLAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "scholar.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.requests_per_second", 10)
	v.SetDefault("batch.max_concurrent_documents", 5)
	v.SetDefault("citation.default_style", "apa")
	v.SetDefault("citation.sort_by_author", true)
	v.SetDefault("credibility.quality_threshold", 4.0)
	v.SetDefault("pipeline.alpha_level", 0.05)
	v.SetDefault("pipeline.min_theory_confidence", 0.3)
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 4096)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects out-of-range values with a descriptive error. Values
// are never clamped.
func (c *Config) Validate() error {
	if c.Credibility.QualityThreshold < 0 || c.Credibility.QualityThreshold > 10 {
		return eris.Errorf("config: credibility.quality_threshold %.2f outside [0,10]", c.Credibility.QualityThreshold)
	}
	if c.Pipeline.AlphaLevel <= 0 || c.Pipeline.AlphaLevel >= 1 {
		return eris.Errorf("config: pipeline.alpha_level %.3f outside (0,1)", c.Pipeline.AlphaLevel)
	}
	if c.Pipeline.MinTheoryConfidence < 0 || c.Pipeline.MinTheoryConfidence > 1 {
		return eris.Errorf("config: pipeline.min_theory_confidence %.2f outside [0,1]", c.Pipeline.MinTheoryConfidence)
	}
	if c.Batch.MaxConcurrentDocuments < 1 {
		return eris.Errorf("config: batch.max_concurrent_documents must be at least 1, got %d", c.Batch.MaxConcurrentDocuments)
	}
	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return eris.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	switch strings.ToLower(c.Citation.DefaultStyle) {
	case "apa", "mla", "chicago", "ieee":
	default:
		return eris.Errorf("config: unknown citation style %q", c.Citation.DefaultStyle)
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
