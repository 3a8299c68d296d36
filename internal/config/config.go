package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all tunable configuration for the application. Secrets
// (DATABASE_URL, JWT_SECRET, GEMINI_*, R2_*) stay in plain env vars and are
// validated at startup by the binaries.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Matching MatchingConfig `mapstructure:"matching"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// AuthConfig holds session settings. The signing secret itself stays in
// the JWT_SECRET env var.
type AuthConfig struct {
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig holds the thresholds and normalization policy for the
// name-matching engine. Both thresholds were tuned empirically; keep them
// here so product can recalibrate without a code change.
type MatchingConfig struct {
	FuzzyThreshold   float64 `mapstructure:"fuzzy_threshold"`
	OverlapThreshold float64 `mapstructure:"overlap_threshold"`

	// The two import flows intentionally disagree on portion prefixes;
	// see the matching package for why this is not unified.
	ParSheetStripsPortion bool `mapstructure:"par_sheet_strips_portion"`
	SalesStripsPortion    bool `mapstructure:"sales_strips_portion"`
}

// WorkerConfig holds extraction worker configuration
type WorkerConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// Load reads configuration from an optional config.yaml plus PREPPAL_*
// environment variables, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/prep-pal/")

	v.SetEnvPrefix("PREPPAL")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; env vars and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	})

	v.SetDefault("auth.token_ttl", "24h")

	v.SetDefault("matching.fuzzy_threshold", 0.5)
	v.SetDefault("matching.overlap_threshold", 0.7)
	v.SetDefault("matching.par_sheet_strips_portion", true)
	v.SetDefault("matching.sales_strips_portion", false)

	v.SetDefault("worker.poll_interval", "2s")
}

func validate(cfg *Config) error {
	if cfg.Matching.FuzzyThreshold <= 0 || cfg.Matching.FuzzyThreshold > 1 {
		return fmt.Errorf("matching.fuzzy_threshold must be in (0,1], got %v", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Matching.OverlapThreshold <= 0 || cfg.Matching.OverlapThreshold > 1 {
		return fmt.Errorf("matching.overlap_threshold must be in (0,1], got %v", cfg.Matching.OverlapThreshold)
	}
	if cfg.Worker.PollInterval <= 0 {
		return fmt.Errorf("worker.poll_interval must be positive, got %v", cfg.Worker.PollInterval)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %v", cfg.Auth.TokenTTL)
	}
	return nil
}
