package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Matching.FuzzyThreshold)
	assert.Equal(t, 0.7, cfg.Matching.OverlapThreshold)
	assert.True(t, cfg.Matching.ParSheetStripsPortion)
	assert.False(t, cfg.Matching.SalesStripsPortion)
	assert.Positive(t, cfg.Worker.PollInterval)
	assert.Positive(t, cfg.Auth.TokenTTL)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Auth:     AuthConfig{TokenTTL: 1},
			Matching: MatchingConfig{FuzzyThreshold: 0.5, OverlapThreshold: 0.7},
			Worker:   WorkerConfig{PollInterval: 1},
		}
	}

	t.Run("accepts sane config", func(t *testing.T) {
		assert.NoError(t, validate(base()))
	})

	t.Run("rejects fuzzy threshold out of range", func(t *testing.T) {
		cfg := base()
		cfg.Matching.FuzzyThreshold = 1.5
		assert.Error(t, validate(cfg))
	})

	t.Run("rejects zero overlap threshold", func(t *testing.T) {
		cfg := base()
		cfg.Matching.OverlapThreshold = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("rejects non-positive poll interval", func(t *testing.T) {
		cfg := base()
		cfg.Worker.PollInterval = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("rejects non-positive token ttl", func(t *testing.T) {
		cfg := base()
		cfg.Auth.TokenTTL = 0
		assert.Error(t, validate(cfg))
	})
}
