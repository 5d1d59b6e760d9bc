package testutil

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Al69m/top10-streaming-fr/internal/config"
)

// NewViper returns a fresh viper instance with the application defaults.
func NewViper(t *testing.T) *viper.Viper {
	t.Helper()

	v := viper.New()
	config.SetDefaults(v)
	return v
}

// NewConfig builds a validated configuration with test API keys.
// Options run after the defaults are loaded.
func NewConfig(t *testing.T, opts ...func(*config.Config)) *config.Config {
	t.Helper()

	v := NewViper(t)
	v.Set("tmdb.api_key", "test-tmdb-key")
	v.Set("rpdb.api_key", "test-rpdb-key")
	v.Set("output.dir", t.TempDir())

	cfg, err := config.Load(v)
	require.NoError(t, err)

	for _, opt := range opts {
		opt(cfg)
	}
	require.NoError(t, cfg.Validate())
	return cfg
}
