package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.CatalogPath)
	assert.Equal(t, 75, cfg.CriticalXP)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HH_DB_PATH", "/tmp/ledger.db")
	t.Setenv("HH_CATALOG", "/tmp/catalog.yaml")
	t.Setenv("HH_CRITICAL_XP", "30")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.db", cfg.DBPath)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 30, cfg.CriticalXP)
}

func TestFromEnvRejectsBadThreshold(t *testing.T) {
	t.Setenv("HH_CRITICAL_XP", "lots")

	// A malformed value must surface as an error, never fall back to
	// the default behind the caller's back.
	_, err := FromEnv()
	assert.Error(t, err)
}
