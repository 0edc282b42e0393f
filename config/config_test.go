package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("MOODS_TABLE", "")
	t.Setenv("GEOCODE_API_KEY", "")
	t.Setenv("HOST_READY_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Moods", cfg.MoodsTable)
	assert.Equal(t, "en", cfg.GeocodeLanguage)
	assert.Equal(t, "", cfg.GeocodeAPIKey, "geocoding is optional")
	assert.Equal(t, 10*time.Second, cfg.HostReadyTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MOODS_TABLE", "MoodsStaging")
	t.Setenv("GEOCODE_API_KEY", "secret")
	t.Setenv("GEOCODE_LANGUAGE", "tr")
	t.Setenv("HOST_READY_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "MoodsStaging", cfg.MoodsTable)
	assert.Equal(t, "secret", cfg.GeocodeAPIKey)
	assert.Equal(t, "tr", cfg.GeocodeLanguage)
	assert.Equal(t, 3*time.Second, cfg.HostReadyTimeout)
}
