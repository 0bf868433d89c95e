package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Equal(t, "dashboard", cfg.Profile)
	assert.Equal(t, "palmwatch.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "web/static", cfg.StaticDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, []string{"al_hassa", "qatif", "hofuf"}, cfg.CityKeys())
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PALMWATCH_BASE_URL", "https://palms.example")
	t.Setenv("PALMWATCH_PROFILE", "risk")
	t.Setenv("PALMWATCH_CITIES", " riyadh , qassim,,")
	t.Setenv("DB_PATH", "/tmp/forms.db")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_FILE", "/var/lib/node_exporter/palmwatch.prom")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://palms.example", cfg.BaseURL)
	assert.Equal(t, "risk", cfg.Profile)
	assert.Equal(t, []string{"riyadh", "qassim"}, cfg.CityKeys())
	assert.Equal(t, "/tmp/forms.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/var/lib/node_exporter/palmwatch.prom", cfg.MetricsFile)
}

func TestLoad_InvalidProfile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PALMWATCH_PROFILE", "orchard")
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PALMWATCH_PROFILE")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_WarnsWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	warned := false
	_, err := Load(func(string, ...any) { warned = true })
	require.NoError(t, err)
	assert.True(t, warned)
}
