package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.AppHost)
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DATA_DIR", "/var/lib/pbpd")
	t.Setenv("UPLOADS_DIR", "/var/lib/pbpd/uploads")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, filepath.Join("/var/lib/pbpd", "orders.json"), cfg.OrdersPath())
	assert.Equal(t, filepath.Join("/var/lib/pbpd", "db.json"), cfg.OptionsPath())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestValidateRejectsDefaultPasswordInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	t.Setenv("ADMIN_PASSWORD", "not-the-default")
	cfg, err = Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
