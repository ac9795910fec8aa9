package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  host: 0.0.0.0
  port: 4000
  mode: debug
database:
  host: localhost
  port: 5432
  user: realestate
  password: realestate
  dbname: real_estate
  sslmode: disable
log:
  dir: logs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load(writeConfigFile(t))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "real_estate", cfg.Database.DBName)
	assert.Equal(t, "logs", cfg.Log.Dir)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load(writeConfigFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}

func TestDSN(t *testing.T) {
	cfg, err := Load(writeConfigFile(t))
	require.NoError(t, err)

	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "port=5432")
	assert.Contains(t, dsn, "dbname=real_estate")
	assert.Contains(t, dsn, "sslmode=disable")
}
