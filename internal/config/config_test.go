package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleYAML = `
http:
  port: 3000
  base_domain: dinehub.local
  admin_token: secret
database:
  host: localhost
  port: 5432
  user: dinehub
  password: dinehub
  database: dinehub
rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.HTTP.Port)
	require.Equal(t, "dinehub.local", cfg.HTTP.BaseDomain)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5672, cfg.RabbitMQ.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("ADMIN_TOKEN", "override")

	cfg, err := Load(writeConfig(t))
	require.NoError(t, err)

	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 6432, cfg.Database.Port)
	require.Equal(t, "override", cfg.HTTP.AdminToken)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
