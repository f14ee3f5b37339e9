package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 20, cfg.RateLimit.Capacity)
	assert.Equal(t, 5, cfg.RateLimit.RefillRate)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
upload:
  maxBytes: 1048576
openai:
  apiKey: file-key
  model: gpt-4o
database:
  driver: postgres
  host: db.internal
  port: 5432
  user: finsight
  password: secret
  name: finsight
rateLimit:
  enabled: true
  capacity: 50
  refillRate: 10
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.Equal(t, "file-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 50, cfg.RateLimit.Capacity)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openai:\n  apiKey: file-key\n"), 0o600))

	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_MODEL", "o3-mini")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "o3-mini", cfg.OpenAI.Model)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: mapping"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDSNHelpers(t *testing.T) {
	var cfg Config
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = 3306
	cfg.Database.User = "finsight"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "finsight"

	assert.Equal(t,
		"finsight:secret@tcp(db.internal:3306)/finsight?parseTime=true&charset=utf8mb4&loc=UTC",
		cfg.MySQLDSN())

	cfg.Database.Port = 5432
	assert.Equal(t,
		"host=db.internal port=5432 user=finsight password=secret dbname=finsight sslmode=disable",
		cfg.PostgresDSN())

	cfg.Database.SSLMode = "require"
	assert.Contains(t, cfg.PostgresDSN(), "sslmode=require")
}
