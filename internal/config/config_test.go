package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenement_hub/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := writeConfig(t, "log_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, int64(2), cfg.HTTP.MaxConcurrentSyncs)
	assert.False(t, cfg.HTTP.StatusCheckEnabled)
	assert.Equal(t, 5*time.Minute, cfg.HTTP.SyncTimeout)
	assert.Equal(t, 3, cfg.API.Retry.MaxAttempts)
	assert.Equal(t, len(domain.Jurisdictions), cfg.Stats.MaxConcurrentQueries)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "tenement_hub", cfg.RabbitMQ.Exchange)
}

func TestLoad_ExpandsEnvAndNormalizesSources(t *testing.T) {
	t.Setenv("WA_BASE_URL", "https://example.test/wa")
	t.Setenv("DATABASE_URL", "postgres://tenements:secret@db:5432/tenements")

	path := writeConfig(t, `
sources:
  wa:
    name: DMIRS
    base_url: ${WA_BASE_URL}
  NSW:
    name: MinView
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	src, ok := cfg.SourceFor(domain.WA)
	require.True(t, ok)
	assert.Equal(t, "https://example.test/wa", src.BaseURL)

	_, ok = cfg.SourceFor(domain.NSW)
	assert.False(t, ok, "source without base_url is not usable")

	assert.Equal(t, "postgres://tenements:secret@db:5432/tenements", cfg.Database.DSN())
}

func TestLoad_RejectsUnknownJurisdiction(t *testing.T) {
	path := writeConfig(t, `
sources:
  ACT:
    base_url: https://example.test/act
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownJurisdiction)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestDatabaseConfig_DSNFromFields(t *testing.T) {
	d := DatabaseConfig{Host: "localhost", Port: 5432, User: "u", Password: "p", DBName: "db", SSLMode: "disable"}

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=db sslmode=disable", d.DSN())
}
