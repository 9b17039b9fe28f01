package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse(`
[server]
http_port = 9090
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, SyncBackendNone, cfg.Sync.Backend)
	assert.Equal(t, "settings", cfg.Sync.Postgres.Table)
	assert.Equal(t, 15, cfg.Booking.CapacityRooms)
	assert.False(t, cfg.Booking.BlockMaintenanceRooms)
}

func TestParseSyncBackends(t *testing.T) {
	cfg, err := Parse(`
[sync]
backend = "redis"
[sync.redis]
url = "redis://localhost:6379/0"
`)
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Sync.Redis.URL)
	assert.Equal(t, "pethotel:sync:", cfg.Sync.Redis.KeyPrefix)

	_, err = Parse(`
[sync]
backend = "s3"
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse(`
[sync]
backend = "ftp"
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPostgresDSN(t *testing.T) {
	cfg, err := Parse(`
[sync]
backend = "postgres"
[sync.postgres]
host = "db"
user = "hotel"
password = "secret"
dbname = "pethotel"
`)
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=hotel password=secret dbname=pethotel sslmode=disable", cfg.Sync.Postgres.DSN())
}

func TestValidateRejectsBadValues(t *testing.T) {
	_, err := Parse(`
[server]
http_port = 0
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse(`
[textgen]
enabled = true
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse(`
[auth]
admin_password = "meow"
`)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("PETHOTEL_ADMIN_PASSWORD", "meow")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[auth]
admin_password = "${PETHOTEL_ADMIN_PASSWORD}"
token_secret = "test-secret"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "meow", cfg.Auth.AdminPassword)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
