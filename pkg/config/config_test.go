package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "octosupply", cfg.App.Name)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.True(t, cfg.Store.Seed)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
	assert.Equal(t, []string{"http://localhost:5137", "http://localhost:3001", "https://*.app.github.dev"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, []string{"log", "publish"}, cfg.Notify.Actions)
	assert.Equal(t, 1.0, cfg.Telemetry.Probability)
}

func TestLoadPrefixedEnv(t *testing.T) {
	t.Setenv("OCTOSUPPLY_APP_PORT", "9000")
	t.Setenv("OCTOSUPPLY_STORE_BACKEND", "sqlite")
	t.Setenv("OCTOSUPPLY_STORE_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("OCTOSUPPLY_AUTH_ENABLED", "true")
	t.Setenv("OCTOSUPPLY_NOTIFY_ACTIONS", "log")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.Store.SQLitePath)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, []string{"log"}, cfg.Notify.Actions)
}

func TestLoadLegacyEnv(t *testing.T) {
	t.Setenv("PORT", "8443")
	t.Setenv("DATABASE_URL", "postgres://localhost/octo")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("API_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("OCTOSUPPLY_STORE_BACKEND", "postgres")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8443", cfg.App.Port)
	assert.Equal(t, "postgres://localhost/octo", cfg.Store.DatabaseURL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
}

func TestPrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("PORT", "8443")
	t.Setenv("OCTOSUPPLY_APP_PORT", "9001")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9001", cfg.App.Port)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown backend", env: map[string]string{"OCTOSUPPLY_STORE_BACKEND": "mongo"}},
		{name: "postgres without url", env: map[string]string{"OCTOSUPPLY_STORE_BACKEND": "postgres"}},
		{name: "unknown notify action", env: map[string]string{"OCTOSUPPLY_NOTIFY_ACTIONS": "log,shell"}},
		{name: "tls cert without key", env: map[string]string{"OCTOSUPPLY_APP_TLS_CERT": "server.crt"}},
		{name: "probability above one", env: map[string]string{"OCTOSUPPLY_TELEMETRY_PROBABILITY": "1.5"}},
		{name: "non numeric port", env: map[string]string{"OCTOSUPPLY_APP_PORT": "http"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[app]
port = "4000"

[store]
backend = "redis"

[http]
rate_limit_rps = 5.5
`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.App.Port)
	assert.Equal(t, "redis", cfg.Store.Backend)
	assert.Equal(t, 5.5, cfg.HTTP.RateLimitRPS)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", "c", " "}))
	assert.Nil(t, splitList(nil))
}
