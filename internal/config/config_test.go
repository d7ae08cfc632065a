package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `app:
  name: race-report
  environment: development
  log_level: debug

server:
  host: 127.0.0.1
  port: 9090
  read_timeout_seconds: 5
  write_timeout_seconds: 10
  cors_enabled: false

database:
  host: localhost
  port: 5432
  name: race_report
  user: report
  password: ${TEST_DB_PASSWORD}
  ssl_mode: disable
  max_connections: 10

data:
  abbreviations: data/abbreviations.txt
  start_log: data/start.log
  end_log: data/end.log

cache:
  enabled: true
  ttl_seconds: 60

metrics:
  enabled: true
  path: /metrics
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	cfg, err := Load(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "race-report", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Server.CORSEnabled)
	// ${VAR} placeholders are expanded from the environment.
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	require.NoError(t, Validate(cfg))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "race-report", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/abbreviations.txt", cfg.Data.Abbreviations)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			name:   "unknown environment",
			mutate: func(cfg *Config) { cfg.App.Environment = "qa" },
		},
		{
			name:   "unknown log level",
			mutate: func(cfg *Config) { cfg.App.LogLevel = "verbose" },
		},
		{
			name:   "port out of range",
			mutate: func(cfg *Config) { cfg.Server.Port = 70000 },
		},
		{
			name:   "missing database password",
			mutate: func(cfg *Config) { cfg.Database.Password = "" },
		},
		{
			name:   "bad ssl mode",
			mutate: func(cfg *Config) { cfg.Database.SSLMode = "maybe" },
		},
		{
			name: "rate limit without burst",
			mutate: func(cfg *Config) {
				cfg.Server.RateLimitPerSecond = 10
				cfg.Server.RateLimitBurst = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, testConfigYAML))
			require.NoError(t, err)
			require.NoError(t, Validate(cfg))

			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
