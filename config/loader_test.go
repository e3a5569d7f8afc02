package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- defaults ----

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, 1000, cfg.Engine.MaxIterations)
	assert.Equal(t, 100, cfg.Engine.InvokeMaxIterations)
	assert.Equal(t, 100, cfg.Engine.StreamMaxIterations)
	assert.Equal(t, 5*time.Minute, cfg.Engine.NodeTimeout)
	assert.Equal(t, time.Second, cfg.Engine.RetryDelay)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "flownet", cfg.Telemetry.ServiceName)
	assert.Equal(t, "localhost:4317", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, 1.0, cfg.Telemetry.SampleRate)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// ---- yaml file ----

func TestLoadFromYAMLFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flownet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
engine:
  max_iterations: 50
  node_timeout: 30s
log:
  level: debug
  format: console
telemetry:
  enabled: true
  service_name: custom
`), 0o644))

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Engine.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Engine.NodeTimeout)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 100, cfg.Engine.InvokeMaxIterations)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "custom", cfg.Telemetry.ServiceName)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	cfg, err := NewLoader().WithConfigPath(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: [not a mapping"), 0o644))

	_, err := NewLoader().WithConfigPath(path).Load()
	assert.Error(t, err)
}

func TestLoadBadDurationInFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  node_timeout: fast\n"), 0o644))

	_, err := NewLoader().WithConfigPath(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node_timeout")
}

// ---- environment ----

func TestLoadFromEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flownet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  max_iterations: 50\n"), 0o644))

	t.Setenv("FLOWNET_ENGINE_MAX_ITERATIONS", "7")
	t.Setenv("FLOWNET_ENGINE_RETRY_DELAY", "250ms")
	t.Setenv("FLOWNET_LOG_DEVELOPMENT", "true")
	t.Setenv("FLOWNET_TELEMETRY_SAMPLE_RATE", "0.25")

	cfg, err := NewLoader().WithConfigPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Engine.MaxIterations)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.RetryDelay)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, 0.25, cfg.Telemetry.SampleRate)
}

func TestLoadEnvCustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_LOG_LEVEL", "warn")

	cfg, err := NewLoader().WithEnvPrefix("MYAPP").Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvBadValue(t *testing.T) {
	t.Setenv("FLOWNET_ENGINE_MAX_ITERATIONS", "not-a-number")

	_, err := NewLoader().Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLOWNET_ENGINE_MAX_ITERATIONS")
}

// ---- validators ----

func TestLoadRunsValidators(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().
		WithValidator(func(cfg *Config) error {
			if cfg.Engine.MaxIterations <= 0 {
				return errors.New("max iterations must be positive")
			}
			return nil
		}).
		WithValidator(func(cfg *Config) error {
			return errors.New("always rejects")
		}).
		Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "always rejects")
}

func TestMustLoadPanicsOnBadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [broken"), 0o644))

	assert.Panics(t, func() { MustLoad(path) })
}

// ---- logger ----

func TestNewLoggerLevelsAndFormats(t *testing.T) {
	t.Parallel()

	for _, cfg := range []LogConfig{
		{Level: "debug", Format: "console", Development: true},
		{Level: "info", Format: "json"},
		{Level: "warn"},
	} {
		logger, err := NewLogger(cfg)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}

func TestNewLoggerRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := NewLogger(LogConfig{Level: "shouting"})
	assert.Error(t, err)

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
