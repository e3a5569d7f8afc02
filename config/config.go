package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete flownet configuration.
type Config struct {
	// Engine holds execution engine defaults.
	Engine EngineConfig `yaml:"engine" env:"ENGINE"`

	// Log holds logging configuration.
	Log LogConfig `yaml:"log" env:"LOG"`

	// Telemetry holds OpenTelemetry configuration.
	Telemetry TelemetryConfig `yaml:"telemetry" env:"TELEMETRY"`
}

// EngineConfig holds execution engine defaults.
type EngineConfig struct {
	// MaxIterations is the hard iteration ceiling used when no budget is
	// supplied.
	MaxIterations int `yaml:"max_iterations" env:"MAX_ITERATIONS"`
	// InvokeMaxIterations is the default budget for run-to-completion calls.
	InvokeMaxIterations int `yaml:"invoke_max_iterations" env:"INVOKE_MAX_ITERATIONS"`
	// StreamMaxIterations is the default budget for streamed runs.
	StreamMaxIterations int `yaml:"stream_max_iterations" env:"STREAM_MAX_ITERATIONS"`
	// NodeTimeout is the default per-node timeout applied by callers that
	// enable timeouts without picking a value. Zero disables it.
	NodeTimeout time.Duration `yaml:"node_timeout" env:"NODE_TIMEOUT"`
	// RetryDelay is the default wait between node retry attempts.
	RetryDelay time.Duration `yaml:"retry_delay" env:"RETRY_DELAY"`
}

// UnmarshalYAML decodes engine settings, accepting "30s" style duration
// strings. Keys absent from the document leave the current values in place,
// so defaults survive partial files.
func (c *EngineConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		MaxIterations       *int    `yaml:"max_iterations"`
		InvokeMaxIterations *int    `yaml:"invoke_max_iterations"`
		StreamMaxIterations *int    `yaml:"stream_max_iterations"`
		NodeTimeout         *string `yaml:"node_timeout"`
		RetryDelay          *string `yaml:"retry_delay"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.MaxIterations != nil {
		c.MaxIterations = *raw.MaxIterations
	}
	if raw.InvokeMaxIterations != nil {
		c.InvokeMaxIterations = *raw.InvokeMaxIterations
	}
	if raw.StreamMaxIterations != nil {
		c.StreamMaxIterations = *raw.StreamMaxIterations
	}
	if raw.NodeTimeout != nil {
		d, err := time.ParseDuration(*raw.NodeTimeout)
		if err != nil {
			return fmt.Errorf("engine.node_timeout: %w", err)
		}
		c.NodeTimeout = d
	}
	if raw.RetryDelay != nil {
		d, err := time.ParseDuration(*raw.RetryDelay)
		if err != nil {
			return fmt.Errorf("engine.retry_delay: %w", err)
		}
		c.RetryDelay = d
	}
	return nil
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// Format is "json" or "console".
	Format string `yaml:"format" env:"FORMAT"`
	// Development enables development-mode logger behavior.
	Development bool `yaml:"development" env:"DEVELOPMENT"`
}

// TelemetryConfig holds OpenTelemetry configuration.
type TelemetryConfig struct {
	// Enabled turns the OTel SDK on; when false all providers are noop.
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// ServiceName identifies this process in traces.
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
	// OTLPEndpoint is the OTLP gRPC collector address.
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTLP_ENDPOINT"`
	// SampleRate is the trace sampling ratio in [0, 1].
	SampleRate float64 `yaml:"sample_rate" env:"SAMPLE_RATE"`
}
