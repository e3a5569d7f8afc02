package config

import "time"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine:    DefaultEngineConfig(),
		Log:       DefaultLogConfig(),
		Telemetry: DefaultTelemetryConfig(),
	}
}

// DefaultEngineConfig returns default engine settings. The iteration
// defaults mirror the network package constants.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxIterations:       1000,
		InvokeMaxIterations: 100,
		StreamMaxIterations: 100,
		NodeTimeout:         5 * time.Minute,
		RetryDelay:          time.Second,
	}
}

// DefaultLogConfig returns default logging settings.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "json",
	}
}

// DefaultTelemetryConfig returns default telemetry settings (disabled).
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		ServiceName:  "flownet",
		OTLPEndpoint: "localhost:4317",
		SampleRate:   1.0,
	}
}
