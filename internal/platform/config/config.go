// Package config provides configuration loading and validation for ticketcore.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the ticket core and its runner.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Store     StoreConfig     `koanf:"store"`
	Tickets   TicketsConfig   `koanf:"tickets"`
	Replay    ReplayConfig    `koanf:"replay"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// StoreConfig holds settings for writes through the store port.
type StoreConfig struct {
	// ConflictRetries is how many times a command is re-run after losing an
	// optimistic-concurrency race.
	ConflictRetries int `koanf:"conflict_retries"`
	// BulkWorkers bounds the concurrency of bulk moves.
	BulkWorkers int `koanf:"bulk_workers"`
}

// TicketsConfig holds the default ticket listing filter.
type TicketsConfig struct {
	HideClosed bool `koanf:"hide_closed"`
}

// ReplayConfig holds scenario runner settings.
type ReplayConfig struct {
	Scenario    string        `koanf:"scenario"`
	StopOnError bool          `koanf:"stop_on_error"`
	Timeout     time.Duration `koanf:"timeout"`
}
