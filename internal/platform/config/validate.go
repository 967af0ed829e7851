package config

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/ticketcore/internal/platform/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Store.validate(),
		c.Replay.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	if _, err := logging.ParseLevel(l.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case logging.FormatJSON, logging.FormatText:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	if s.ConflictRetries < 0 {
		errs = append(errs, fmt.Errorf("store.conflict_retries must be >= 0, got %d", s.ConflictRetries))
	}
	if s.BulkWorkers < 1 {
		errs = append(errs, fmt.Errorf("store.bulk_workers must be >= 1, got %d", s.BulkWorkers))
	}

	return errors.Join(errs...)
}

func (r *ReplayConfig) validate() error {
	var errs []error

	if r.Scenario == "" {
		errs = append(errs, errors.New("replay.scenario must not be empty"))
	}
	if r.Timeout <= 0 {
		errs = append(errs, errors.New("replay.timeout must be positive"))
	}

	return errors.Join(errs...)
}
