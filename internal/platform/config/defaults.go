package config

const (
	defaultConflictRetries = 3
	defaultBulkWorkers     = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "ticketcore",

		"store.conflict_retries": defaultConflictRetries,
		"store.bulk_workers":     defaultBulkWorkers,

		"tickets.hide_closed": false,

		"replay.scenario":      "configs/scenarios/demo.yaml",
		"replay.stop_on_error": false,
		"replay.timeout":       "30s",
	}
}
