// Package config provides configuration management for the Peilbuis GPS
// aggregator.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file (peilbuis.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables use the PEILBUIS_ prefix:
//
//	PEILBUIS_LOGGING_LEVEL=debug
//	PEILBUIS_LOGGING_OUTPUT=both
//	PEILBUIS_INPUT_ENCODING=utf-8
//	PEILBUIS_OUTPUT_FORMAT=csv
//	PEILBUIS_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/peilbuis.prom
//
// The filter thresholds of the aggregation engine are fixed and cannot be
// configured.
package config
