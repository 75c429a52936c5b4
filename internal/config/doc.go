// Package config provides centralized configuration management for the
// analysis pipeline. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern SSI_* for namespacing:
//
//	SSI_INPUT_WORKBOOK=data/incidents.xlsx
//	SSI_OUTPUT_DIR=out
//	SSI_LOGGING_LEVEL=info
//	SSI_CHARTS_ENABLED=true
//
// # Validation
//
// All configuration is validated at load time with go-playground/validator:
// required fields must be present and enumerated fields (log level, log
// format) must hold one of their allowed values.
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
