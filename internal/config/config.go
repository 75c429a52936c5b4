package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces all environment variables read by Load.
const envPrefix = "SSI"

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
}

// InputConfig describes the source workbook
type InputConfig struct {
	Workbook string `yaml:"workbook" envconfig:"WORKBOOK" validate:"required"`
}

// OutputConfig describes where derived artifacts are written
type OutputConfig struct {
	Dir     string `yaml:"dir" envconfig:"DIR" validate:"required"`
	WideCSV string `yaml:"wide_csv" envconfig:"WIDE_CSV"`
	UTF8BOM bool   `yaml:"utf8_bom" envconfig:"UTF8_BOM"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ChartsConfig controls the static chart rendering stage
type ChartsConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"ENABLED"`
	Theme   string `yaml:"theme" envconfig:"THEME"`
}

// DefaultConfig returns the baseline configuration. The input workbook has
// no default; it must come from the file, the environment, or a flag.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir:     "out",
			WideCSV: "incidents_wide.csv",
			UTF8BOM: true,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/analyze.log",
		},
		Charts: ChartsConfig{
			Enabled: true,
			Theme:   "white",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// SSI_*-prefixed environment variables, in increasing order of precedence.
// An empty path skips the file stage.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Environment variables win over the file
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
