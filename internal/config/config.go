package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of all environment variables read by Load
const EnvPrefix = "PEILBUIS"

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" split_words:"true"`
	Input     InputConfig     `yaml:"input" split_words:"true"`
	Output    OutputConfig    `yaml:"output" split_words:"true"`
	Telemetry TelemetryConfig `yaml:"telemetry" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" split_words:"true"`
	Format   string `yaml:"format" split_words:"true"`
	Output   string `yaml:"output" split_words:"true"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// InputConfig describes the raw survey file layout
type InputConfig struct {
	Delimiter  string `yaml:"delimiter" split_words:"true"`
	Encoding   string `yaml:"encoding" split_words:"true"`
	SkipHeader bool   `yaml:"skip_header" split_words:"true"`
}

// OutputConfig describes the result artifact
type OutputConfig struct {
	Format    string `yaml:"format" split_words:"true"`
	Suffix    string `yaml:"suffix" split_words:"true"`
	SheetName string `yaml:"sheet_name" split_words:"true"`
	Open      bool   `yaml:"open" split_words:"true"`
}

// TelemetryConfig contains tracing and metrics configuration
type TelemetryConfig struct {
	EnableTracing bool   `yaml:"enable_tracing" split_words:"true"`
	TraceExporter string `yaml:"trace_exporter" split_words:"true"`
	MetricsFile   string `yaml:"metrics_file" split_words:"true"`
	Environment   string `yaml:"environment" split_words:"true"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty configFile falls
// back to the well-known locations.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	// Only JSON logs are written
	c.Logging.Format = "json"

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %q", c.Logging.Output)
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("log file path required for output %q", c.Logging.Output)
	}

	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got %q", c.Input.Delimiter)
	}

	c.Input.Encoding = strings.ToLower(c.Input.Encoding)
	switch c.Input.Encoding {
	case EncodingUTF16, EncodingUTF8:
	default:
		return fmt.Errorf("unsupported input encoding: %q", c.Input.Encoding)
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	switch c.Output.Format {
	case FormatXLSX, FormatCSV:
	default:
		return fmt.Errorf("unsupported output format: %q", c.Output.Format)
	}
	if c.Output.SheetName == "" {
		return fmt.Errorf("output sheet name must not be empty")
	}

	switch c.Telemetry.TraceExporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("unsupported trace exporter: %q", c.Telemetry.TraceExporter)
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"peilbuis.yaml",
		"configs/peilbuis.yaml",
	}

	if paths, err := GetPaths(); err == nil {
		locations = append(locations, paths.ConfigFile)
	}

	for _, location := range locations {
		if FileExists(location) {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// defaultLogPath places the log file next to the executable when possible
func defaultLogPath() string {
	if paths, err := GetPaths(); err == nil {
		return paths.GetLogPath(ServiceName + ".log")
	}
	return filepath.Join("logs", ServiceName+".log")
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   "console",
			FilePath: defaultLogPath(),
		},
		Input: InputConfig{
			Delimiter:  DefaultDelimiter,
			Encoding:   EncodingUTF16,
			SkipHeader: true,
		},
		Output: OutputConfig{
			Format:    FormatXLSX,
			Suffix:    DefaultResultSuffix,
			SheetName: DefaultSheetName,
			Open:      false,
		},
		Telemetry: TelemetryConfig{
			EnableTracing: false,
			TraceExporter: "stdout",
			Environment:   "production",
		},
	}
}
