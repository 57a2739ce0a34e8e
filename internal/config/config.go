// =============================================================================
// Address Label Converter - Configuration Module
// =============================================================================
//
// This module loads the application configuration.
//
// SOURCES (later sources override earlier ones):
//   1. Built-in defaults
//   2. Main config file (config.yaml)
//   3. A .env file in the working directory, if present
//   4. LABELCONV_* environment variables
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LABELCONV_"

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is scanned by the process command for CSV and XLSX files.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives the exported label files and warning logs.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives input files after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ArchiveByDate archives processed inputs into YYYY/MM/DD
	// subdirectories of InputArchiveDir.
	// Default: false
	ArchiveByDate bool `yaml:"archive_by_date"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "console" or "json".
	// Default: "console"
	LogFormat string `yaml:"log_format"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// OutputFormat names export files. Placeholders: {uuid}, {timestamp},
	// {date}, {name} (input file name without extension).
	// Default: "{name}_{timestamp}.csv"
	OutputFormat string `yaml:"output_format"`

	// MaxConcurrency bounds the files processed at once and the workers
	// transforming rows.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// CSV controls how CSV input is read.
	CSV CSVSettings `yaml:"csv"`

	// Sheet selects the XLSX worksheet. Empty selects the first sheet.
	Sheet string `yaml:"sheet"`

	// Aliases maps source column headers to canonical fields. When set it
	// replaces the built-in alias table entirely.
	Aliases map[string]string `yaml:"aliases"`

	// Required lists canonical fields that must be mapped before a batch
	// is converted.
	// Default: last_name, street, postal_code, city
	Required []string `yaml:"required"`

	// =========================================================================
	// EXPORT SETTINGS
	// =========================================================================

	// Sender is prepended to every export when set.
	Sender *Sender `yaml:"sender"`

	// ExportFilter is "all", "domestic" or "international".
	// Default: "all"
	ExportFilter string `yaml:"export_filter"`

	// =========================================================================
	// SESSION SETTINGS
	// =========================================================================

	// SessionFile stores the interactive record set between commands.
	// Default: "./.labelconv/session.json"
	SessionFile string `yaml:"session_file"`
}

// CSVSettings contains CSV input settings.
type CSVSettings struct {
	// Delimiter is a single character, "tab", or "auto" to detect ";", ","
	// or tab from the header line.
	// Default: "auto"
	Delimiter string `yaml:"delimiter"`

	// Encoding is "UTF-8" or "Windows-1252".
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`
}

// Sender is the package sender written as the first export row.
type Sender struct {
	Name       string `yaml:"name" json:"name"`
	Addition   string `yaml:"addition" json:"addition"`
	Street     string `yaml:"street" json:"street"`
	Number     string `yaml:"number" json:"number"`
	PostalCode string `yaml:"postal_code" json:"postal_code"`
	City       string `yaml:"city" json:"city"`
	Country    string `yaml:"country" json:"country"`
}

// overrides holds the environment variables read on top of the file.
type overrides struct {
	InputDir        string `env:"INPUT_DIR"`
	OutputDir       string `env:"OUTPUT_DIR"`
	InputArchiveDir string `env:"INPUT_ARCHIVE_DIR"`
	ArchiveByDate   bool   `env:"ARCHIVE_BY_DATE"`
	LogLevel        string `env:"LOG_LEVEL"`
	LogFormat       string `env:"LOG_FORMAT"`
	OutputFormat    string `env:"OUTPUT_FORMAT"`
	MaxConcurrency  int    `env:"MAX_CONCURRENCY"`
	CSVDelimiter    string `env:"CSV_DELIMITER"`
	CSVEncoding     string `env:"CSV_ENCODING"`
	Sheet           string `env:"SHEET"`
	ExportFilter    string `env:"EXPORT_FILTER"`
	SessionFile     string `env:"SESSION_FILE"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the main config file, applies environment overrides and fills
// in defaults.
//
// PARAMETERS:
//   - path: The YAML file. An empty path skips the file and uses defaults.
//
// RETURNS:
//   - The loaded configuration.
//   - An error if the file cannot be read or parsed, or a value is invalid.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration with environment overrides
// ignored.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyEnv(cfg *Config) error {
	var o overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return err
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.InputDir, o.InputDir)
	set(&cfg.OutputDir, o.OutputDir)
	set(&cfg.InputArchiveDir, o.InputArchiveDir)
	set(&cfg.LogLevel, o.LogLevel)
	set(&cfg.LogFormat, o.LogFormat)
	set(&cfg.OutputFormat, o.OutputFormat)
	set(&cfg.CSV.Delimiter, o.CSVDelimiter)
	set(&cfg.CSV.Encoding, o.CSVEncoding)
	set(&cfg.Sheet, o.Sheet)
	set(&cfg.ExportFilter, o.ExportFilter)
	set(&cfg.SessionFile, o.SessionFile)
	if o.ArchiveByDate {
		cfg.ArchiveByDate = true
	}
	if o.MaxConcurrency > 0 {
		cfg.MaxConcurrency = o.MaxConcurrency
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "{name}_{timestamp}.csv"
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = "auto"
	}
	if cfg.CSV.Encoding == "" {
		cfg.CSV.Encoding = "UTF-8"
	}
	if len(cfg.Required) == 0 {
		cfg.Required = []string{"last_name", "street", "postal_code", "city"}
	}
	if cfg.ExportFilter == "" {
		cfg.ExportFilter = "all"
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = "./.labelconv/session.json"
	}
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q must be debug, info, warn or error", c.LogLevel))
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format %q must be console or json", c.LogFormat))
	}

	switch strings.ToLower(c.ExportFilter) {
	case "all", "domestic", "international":
	default:
		errs = append(errs, fmt.Errorf("export_filter %q must be all, domestic or international", c.ExportFilter))
	}

	switch NormalizeEncoding(c.CSV.Encoding) {
	case EncodingUTF8, EncodingWindows1252:
	default:
		errs = append(errs, fmt.Errorf("csv.encoding %q must be UTF-8 or Windows-1252", c.CSV.Encoding))
	}

	return errors.Join(errs...)
}

// Supported CSV input encodings.
const (
	EncodingUTF8        = "UTF-8"
	EncodingWindows1252 = "Windows-1252"
)

// NormalizeEncoding maps common spellings onto EncodingUTF8 and
// EncodingWindows1252. Unknown names are returned unchanged.
func NormalizeEncoding(name string) string {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "windows-1252", "cp1252", "win1252", "latin1", "iso-8859-1":
		return EncodingWindows1252
	}
	return name
}
