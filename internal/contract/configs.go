package contract

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skoscan/skoscan/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultTimeout     = 30 * time.Second

	// DefaultVocabGraphBatchLimit is the batching threshold for the
	// vocabulary-graph probe: above this many graphs the probe reports a
	// count only and skips enumerating URIs. It is a policy knob, not an
	// algorithmic constant.
	DefaultVocabGraphBatchLimit = 200
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analyzer and CLI.
// This struct remains the "final, validated" config.
type Config struct {
	EndpointRef string // positional arg: numeric registry id or endpoint URL
	ResultLimit int
	Timeout     time.Duration
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	VocabBatchLimit int

	RegistryBackend   schema.DatabaseBackend
	RegistryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored statuses in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	EndpointRefStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit             int    `mapstructure:"limit"`
	Timeout           string `mapstructure:"timeout"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Width             int    `mapstructure:"width"`
	VocabBatchLimit   int    `mapstructure:"vocab-batch-limit"`
	RegistryBackend   string `mapstructure:"registry-backend"`
	RegistryDBConnect string `mapstructure:"registry-db-connect"`
	Color             string `mapstructure:"color"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-backend fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.EndpointRef = input.EndpointRefStr

	// --- Result limit ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- Timeout ---
	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		cfg.Timeout = d
	}

	// --- Vocab graph batch limit ---
	cfg.VocabBatchLimit = input.VocabBatchLimit
	if cfg.VocabBatchLimit <= 0 {
		cfg.VocabBatchLimit = DefaultVocabGraphBatchLimit
	}

	// --- Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- Colors ---
	cfg.UseColors = parseBoolFlag(input.Color, true)

	return nil
}

// validateBackendConfig validates the registry backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.RegistryBackend = schema.DatabaseBackend(strings.ToLower(input.RegistryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.RegistryBackend]; !ok {
		return fmt.Errorf("invalid registry backend '%s'. must be sqlite, mysql, postgresql, none", input.RegistryBackend)
	}
	cfg.RegistryDBConnect = input.RegistryDBConnect
	return ValidateDatabaseConnectionString(cfg.RegistryBackend, cfg.RegistryDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("registry-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("registry-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// URL form")
		}
	}
	return nil
}

// ValidateEndpointURL checks that a raw endpoint URL is an absolute http(s) URL.
func ValidateEndpointURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint URL %q has no host", raw)
	}
	return nil
}

// parseBoolFlag interprets yes/no style flag values, falling back to def
// for unrecognized input.
func parseBoolFlag(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on":
		return true
	case "no", "false", "0", "off":
		return false
	default:
		return def
	}
}

// GetRegistryDBFilePath returns the path to the SQLite DB file for registry storage.
func GetRegistryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".skoscan_registry.db"
	}
	return filepath.Join(homeDir, ".skoscan", "registry.db")
}
