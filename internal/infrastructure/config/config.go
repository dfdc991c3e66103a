// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the XDG data subdirectory.
	AppName = "thanepark"
	// DefaultConfigDir is the directory name for thanepark configuration.
	DefaultConfigDir = ".thanepark"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultParksFile is the default parks file name.
	DefaultParksFile = "parks.yaml"
	// DefaultEnvFile is loaded from the base path when present.
	DefaultEnvFile = ".env"
	// DefaultDBFile is the SQLite file name inside a park directory.
	DefaultDBFile = "thanepark.db"
	// DefaultPark is used when no park is selected.
	DefaultPark = "thanepark"
)

// Environment variable overrides.
const (
	EnvDB           = "THANEPARK_DB"
	EnvLogLevel     = "THANEPARK_LOG_LEVEL"
	EnvLogFormat    = "THANEPARK_LOG_FORMAT"
	EnvHTTPAddr     = "THANEPARK_HTTP_ADDR"
	EnvMaxSnapshots = "THANEPARK_MAX_SNAPSHOTS"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static application configuration (read-only after load).
type Config struct {
	Storage StorageConfig `yaml:"storage,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
	HTTP    HTTPConfig    `yaml:"http,omitempty"`
	Report  ReportConfig  `yaml:"report,omitempty"`
}

// StorageConfig holds configuration for the SQLite database.
type StorageConfig struct {
	// Path is the file path to the SQLite database. When empty it is
	// derived from the selected park, see DBPath.
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds configuration for the structured logger.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
}

// HistoryConfig bounds the in-session undo history.
type HistoryConfig struct {
	MaxSnapshots int `yaml:"max_snapshots,omitempty"` // includes the current state; 0 = unbounded
}

// HTTPConfig holds configuration for the read-only report server.
type HTTPConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// ReportConfig holds configuration for generated reports.
type ReportConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Report: ReportConfig{
			Dir: "reports",
		},
	}
}

// Load loads configuration from the .thanepark directory in the given path.
// A missing config file is not an error: defaults plus environment
// overrides are returned.
func Load(basePath string) (*Config, error) {
	if err := loadEnvFile(basePath); err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile loads <basePath>/.env without overriding variables that are
// already set.
func loadEnvFile(basePath string) error {
	envFile := filepath.Join(basePath, DefaultEnvFile)
	if _, err := os.Stat(envFile); err != nil {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
	if v := os.Getenv(EnvMaxSnapshots); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMaxSnapshots, err)
		}
		c.History.MaxSnapshots = n
	}
	return nil
}

// Validate checks option values.
func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (valid: text, json)", c.Log.Format)
	}
	if c.History.MaxSnapshots < 0 {
		return fmt.Errorf("history.max_snapshots must not be negative, got %d", c.History.MaxSnapshots)
	}
	return nil
}

// DBPath returns the database to open for park. An explicit storage path
// wins; a project with a config directory keeps one database per park under
// it; otherwise the database lives in the user's XDG data directory.
func (c *Config) DBPath(basePath, park string) (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	if Exists(basePath) {
		return ParkDBPath(basePath, park), nil
	}
	path, err := xdg.DataFile(filepath.Join(AppName, SanitizeParkName(park)+".db"))
	if err != nil {
		return "", fmt.Errorf("resolving data file: %w", err)
	}
	return path, nil
}

// ReportDir returns the report directory, relative paths resolved against
// basePath.
func (c *Config) ReportDir(basePath string) string {
	if filepath.IsAbs(c.Report.Dir) {
		return c.Report.Dir
	}
	return filepath.Join(basePath, c.Report.Dir)
}

// ConfigDir returns the path to the .thanepark config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// ParksFilePath returns the path to the parks file.
func ParksFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultParksFile)
}

// Exists checks if a thanepark config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizeParkName converts a park name to a safe directory name.
func SanitizeParkName(name string) string {
	name = strings.ToLower(name)

	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	name = reNonAlphanumeric.ReplaceAllString(name, "")
	name = reMultipleUnderscores.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		return DefaultPark
	}

	return name
}

// ParkDir returns the directory path for a given park.
func ParkDir(basePath, parkName string) string {
	return filepath.Join(basePath, DefaultConfigDir, "parks", SanitizeParkName(parkName))
}

// ParkDBPath returns the SQLite database path for a given park.
func ParkDBPath(basePath, parkName string) string {
	return filepath.Join(ParkDir(basePath, parkName), DefaultDBFile)
}
