// Package config loads and validates the proofscan configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"proofscan/internal/report"
)

// ConfigDir is the directory, relative to the project root, holding the
// configuration, calibration file and run-history database.
const ConfigDir = ".proofscan"

// Config represents the complete proofscan configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// ReportDir is the directory scanned for report files.
	ReportDir string `json:"reportDir" mapstructure:"reportDir"`
	// ReportExtension is the report file extension to look for.
	ReportExtension string `json:"reportExtension" mapstructure:"reportExtension"`

	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis"`
	History  HistoryConfig  `json:"history" mapstructure:"history"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// AnalysisConfig contains ranking and normalization configuration
type AnalysisConfig struct {
	// ExcludeProvers are dropped from the ranking output in addition to the
	// Trivial pseudo-prover, which is always excluded.
	ExcludeProvers []string `json:"excludeProvers" mapstructure:"excludeProvers"`
	// CalibrationPath points at an optional step-normalization TOML file.
	CalibrationPath string `json:"calibrationPath" mapstructure:"calibrationPath"`
	// MaxFiles caps the number of files in the output (0 = unlimited).
	MaxFiles int `json:"maxFiles" mapstructure:"maxFiles"`
}

// HistoryConfig contains run-history configuration
type HistoryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// MaxRuns is how many runs the history listing shows by default.
	MaxRuns int `json:"maxRuns" mapstructure:"maxRuns"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		ReportDir:       ".",
		ReportExtension: report.DefaultExtension,
		Analysis: AnalysisConfig{
			ExcludeProvers:  []string{},
			CalibrationPath: filepath.Join(ConfigDir, "calibration.toml"),
			MaxFiles:        0,
		},
		History: HistoryConfig{
			Enabled: true,
			MaxRuns: 20,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .proofscan/config.json under root.
// A missing config file yields the defaults.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("reportDir", ".")
	v.SetDefault("reportExtension", report.DefaultExtension)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.maxRuns", 20)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ConfigDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Analysis.CalibrationPath == "" {
		cfg.Analysis.CalibrationPath = filepath.Join(ConfigDir, "calibration.toml")
	}

	return &cfg, nil
}

// Save writes the configuration to .proofscan/config.json under root.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.ReportExtension == "" {
		return &ConfigError{Field: "reportExtension", Message: "must not be empty"}
	}
	if c.Analysis.MaxFiles < 0 {
		return &ConfigError{Field: "analysis.maxFiles", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
