// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: command-line flags > environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "1s", "500ms", "2m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all reporter configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportConfig holds the report selection, unit, and cycle settings.
type ReportConfig struct {
	// Extended selects the extended device layout (merge rates, await,
	// service time, utilization).
	Extended bool `yaml:"extended"`

	// CPU and Device select which report sections to show. When neither
	// is set, both sections are shown.
	CPU    bool `yaml:"cpu"`
	Device bool `yaml:"device"`

	// Kilobytes and Megabytes select the throughput unit. Kilobytes is
	// the default; Megabytes wins when both are set.
	Kilobytes bool `yaml:"kilobytes"`
	Megabytes bool `yaml:"megabytes"`

	// OmitFirst skips the initial since-boot report.
	OmitFirst bool `yaml:"omit_first"`

	// Interval is the sampling interval between reports.
	Interval Duration `yaml:"interval"`

	// Count is the number of reports to emit; 0 means unbounded.
	Count uint `yaml:"count"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Interval: Duration{1 * time.Second},
			Count:    0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables override values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and
// environment variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// Locate searches the standard config file paths and returns the first
// one that exists, or empty string when none does.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("IOSTAT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if interval := os.Getenv("IOSTAT_INTERVAL"); interval != "" {
		if parsed, err := time.ParseDuration(interval); err == nil {
			cfg.Report.Interval = Duration{parsed}
		} else if secs, err := strconv.ParseFloat(interval, 64); err == nil {
			cfg.Report.Interval = Duration{time.Duration(secs * float64(time.Second))}
		}
	}
}

// Validate checks that the configuration can drive a report cycle.
func (c *Config) Validate() error {
	if c.Report.Interval.Duration <= 0 {
		return fmt.Errorf("interval must be positive (got %v)", c.Report.Interval.Duration)
	}
	return nil
}

// ShowCPU reports whether the CPU section is selected. Both sections are
// shown when neither selection flag is set.
func (c *Config) ShowCPU() bool {
	return c.Report.CPU || !c.Report.Device
}

// ShowDevice reports whether the device section is selected.
func (c *Config) ShowDevice() bool {
	return c.Report.Device || !c.Report.CPU
}

// UnitDivisor returns the throughput unit divisor: 1 for kilobytes,
// 1024 for megabytes.
func (c *Config) UnitDivisor() float64 {
	if c.Report.Megabytes {
		return 1024.0
	}
	return 1.0
}

// UnitLabel returns the throughput unit label used in report headers.
func (c *Config) UnitLabel() string {
	if c.Report.Megabytes {
		return "MB"
	}
	return "kB"
}
