package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"deskenv/internal/detector"
	"deskenv/internal/display"
	"deskenv/internal/logging"
)

// EnvConfigPath names the config file when no --config flag is given.
const EnvConfigPath = "DESKENV_CONFIG"

type Config struct {
	Verbose       bool   `yaml:"verbose"`
	LogLevel      string `yaml:"log_level"`
	LogPretty     bool   `yaml:"log_pretty"`
	LogOutput     string `yaml:"log_output"`
	LogFile       string `yaml:"log_file,omitempty"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`

	ProcessTable             string `yaml:"process_table"`
	ExclusiveSessionFallback bool   `yaml:"exclusive_session_fallback"`
	ReleaseRoot              string `yaml:"release_root"`
	OutputFormat             string `yaml:"output_format"`

	// Consulted in order before the built-in tables.
	DistroNames  []detector.Mapping `yaml:"distro_names,omitempty"`
	DesktopNames []detector.Mapping `yaml:"desktop_names,omitempty"`
}

func Default() *Config {
	log := logging.DefaultConfig()
	return &Config{
		Verbose:       log.Verbose,
		LogLevel:      log.Level,
		LogPretty:     log.Pretty,
		LogOutput:     log.Output,
		LogMaxSizeMB:  log.MaxSizeMB,
		LogMaxBackups: log.MaxBackups,
		LogMaxAgeDays: log.MaxAgeDays,
		ProcessTable:  detector.BackendGopsutil,
		ReleaseRoot:   "/",
		OutputFormat:  display.FormatText,
	}
}

// Load reads filename on top of the defaults and validates the result.
func Load(filename string) (*Config, error) {
	file, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if cfg.ReleaseRoot == "" {
		cfg.ReleaseRoot = "/"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return cfg, nil
}

// ResolvePath picks the config file to load: the flag value, then
// $DESKENV_CONFIG, then the per-user config file if it exists. An empty
// result means run on defaults.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	if path := UserConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskenv", "config.yaml")
}

func (c *Config) Validate() error {
	switch c.ProcessTable {
	case detector.BackendGopsutil, detector.BackendGoPS, detector.BackendNone:
	default:
		return fmt.Errorf("process_table must be %s, %s or %s, got %q",
			detector.BackendGopsutil, detector.BackendGoPS, detector.BackendNone, c.ProcessTable)
	}

	switch c.LogOutput {
	case logging.OutputStderr, logging.OutputStdout:
	case logging.OutputFile:
		if c.LogFile == "" {
			return fmt.Errorf("log_output is file but log_file is empty")
		}
	default:
		return fmt.Errorf("unknown log_output %q", c.LogOutput)
	}

	if !display.IsFormat(c.OutputFormat) {
		return fmt.Errorf("unknown output_format %q", c.OutputFormat)
	}

	if _, err := detector.CompileTable(c.DistroNames); err != nil {
		return fmt.Errorf("distro_names: %w", err)
	}
	if _, err := detector.CompileTable(c.DesktopNames); err != nil {
		return fmt.Errorf("desktop_names: %w", err)
	}

	return nil
}

func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:      c.LogLevel,
		Verbose:    c.Verbose,
		Pretty:     c.LogPretty,
		Output:     c.LogOutput,
		FilePath:   c.LogFile,
		MaxSizeMB:  c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		MaxAgeDays: c.LogMaxAgeDays,
	}
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
