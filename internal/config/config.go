// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Paper sizes accepted for PDF export
const (
	PaperLetter = "letter"
	PaperA4     = "a4"
)

// Duration is a time.Duration that reads and writes as a Go duration string ("30m").
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", string(b))
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config represents the server and CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values are filled from Defaults.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; drafts are disabled when empty

	// Sessions
	SessionTTL           Duration `json:"session_ttl,omitempty"`            // idle time before a builder session is dropped
	SessionSweepInterval Duration `json:"session_sweep_interval,omitempty"` // how often idle sessions are swept

	// Export
	ChromePath string   `json:"chrome_path,omitempty"` // Chrome/Chromium binary; empty uses chromedp's lookup
	PDFPaper   string   `json:"pdf_paper,omitempty"`   // "letter" or "a4"
	PDFTimeout Duration `json:"pdf_timeout,omitempty"` // per-export browser timeout
	Template   string   `json:"template,omitempty"`    // custom LaTeX template path

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                 8080,
		SessionTTL:           Duration(2 * time.Hour),
		SessionSweepInterval: Duration(5 * time.Minute),
		PDFPaper:             PaperLetter,
		PDFTimeout:           Duration(30 * time.Second),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the configuration.
// Unset variables leave the field alone; malformed values are an error.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: PORT must be an integer: %w", err)
		}
		c.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("PDF_PAPER"); v != "" {
		c.PDFPaper = strings.ToLower(v)
	}

	durations := []struct {
		key string
		dst *Duration
	}{
		{"SESSION_TTL", &c.SessionTTL},
		{"SESSION_SWEEP_INTERVAL", &c.SessionSweepInterval},
		{"PDF_TIMEOUT", &c.PDFTimeout},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: %s: %w", d.key, err)
		}
		*d.dst = Duration(parsed)
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config error: 'session_ttl' must be non-negative")
	}
	if c.SessionSweepInterval < 0 {
		return fmt.Errorf("config error: 'session_sweep_interval' must be non-negative")
	}
	if c.PDFTimeout < 0 {
		return fmt.Errorf("config error: 'pdf_timeout' must be non-negative")
	}

	switch c.PDFPaper {
	case "", PaperLetter, PaperA4:
	default:
		return fmt.Errorf("config error: 'pdf_paper' must be %q or %q, got %q", PaperLetter, PaperA4, c.PDFPaper)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SessionTTL == 0 {
		result.SessionTTL = defaults.SessionTTL
	}
	if result.SessionSweepInterval == 0 {
		result.SessionSweepInterval = defaults.SessionSweepInterval
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.PDFPaper == "" {
		result.PDFPaper = defaults.PDFPaper
	}
	if result.PDFTimeout == 0 {
		result.PDFTimeout = defaults.PDFTimeout
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// Load reads the optional file at path, overlays the environment, fills
// defaults and validates. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
