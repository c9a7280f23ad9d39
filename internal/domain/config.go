package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDelay emulates the round trip to a remote review service.
	DefaultDelay = 800 * time.Millisecond
	// DefaultRulesChecked is the number of distinct checks the engine implements.
	DefaultRulesChecked = 10

	maxDelayMs = 60_000
)

// DefaultExtensions lists the file extensions reviewed by --changed.
var DefaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// ValidLogLevels enumerates accepted log_level values.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Config holds project-level configuration loaded from .revu.yaml.
type Config struct {
	DelayMs      int          `yaml:"delay_ms"      json:"delay_ms"`
	RulesChecked int          `yaml:"rules_checked" json:"rules_checked"`
	Extensions   []string     `yaml:"extensions"    json:"extensions,omitempty"`
	FailOn       string       `yaml:"fail_on"       json:"fail_on,omitempty"`
	LogLevel     string       `yaml:"log_level"     json:"log_level,omitempty"`
	Server       ServerConfig `yaml:"server"        json:"server"`
}

// ServerConfig tunes the HTTP host.
type ServerConfig struct {
	Addr         string `yaml:"addr"           json:"addr"`
	AllowOrigin  string `yaml:"allow_origin"   json:"allow_origin"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" json:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when no .revu.yaml exists.
func DefaultConfig() Config {
	return Config{
		DelayMs:      int(DefaultDelay / time.Millisecond),
		RulesChecked: DefaultRulesChecked,
		Extensions:   append([]string(nil), DefaultExtensions...),
		FailOn:       FailOnNone,
		LogLevel:     "info",
		Server: ServerConfig{
			Addr:         ":3000",
			AllowOrigin:  "*",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Delay returns the configured artificial latency.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.DelayMs < 0 || c.DelayMs > maxDelayMs {
		return fmt.Errorf("delay_ms = %d (must be between 0 and %d)", c.DelayMs, maxDelayMs)
	}
	if c.RulesChecked <= 0 {
		return fmt.Errorf("rules_checked must be > 0 (got %d)", c.RulesChecked)
	}
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extensions[%d] = %q (must look like \".js\")", i, ext)
		}
	}
	switch c.FailOn {
	case "", FailOnNone, FailOnError, FailOnWarning:
	default:
		return fmt.Errorf("unknown fail_on %q (valid: none, error, warning)", c.FailOn)
	}
	if c.LogLevel != "" && !contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("unknown log_level %q (valid: %s)", c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}
	return nil
}

// HasExtension reports whether path ends with one of the configured extensions.
func (c Config) HasExtension(path string) bool {
	return HasExtension(path, c.Extensions)
}

// HasExtension reports whether path ends with one of extensions.
func HasExtension(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
