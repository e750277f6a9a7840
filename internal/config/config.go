// Package config provides environment-driven configuration for wastelog.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// DefaultCapacityKG is the monthly on-site mass capacity used when none is
// configured.
const DefaultCapacityKG = 1000.0

// Config holds all application configuration values.
type Config struct {
	DatabaseURL Secret
	CapacityKG  float64
	Businesses  []string
	Streams     []string
	LogLevel    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: Secret(envOrDefault("DATABASE_URL", "")),
		Businesses:  splitLabels(envOrDefault("WASTELOG_BUSINESSES", "DAB,CTI")),
		Streams:     splitLabels(envOrDefault("WASTELOG_STREAMS", "ACN,DCM")),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
	}

	rawCap := envOrDefault("WASTELOG_CAPACITY_KG", strconv.FormatFloat(DefaultCapacityKG, 'f', -1, 64))

	capacity, err := strconv.ParseFloat(rawCap, 64)
	if err != nil {
		return nil, fmt.Errorf("WASTELOG_CAPACITY_KG must be a number, got %q", rawCap)
	}
	cfg.CapacityKG = capacity

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// splitLabels parses a comma-separated label list, trimming whitespace and
// dropping empty items.
func splitLabels(raw string) []string {
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}

	return labels
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
