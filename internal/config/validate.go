package config

import (
	"fmt"
	"math"
	"net/url"

	"github.com/sirupsen/logrus"
)

func (c *Config) validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateCapacity(); err != nil {
		return err
	}

	if err := c.validateLabels(); err != nil {
		return err
	}

	return c.validateLogLevel()
}

func (c *Config) validateDatabase() error {
	if c.DatabaseURL.Value() == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	dbURL, err := url.Parse(c.DatabaseURL.Value())
	if err != nil {
		return fmt.Errorf("DATABASE_URL is not a valid URL: %w", err)
	}

	if dbURL.Scheme != "postgres" && dbURL.Scheme != "postgresql" {
		return fmt.Errorf("DATABASE_URL scheme must be postgres:// or postgresql://")
	}

	if dbURL.Hostname() == "" {
		return fmt.Errorf("DATABASE_URL must include a host")
	}

	return nil
}

// validateCapacity rejects values the capacity math cannot handle.
// Non-positive capacity is allowed and means "no limit configured".
func (c *Config) validateCapacity() error {
	if math.IsNaN(c.CapacityKG) || math.IsInf(c.CapacityKG, 0) {
		return fmt.Errorf("WASTELOG_CAPACITY_KG must be a finite number")
	}

	return nil
}

func (c *Config) validateLabels() error {
	if len(c.Businesses) == 0 {
		return fmt.Errorf("WASTELOG_BUSINESSES must list at least one business")
	}

	if len(c.Streams) == 0 {
		return fmt.Errorf("WASTELOG_STREAMS must list at least one waste stream")
	}

	if dup := firstDuplicate(c.Businesses); dup != "" {
		return fmt.Errorf("WASTELOG_BUSINESSES contains duplicate label %q", dup)
	}

	if dup := firstDuplicate(c.Streams); dup != "" {
		return fmt.Errorf("WASTELOG_STREAMS contains duplicate label %q", dup)
	}

	return nil
}

func (c *Config) validateLogLevel() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid logrus level", c.LogLevel)
	}

	return nil
}

func firstDuplicate(labels []string) string {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return l
		}
		seen[l] = true
	}

	return ""
}
