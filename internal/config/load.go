package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

func Load(path string) (*Config, error) {
	// read raw YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// expand $(ENV_VAR) placeholders
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Backup.Strategy == "" {
		c.Backup.Strategy = "native"
	}
	if c.Watch.Mode == "" {
		c.Watch.Mode = "auto"
	}
	if c.Watch.PollInterval == 0 {
		c.Watch.PollInterval = Duration(5 * time.Second)
	}
	if c.Watch.DebounceWindow == 0 {
		c.Watch.DebounceWindow = Duration(500 * time.Millisecond)
	}
	if c.Watch.StabilityWindow == 0 {
		c.Watch.StabilityWindow = Duration(200 * time.Millisecond)
	}
}

// Validate checks the fields serve mode cannot run without.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("config: database.path is required")
	}
	if c.Backup.Dir == "" {
		return fmt.Errorf("config: backup.dir is required")
	}
	if c.Schedule.Cron == "" && !c.Watch.Enabled {
		return fmt.Errorf("config: at least one of schedule.cron and watch.enabled is required")
	}
	return nil
}
