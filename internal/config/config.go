// Package config holds the serve-mode configuration file model.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML scalars like "5s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Backup   BackupConfig   `yaml:"backup"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type BackupConfig struct {
	Dir      string `yaml:"dir"`
	Strategy string `yaml:"strategy"` // "native", "raw", "compact"
}

type ScheduleConfig struct {
	Cron      string          `yaml:"cron"` // empty disables scheduled backups
	Retention RetentionConfig `yaml:"retention"`
}

type RetentionConfig struct {
	MaxAgeDays *float64 `yaml:"maxAgeDays"`
	MaxCount   *int     `yaml:"maxCount"`
}

type WatchConfig struct {
	Enabled         bool     `yaml:"enabled"`
	Mode            string   `yaml:"mode"`           // "auto", "poll", "fsnotify"
	PollInterval    Duration `yaml:"pollInterval"`   // e.g. 5s
	DebounceWindow  Duration `yaml:"debounceWindow"` // e.g. 500ms
	StabilityWindow Duration `yaml:"stabilityWindow"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "info", "debug", etc.
	Format string `yaml:"format"` // "json", "console"
}
