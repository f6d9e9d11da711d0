// Package config holds the runner's YAML configuration.
package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration that unmarshals from YAML strings like "3s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts to the standard library type.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the top-level configuration.
type Config struct {
	BaseURL  string        `yaml:"base_url"`
	KeysFile string        `yaml:"keys_file"`
	Message  MessageConfig `yaml:"message"`
	Cookies  CookieConfig  `yaml:"cookies"`
	Pacing   PacingConfig  `yaml:"pacing"`
	Retry    RetryConfig   `yaml:"retry"`
	Events   EventsConfig  `yaml:"events"`
	Server   ServerConfig  `yaml:"server"`
	Logging  LoggingConfig `yaml:"logging"`
	Redis    RedisConfig   `yaml:"redis"`

	CycleInterval Duration `yaml:"cycle_interval"`
}

// MessageConfig holds the sign-in message constants.
type MessageConfig struct {
	Domain    string `yaml:"domain"`
	URI       string `yaml:"uri"`
	Statement string `yaml:"statement"`
	Version   string `yaml:"version"`
	ChainID   int    `yaml:"chain_id"`
}

// CookieConfig selects the cookie persistence backend.
type CookieConfig struct {
	Backend string `yaml:"backend"` // file, redis, memory
	File    string `yaml:"file"`
}

// DelayConfig is a randomized wait bound.
type DelayConfig struct {
	Min Duration `yaml:"min"`
	Max Duration `yaml:"max"`
}

// PacingConfig is the step→delay table.
type PacingConfig struct {
	StepDelay  Duration    `yaml:"step_delay"`
	TaskBefore DelayConfig `yaml:"task_before"`
	TaskAfter  DelayConfig `yaml:"task_after"`
	Account    DelayConfig `yaml:"account"`
}

// RetryConfig bounds the streak-update retry policy.
type RetryConfig struct {
	Attempts int      `yaml:"attempts"`
	Delay    Duration `yaml:"delay"`
}

// EventsConfig controls result publication to a redis stream.
type EventsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ServerConfig holds status server settings. Port 0 disables the server.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // optional append-only log file
}

// RedisConfig holds the redis connection used by the redis cookie backend
// and the event stream.
type RedisConfig struct {
	URL string `yaml:"url"`
}
