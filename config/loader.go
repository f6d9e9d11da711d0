package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file. Environment variables in the
// file content are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base_url is required")
	}
	if cfg.Cookies.Backend == "redis" && cfg.Redis.URL == "" {
		return nil, fmt.Errorf("cookies.backend is redis but redis.url is not set")
	}
	if cfg.Events.Enabled && cfg.Redis.URL == "" {
		return nil, fmt.Errorf("events.enabled requires redis.url")
	}

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.KeysFile == "" {
		cfg.KeysFile = "keys.txt"
	}
	if cfg.CycleInterval == 0 {
		cfg.CycleInterval = Duration(24 * time.Hour)
	}
	if cfg.Cookies.Backend == "" {
		cfg.Cookies.Backend = "file"
	}
	if cfg.Cookies.File == "" {
		cfg.Cookies.File = "cookies.json"
	}
	if cfg.Pacing.StepDelay == 0 {
		cfg.Pacing.StepDelay = Duration(3 * time.Second)
	}
	if cfg.Pacing.TaskBefore.Max == 0 {
		cfg.Pacing.TaskBefore = DelayConfig{Min: Duration(1 * time.Second), Max: Duration(3 * time.Second)}
	}
	if cfg.Pacing.TaskAfter.Max == 0 {
		cfg.Pacing.TaskAfter = DelayConfig{Min: Duration(1 * time.Second), Max: Duration(2 * time.Second)}
	}
	if cfg.Pacing.Account.Max == 0 {
		cfg.Pacing.Account = DelayConfig{Min: Duration(5 * time.Second), Max: Duration(10 * time.Second)}
	}
	if cfg.Retry.Attempts == 0 {
		cfg.Retry.Attempts = 3
	}
	if cfg.Retry.Delay == 0 {
		cfg.Retry.Delay = Duration(2 * time.Second)
	}
	if cfg.Message.Version == "" {
		cfg.Message.Version = "1"
	}
	if cfg.Message.ChainID == 0 {
		cfg.Message.ChainID = 1
	}
	if cfg.Message.Statement == "" {
		cfg.Message.Statement = "Sign in to the app."
	}
	if cfg.Message.URI == "" {
		cfg.Message.URI = cfg.BaseURL
	}
	if cfg.Message.Domain == "" {
		if u, err := url.Parse(cfg.BaseURL); err == nil {
			cfg.Message.Domain = u.Host
		}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
