// Package config loads the process configuration from a JSON5 file with
// DAYCLAW_* environment overrides for credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/titanous/json5"
)

// Config is the full process configuration.
type Config struct {
	DataDir  string `json:"dataDir"`
	LogLevel string `json:"logLevel"` // "debug", "info", "warn", "error"

	Store struct {
		Backend  string `json:"backend"` // "file" (default) or "redis"
		Path     string `json:"path"`    // file backend; default <dataDir>/users.json
		RedisURL string `json:"redisUrl"`
		RedisKey string `json:"redisKey"`
	} `json:"store"`

	HTTP struct {
		Addr  string `json:"addr"`
		Token string `json:"token"` // bearer token for the webhook, empty = open
	} `json:"http"`

	Provider struct {
		Name            string `json:"name"` // "openai" or "dashscope"
		APIKey          string `json:"apiKey"`
		APIBase         string `json:"apiBase"`
		Model           string `json:"model"`
		ClassifierModel string `json:"classifierModel"` // empty = same as Model
	} `json:"provider"`

	Search struct {
		BraveAPIKey string `json:"braveApiKey"`
	} `json:"search"`

	Memory struct {
		MaxTurns int `json:"maxTurns"`
	} `json:"memory"`

	Telegram struct {
		Enabled bool   `json:"enabled"`
		Token   string `json:"token"`
	} `json:"telegram"`

	Reminders struct {
		MorningCron string `json:"morningCron"` // 5-field cron, empty = off
		NightCron   string `json:"nightCron"`
	} `json:"reminders"`
}

// Default returns the baseline configuration.
func Default() *Config {
	cfg := &Config{}
	home, _ := os.UserHomeDir()
	cfg.DataDir = filepath.Join(home, ".dayclaw")
	cfg.LogLevel = "info"
	cfg.Store.Backend = "file"
	cfg.HTTP.Addr = ":8090"
	cfg.Provider.Name = "openai"
	cfg.Memory.MaxTurns = 15
	return cfg
}

// Load reads path (JSON5, missing file is fine) on top of defaults, then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := json5.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(cfg.DataDir, "users.json")
	}
	return cfg, nil
}

// applyEnv lets credentials come from the environment so the config file
// can be committed without secrets.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DAYCLAW_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("DAYCLAW_API_BASE"); v != "" {
		cfg.Provider.APIBase = v
	}
	if v := os.Getenv("DAYCLAW_MODEL"); v != "" {
		cfg.Provider.Model = v
	}
	if v := os.Getenv("DAYCLAW_BRAVE_API_KEY"); v != "" {
		cfg.Search.BraveAPIKey = v
	}
	if v := os.Getenv("DAYCLAW_TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.Token = v
		cfg.Telegram.Enabled = true
	}
	if v := os.Getenv("DAYCLAW_HTTP_TOKEN"); v != "" {
		cfg.HTTP.Token = v
	}
	if v := os.Getenv("DAYCLAW_REDIS_URL"); v != "" {
		cfg.Store.Backend = "redis"
		cfg.Store.RedisURL = v
	}
}

// DefaultPath is the conventional config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dayclaw", "dayclaw.json5")
}
