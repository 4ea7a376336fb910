package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "http://localhost:8000/api"
	DefaultTimeout   = 30 * time.Second
	DefaultLoginPath = "/login"

	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config represents the admin client configuration.
type Config struct {
	BaseURL   string        `yaml:"baseURL" json:"baseURL"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
	Store     Store         `yaml:"store" json:"store"`
	Log       Log           `yaml:"log" json:"log"`
	LoginPath string        `yaml:"loginPath" json:"loginPath"`
}

// Store selects the token store backend.
type Store struct {
	Type string `yaml:"type" json:"type"`
	// URL locates the token file of the file store
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	RedisAddr   string `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty"`
	RedisPrefix string `yaml:"redisPrefix,omitempty" json:"redisPrefix,omitempty"`
}

type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		Store:     Store{Type: StoreMemory},
		Log:       Log{Level: "info", Format: "text"},
		LoginPath: DefaultLoginPath,
	}
}

// Init fills unset fields with defaults.
func (c *Config) Init() {
	defaults := Default()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = defaults.Timeout
	}
	if c.Store.Type == "" {
		c.Store.Type = defaults.Store.Type
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.LoginPath == "" {
		c.LoginPath = defaults.LoginPath
	}
}

// Validate checks the configuration is usable.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("invalid baseURL %q: expected http(s) URL", c.BaseURL)
	}
	switch c.Store.Type {
	case StoreMemory:
	case StoreFile:
		if c.Store.URL == "" {
			return fmt.Errorf("store.url is required for %v store", StoreFile)
		}
	case StoreRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store.redisAddr is required for %v store", StoreRedis)
		}
	default:
		return fmt.Errorf("unsupported store type: %q", c.Store.Type)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format: %q", c.Log.Format)
	}
	return nil
}

// RefreshURL returns the absolute URL of the refresh-token endpoint.
func (c *Config) RefreshURL(path string) string {
	return c.BaseURL + "/" + strings.TrimLeft(path, "/")
}
