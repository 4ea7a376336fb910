package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	EnvBaseURL     = "REWEAR_API_BASE_URL"
	EnvViteBaseURL = "VITE_API_BASE_URL"
	EnvTimeout     = "REWEAR_TIMEOUT"
	EnvStore       = "REWEAR_STORE"
	EnvStoreURL    = "REWEAR_STORE_URL"
	EnvRedisAddr   = "REWEAR_REDIS_ADDR"
	EnvLogLevel    = "REWEAR_LOG_LEVEL"
)

const DefaultDotEnv = ".env"

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

type loader struct {
	fs       afs.Service
	dotEnv   string
	lookup   LookupFunc
	defaults *Config
}

type Option func(l *loader)

// WithDotEnv sets the .env location, an empty path disables it
func WithDotEnv(path string) Option {
	return func(l *loader) {
		l.dotEnv = path
	}
}

// WithLookup sets the environment lookup, defaults to os.LookupEnv
func WithLookup(lookup LookupFunc) Option {
	return func(l *loader) {
		l.lookup = lookup
	}
}

// WithDefaults replaces the built-in defaults the file and environment are
// layered on
func WithDefaults(defaults *Config) Option {
	return func(l *loader) {
		l.defaults = defaults
	}
}

// WithFS sets the storage service used to read the YAML file
func WithFS(fs afs.Service) Option {
	return func(l *loader) {
		l.fs = fs
	}
}

// Load builds the configuration. URL is the optional YAML file location, any
// afs supported scheme works.
func Load(ctx context.Context, URL string, options ...Option) (*Config, error) {
	l := &loader{fs: afs.New(), dotEnv: DefaultDotEnv, lookup: os.LookupEnv}
	for _, opt := range options {
		opt(l)
	}
	cfg := Default()
	if l.defaults != nil {
		defaults := *l.defaults
		cfg = &defaults
	}
	if URL != "" {
		if err := l.loadYAML(ctx, URL, cfg); err != nil {
			return nil, err
		}
	}
	lookup, err := l.environment()
	if err != nil {
		return nil, err
	}
	if err = cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	cfg.Init()
	return cfg, cfg.Validate()
}

func (l *loader) loadYAML(ctx context.Context, URL string, cfg *Config) error {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return nil
}

// environment layers the process environment over the .env file.
func (l *loader) environment() (LookupFunc, error) {
	if l.dotEnv == "" {
		return l.lookup, nil
	}
	values, err := godotenv.Read(l.dotEnv)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.lookup, nil
		}
		return nil, fmt.Errorf("failed to read %v: %w", l.dotEnv, err)
	}
	return func(key string) (string, bool) {
		if value, ok := l.lookup(key); ok {
			return value, true
		}
		value, ok := values[key]
		return value, ok
	}, nil
}

// ApplyEnv overrides fields with set environment variables.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		value = strings.TrimSpace(value)
		return value, ok && value != ""
	}
	if value, ok := get(EnvViteBaseURL); ok {
		c.BaseURL = value
	}
	if value, ok := get(EnvBaseURL); ok {
		c.BaseURL = value
	}
	if value, ok := get(EnvTimeout); ok {
		timeout, err := parseTimeout(value)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", EnvTimeout, err)
		}
		c.Timeout = timeout
	}
	if value, ok := get(EnvStore); ok {
		c.Store.Type = value
	}
	if value, ok := get(EnvStoreURL); ok {
		c.Store.URL = value
	}
	if value, ok := get(EnvRedisAddr); ok {
		c.Store.RedisAddr = value
	}
	if value, ok := get(EnvLogLevel); ok {
		c.Log.Level = value
	}
	return nil
}

// parseTimeout accepts a duration ("45s") or whole seconds ("45").
func parseTimeout(value string) (time.Duration, error) {
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}
