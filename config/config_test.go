package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o600))
	return location
}

func TestLoad(t *testing.T) {
	yamlFile := writeFile(t, "admin.yaml", `
baseURL: https://api.rewear.test/api/
timeout: 10s
store:
  type: file
  url: /tmp/rewear/tokens.json
log:
  level: debug
`)
	dotEnv := writeFile(t, ".env", "REWEAR_LOG_LEVEL=warn\nREWEAR_TIMEOUT=15\n")

	var testCases = []struct {
		description string
		URL         string
		dotEnv      string
		env         map[string]string
		expect      *Config
	}{
		{
			description: "defaults",
			expect:      Default(),
		},
		{
			description: "yaml file",
			URL:         yamlFile,
			expect: &Config{
				BaseURL:   "https://api.rewear.test/api",
				Timeout:   10 * time.Second,
				Store:     Store{Type: StoreFile, URL: "/tmp/rewear/tokens.json"},
				Log:       Log{Level: "debug", Format: "text"},
				LoginPath: DefaultLoginPath,
			},
		},
		{
			description: "dotenv over yaml",
			URL:         yamlFile,
			dotEnv:      dotEnv,
			expect: &Config{
				BaseURL:   "https://api.rewear.test/api",
				Timeout:   15 * time.Second,
				Store:     Store{Type: StoreFile, URL: "/tmp/rewear/tokens.json"},
				Log:       Log{Level: "warn", Format: "text"},
				LoginPath: DefaultLoginPath,
			},
		},
		{
			description: "environment over dotenv",
			URL:         yamlFile,
			dotEnv:      dotEnv,
			env: map[string]string{
				EnvViteBaseURL: "http://vite.test/api",
				EnvLogLevel:    "error",
				EnvStore:       StoreRedis,
				EnvRedisAddr:   "localhost:6379",
				EnvTimeout:     "1m",
			},
			expect: &Config{
				BaseURL:   "http://vite.test/api",
				Timeout:   time.Minute,
				Store:     Store{Type: StoreRedis, URL: "/tmp/rewear/tokens.json", RedisAddr: "localhost:6379"},
				Log:       Log{Level: "error", Format: "text"},
				LoginPath: DefaultLoginPath,
			},
		},
		{
			description: "rewear base url wins over vite",
			env: map[string]string{
				EnvViteBaseURL: "http://vite.test/api",
				EnvBaseURL:     "http://rewear.test/api",
			},
			expect: func() *Config {
				cfg := Default()
				cfg.BaseURL = "http://rewear.test/api"
				return cfg
			}(),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			cfg, err := Load(context.Background(), testCase.URL,
				WithDotEnv(testCase.dotEnv),
				WithLookup(lookup(testCase.env)))
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expect, cfg)
		})
	}
}

func TestLoad_MissingDotEnv(t *testing.T) {
	cfg, err := Load(context.Background(), "",
		WithDotEnv(filepath.Join(t.TempDir(), ".env")),
		WithLookup(lookup(nil)))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	var testCases = []struct {
		description string
		env         map[string]string
		expect      string
	}{
		{
			description: "timeout",
			env:         map[string]string{EnvTimeout: "soon"},
			expect:      "invalid REWEAR_TIMEOUT",
		},
		{
			description: "store type",
			env:         map[string]string{EnvStore: "cookie"},
			expect:      `unsupported store type: "cookie"`,
		},
		{
			description: "file store without url",
			env:         map[string]string{EnvStore: StoreFile},
			expect:      "store.url is required",
		},
		{
			description: "base url",
			env:         map[string]string{EnvBaseURL: "localhost:8000"},
			expect:      "invalid baseURL",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := Load(context.Background(), "", WithDotEnv(""), WithLookup(lookup(testCase.env)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.expect)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), WithDotEnv(""), WithLookup(lookup(nil)))
	assert.Error(t, err)
}

func TestConfig_RefreshURL(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8000/api/auth/refresh-token", cfg.RefreshURL("/auth/refresh-token"))
}

func TestLoad_WithDefaults(t *testing.T) {
	defaults := Default()
	defaults.Store = Store{Type: StoreFile, URL: "/tmp/rewear/tokens.json"}

	cfg, err := Load(context.Background(), "", WithDotEnv(""), WithLookup(lookup(nil)), WithDefaults(defaults))
	require.NoError(t, err)
	assert.Equal(t, defaults.Store, cfg.Store)

	cfg, err = Load(context.Background(), "", WithDotEnv(""), WithLookup(lookup(map[string]string{EnvStore: StoreMemory})), WithDefaults(defaults))
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Type)
	assert.Equal(t, StoreFile, defaults.Store.Type, "defaults must not be modified")
}
