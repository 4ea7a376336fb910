package admin

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rewear/admin/client"
	"github.com/rewear/admin/client/auth/mock"
	"github.com/rewear/admin/client/auth/store"
	"github.com/rewear/admin/client/session"
	"github.com/rewear/admin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	mr := miniredis.RunT(t)
	var testCases = []struct {
		description string
		cfg         config.Store
		expect      interface{}
		expectErr   bool
	}{
		{description: "memory", cfg: config.Store{Type: config.StoreMemory}},
		{description: "file", cfg: config.Store{Type: config.StoreFile, URL: filepath.Join(t.TempDir(), "tokens.json")}, expect: &store.FileStore{}},
		{description: "redis", cfg: config.Store{Type: config.StoreRedis, RedisAddr: mr.Addr(), RedisPrefix: "test:"}, expect: &store.RedisStore{}},
		{description: "unknown", cfg: config.Store{Type: "cookie"}, expectErr: true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			aStore, err := NewStore(&testCase.cfg)
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if closer, ok := aStore.(io.Closer); ok {
				t.Cleanup(func() { _ = closer.Close() })
			}
			if testCase.expect != nil {
				assert.IsType(t, testCase.expect, aStore)
			}
			require.NoError(t, aStore.SetTokens("a", "r"))
			assert.True(t, aStore.IsAuthenticated())
		})
	}
}

func TestNew(t *testing.T) {
	server, err := mock.NewHTTPTestServer()
	require.NoError(t, err)
	defer server.Close()

	var mux sync.Mutex
	var visited []string
	navigator := session.NavigatorFunc(func(path string) {
		mux.Lock()
		defer mux.Unlock()
		visited = append(visited, path)
	})
	cfg := config.Default()
	cfg.BaseURL = server.URL
	rewear, err := New(cfg, WithNavigator(navigator), WithUserAgent("rewear-admin-test"))
	require.NoError(t, err)

	ctx := context.Background()
	result := rewear.Session.Login(ctx, mock.AdminEmail, mock.AdminPassword)
	require.True(t, result.Success, result.Error)
	assert.True(t, rewear.Store.IsAuthenticated())

	server.Expire()
	_, err = rewear.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, server.RefreshCalls())

	server.Expire()
	server.RevokeRefreshTokens()
	_, err = rewear.Stats(ctx)
	assert.True(t, client.IsUnauthorized(err))
	assert.False(t, rewear.Session.IsAuthenticated())
	assert.Equal(t, []string{config.DefaultLoginPath}, visited)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Type = config.StoreRedis
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestAdmin_Close(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Store = config.Store{Type: config.StoreRedis, RedisAddr: mr.Addr()}
	rewear, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, rewear.Store.SetTokens("a", "r"))

	require.NoError(t, rewear.Close())
	assert.Error(t, rewear.Store.SetTokens("a2", "r2"))

	injected := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer injected.Close()
	rewear, err = New(cfg, WithStore(injected))
	require.NoError(t, err)
	require.NoError(t, rewear.Close())
	require.NoError(t, injected.SetTokens("a3", "r3"))

	rewear, err = New(config.Default())
	require.NoError(t, err)
	assert.NoError(t, rewear.Close())
}
