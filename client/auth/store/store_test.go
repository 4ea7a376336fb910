package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return mr, client
}

func TestStores(t *testing.T) {
	newStores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"file": func(t *testing.T) Store {
			s, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
			require.NoError(t, err)
			return s
		},
		"redis": func(t *testing.T) Store {
			_, client := newTestRedis(t)
			return NewRedisStore(client, WithPrefix("test:"))
		},
	}

	for name, newStore := range newStores {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			assert.False(t, s.IsAuthenticated())
			_, ok := s.LookupAccessToken()
			assert.False(t, ok)

			require.NoError(t, s.SetTokens("a1", "r1"))
			access, ok := s.LookupAccessToken()
			assert.True(t, ok)
			assert.Equal(t, "a1", access)
			refresh, ok := s.LookupRefreshToken()
			assert.True(t, ok)
			assert.Equal(t, "r1", refresh)
			assert.True(t, s.IsAuthenticated())

			require.NoError(t, s.SetTokens("a2", "r2"))
			access, _ = s.LookupAccessToken()
			refresh, _ = s.LookupRefreshToken()
			assert.Equal(t, "a2", access)
			assert.Equal(t, "r2", refresh)

			err := s.SetTokens("a3", "")
			assert.ErrorIs(t, err, ErrIncompletePair)
			access, _ = s.LookupAccessToken()
			assert.Equal(t, "a2", access, "rejected pair must not replace the stored one")

			require.NoError(t, s.ClearTokens())
			assert.False(t, s.IsAuthenticated())
			_, ok = s.LookupRefreshToken()
			assert.False(t, ok)
			require.NoError(t, s.ClearTokens())
		})
	}
}

func TestMemoryStore_WithTokens(t *testing.T) {
	s := NewMemoryStore(WithTokens("a", "r"))
	access, _ := s.LookupAccessToken()
	refresh, _ := s.LookupRefreshToken()
	assert.Equal(t, "a", access)
	assert.Equal(t, "r", refresh)

	s = NewMemoryStore(WithTokens("a", ""))
	assert.False(t, s.IsAuthenticated())
}

func TestFileStore_Reopen(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "nested", "session.json")
	s, err := NewFileStore(URL)
	require.NoError(t, err)
	require.NoError(t, s.SetTokens("a1", "r1"))

	reopened, err := NewFileStore(URL)
	require.NoError(t, err)
	access, ok := reopened.LookupAccessToken()
	assert.True(t, ok)
	assert.Equal(t, "a1", access)

	require.NoError(t, reopened.ClearTokens())
	cleared, err := NewFileStore(URL)
	require.NoError(t, err)
	assert.False(t, cleared.IsAuthenticated())
}

func TestRedisStore_Keys(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisStore(client, WithPrefix("ops:"))
	require.NoError(t, s.SetTokens("a1", "r1"))

	value, err := mr.Get("ops:" + AccessTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "a1", value)
	value, err = mr.Get("ops:" + RefreshTokenKey)
	require.NoError(t, err)
	assert.Equal(t, "r1", value)

	require.NoError(t, s.ClearTokens())
	assert.False(t, mr.Exists("ops:"+AccessTokenKey))
	assert.False(t, mr.Exists("ops:"+RefreshTokenKey))
}

func TestRedisStore_ReadError(t *testing.T) {
	mr, client := newTestRedis(t)
	s := NewRedisStore(client)
	require.NoError(t, s.SetTokens("a1", "r1"))

	mr.SetError("LOADING transient")
	_, _, err := Load(s)
	require.Error(t, err)
	assert.True(t, IsReadError(err))
	_, ok := s.LookupAccessToken()
	assert.False(t, ok)

	mr.SetError("")
	access, refresh, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, "a1", access)
	assert.Equal(t, "r1", refresh)

	require.NoError(t, s.ClearTokens())
	access, refresh, err = Load(s)
	require.NoError(t, err)
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestLoad_MemoryStore(t *testing.T) {
	access, refresh, err := Load(NewMemoryStore(WithTokens("a", "r")))
	require.NoError(t, err)
	assert.Equal(t, "a", access)
	assert.Equal(t, "r", refresh)
}

type statFailingFS struct {
	afs.Service
	err error
}

func (s *statFailingFS) Exists(ctx context.Context, URL string, options ...storage.Option) (bool, error) {
	return false, s.err
}

func TestFileStore_ClearStatError(t *testing.T) {
	URL := filepath.Join(t.TempDir(), "session.json")
	s, err := NewFileStore(URL)
	require.NoError(t, err)
	require.NoError(t, s.SetTokens("a1", "r1"))

	statErr := errors.New("permission denied")
	s.fs = &statFailingFS{Service: s.fs, err: statErr}
	err = s.ClearTokens()
	require.ErrorIs(t, err, statErr)
	var storeErr *Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, OpStat, storeErr.Op)
}
