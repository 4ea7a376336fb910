package store

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

const (
	// AccessTokenKey is the storage key of the access token.
	AccessTokenKey = "rewear_admin_access_token"
	// RefreshTokenKey is the storage key of the refresh token.
	RefreshTokenKey = "rewear_admin_refresh_token"
)

// ErrIncompletePair is returned when SetTokens is called with an empty token.
var ErrIncompletePair = errors.New("store: access and refresh token must both be set")

// Store is a pluggable persistence layer for the admin token pair.
// The in‑memory default is fine for tests; use the file or Redis store to
// keep a session across restarts.
type Store interface {
	LookupAccessToken() (string, bool)
	LookupRefreshToken() (string, bool)
	// SetTokens replaces both tokens at once.
	SetTokens(access, refresh string) error
	// ClearTokens removes both tokens.
	ClearTokens() error
	// IsAuthenticated reports whether an access token is present. It does not
	// check freshness, the server decides validity.
	IsAuthenticated() bool
}

// Error operations.
const (
	OpGet    = "get"
	OpSet    = "set"
	OpDelete = "delete"
	OpStat   = "stat"
)

// Loader is implemented by stores whose reads can fail.
type Loader interface {
	LoadTokens() (access, refresh string, err error)
}

// Load reads the pair from s. Read failures are reported only by stores
// implementing Loader; the others cannot fail.
func Load(s Store) (access, refresh string, err error) {
	if loader, ok := s.(Loader); ok {
		return loader.LoadTokens()
	}
	access, _ = s.LookupAccessToken()
	refresh, _ = s.LookupRefreshToken()
	return access, refresh, nil
}

// IsReadError reports whether err is a failed store read.
func IsReadError(err error) bool {
	var storeErr *Error
	return errors.As(err, &storeErr) && storeErr.Op == OpGet
}

// Error wraps a persistence failure.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type MemoryStoreOption func(*memoryStore)

// WithTokens seeds the store with a token pair.
func WithTokens(access, refresh string) MemoryStoreOption {
	return func(m *memoryStore) {
		if access == "" || refresh == "" {
			return
		}
		m.token = newToken(access, refresh)
	}
}

type memoryStore struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

func (m *memoryStore) LookupAccessToken() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == nil {
		return "", false
	}
	return m.token.AccessToken, true
}

func (m *memoryStore) LookupRefreshToken() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == nil {
		return "", false
	}
	return m.token.RefreshToken, true
}

func (m *memoryStore) SetTokens(access, refresh string) error {
	if access == "" || refresh == "" {
		return ErrIncompletePair
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = newToken(access, refresh)
	return nil
}

func (m *memoryStore) ClearTokens() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	return nil
}

func (m *memoryStore) IsAuthenticated() bool {
	_, ok := m.LookupAccessToken()
	return ok
}

func NewMemoryStore(options ...MemoryStoreOption) Store {
	ret := &memoryStore{}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func newToken(access, refresh string) *oauth2.Token {
	return &oauth2.Token{TokenType: "Bearer", AccessToken: access, RefreshToken: refresh}
}
