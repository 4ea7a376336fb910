package mock

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rewear/admin/internal/collection"
	"github.com/rewear/admin/schema"
)

const (
	AdminEmail     = "admin@rewear.test"
	AdminPassword  = "admin-password"
	SellerEmail    = "seller@rewear.test"
	SellerPassword = "seller-password"

	DefaultAccessTokenTTL = time.Hour
)

// Service is a test server that simulates the ReWear admin API.
type Service struct {
	PrivateKey     *rsa.PrivateKey
	Issuer         string
	AccessTokenTTL time.Duration
	// RefreshDelay holds every refresh response back, widening the window in
	// which concurrent 401s queue up.
	RefreshDelay time.Duration

	LoginHandler    func(w http.ResponseWriter, r *http.Request)
	RefreshHandler  func(w http.ResponseWriter, r *http.Request)
	MeHandler       func(w http.ResponseWriter, r *http.Request)
	LogoutHandler   func(w http.ResponseWriter, r *http.Request)
	ResourceHandler func(w http.ResponseWriter, r *http.Request)

	users         map[string]*account
	refreshTokens *collection.SyncMap[string, string]
	mux           sync.RWMutex
	generation    int
	failRefresh   bool
	refreshCalls  atomic.Int32
	logoutCalls   atomic.Int32
}

type account struct {
	user     schema.User
	password string
}

type Option func(*Service)

// WithAccessTokenTTL sets the lifetime of issued access tokens.
func WithAccessTokenTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.AccessTokenTTL = ttl
	}
}

// WithRefreshDelay delays every refresh response.
func WithRefreshDelay(delay time.Duration) Option {
	return func(s *Service) {
		s.RefreshDelay = delay
	}
}

// WithUser registers an extra account.
func WithUser(user schema.User, password string) Option {
	return func(s *Service) {
		s.users[user.Email] = &account{user: user, password: password}
	}
}

// NewService creates a mock API with an admin and a seller account.
func NewService(opts ...Option) (*Service, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA key: %v", err)
	}
	service := &Service{
		PrivateKey:     privateKey,
		AccessTokenTTL: DefaultAccessTokenTTL,
		refreshTokens:  collection.NewSyncMap[string, string](),
		users: map[string]*account{
			AdminEmail: {
				user:     schema.User{ID: 1, Name: "Admin", Email: AdminEmail, UserType: schema.UserTypeAdmin, IsActive: true},
				password: AdminPassword,
			},
			SellerEmail: {
				user:     schema.User{ID: 2, Name: "Seller", Email: SellerEmail, UserType: "user", IsActive: true},
				password: SellerPassword,
			},
		},
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// Expire invalidates every access token issued so far; refresh tokens stay valid.
func (s *Service) Expire() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.generation++
}

// RevokeRefreshTokens invalidates every outstanding refresh token.
func (s *Service) RevokeRefreshTokens() {
	s.refreshTokens.Clear()
}

// FailRefresh makes the refresh endpoint answer 401 while enabled.
func (s *Service) FailRefresh(enabled bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.failRefresh = enabled
}

// RefreshCalls returns the number of requests the refresh endpoint received.
func (s *Service) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

// LogoutCalls returns the number of requests the logout endpoint received.
func (s *Service) LogoutCalls() int {
	return int(s.logoutCalls.Load())
}

// IssueTokens mints a token pair for a registered account.
func (s *Service) IssueTokens(email string) (string, string, error) {
	s.mux.RLock()
	generation := s.generation
	s.mux.RUnlock()
	if _, ok := s.users[email]; !ok {
		return "", "", fmt.Errorf("unknown account %v", email)
	}
	access, err := s.createJWT(email, generation)
	if err != nil {
		return "", "", err
	}
	refresh := s.newRefreshToken(email)
	return access, refresh, nil
}

func (s *Service) currentGeneration() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.generation
}

func (s *Service) refreshFailing() bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.failRefresh
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (s *Service) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Server: s})
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}
