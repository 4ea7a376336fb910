package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rewear/admin/client"
	"github.com/rewear/admin/client/auth/store"
	"github.com/rewear/admin/schema"
	"github.com/sirupsen/logrus"
)

const DefaultLoginPath = "/login"

// ErrAccessDenied is returned when a non-admin account signs in.
var ErrAccessDenied = errors.New("Access denied. Admin privileges required.")

// Result is the outcome of Login.
type Result struct {
	Success bool
	// Error is a message suitable for display
	Error string
	Err   error
}

// Controller owns the cached user of the admin session.
type Controller struct {
	api       client.Interface
	store     store.Store
	navigator Navigator
	loginPath string
	logger    *logrus.Entry

	mux  sync.RWMutex
	user *schema.User
}

// Login signs in with credentials. Tokens are stored only for admin accounts.
func (c *Controller) Login(ctx context.Context, email, password string) *Result {
	result, err := c.api.Login(ctx, email, password)
	if err != nil {
		message := "Login failed"
		var apiErr *client.Error
		if errors.As(err, &apiErr) {
			message = client.Message(err)
		}
		c.logger.WithError(err).Warn("login failed")
		return &Result{Error: message, Err: err}
	}
	if !result.User.IsAdmin() {
		c.logger.WithField("user_type", userType(result.User)).Warn("login rejected")
		return &Result{Error: ErrAccessDenied.Error(), Err: ErrAccessDenied}
	}
	if err = c.store.SetTokens(result.AccessToken, result.RefreshToken); err != nil {
		return &Result{Error: "Login failed", Err: err}
	}
	c.setUser(result.User)
	c.logger.WithField("user_id", result.User.ID).Info("signed in")
	return &Result{Success: true}
}

func userType(user *schema.User) string {
	if user == nil {
		return ""
	}
	return user.UserType
}

// Logout ends the session. The server call is best effort; local state is
// always cleared.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.api.Logout(ctx); err != nil {
		c.logger.WithError(err).Warn("logout request failed")
	}
	c.clear()
}

// Restore loads the current user when the store already holds tokens.
func (c *Controller) Restore(ctx context.Context) error {
	access, _, err := store.Load(c.store)
	if err != nil {
		return err
	}
	if access == "" {
		return nil
	}
	user, err := c.api.Me(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("session restore failed")
		if !store.IsReadError(err) {
			c.clear()
		}
		return err
	}
	c.setUser(user)
	return nil
}

// User returns a copy of the signed-in user, or nil.
func (c *Controller) User() *schema.User {
	c.mux.RLock()
	defer c.mux.RUnlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

// IsAuthenticated reports whether a user is signed in.
func (c *Controller) IsAuthenticated() bool {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.user != nil
}

// UpdateUser merges patch into the cached user.
func (c *Controller) UpdateUser(patch *schema.User) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.user.Merge(patch)
}

// ExpiresAt returns the exp claim of the stored access token. The token is
// not verified; ok is false when it is absent or not a JWT.
func (c *Controller) ExpiresAt() (time.Time, bool) {
	token, ok := c.store.LookupAccessToken()
	if !ok {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// OnExpired handles the end of a session detected by the transport. The
// transport has already cleared the tokens.
func (c *Controller) OnExpired(err error) {
	c.mux.Lock()
	c.user = nil
	c.mux.Unlock()
	c.logger.WithError(err).Info("session expired")
	if c.navigator != nil {
		c.navigator.Navigate(c.loginPath)
	}
}

func (c *Controller) setUser(user *schema.User) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.user = user
}

func (c *Controller) clear() {
	if err := c.store.ClearTokens(); err != nil {
		c.logger.WithError(err).Error("failed to clear tokens")
	}
	c.setUser(nil)
}

// New creates a controller
func New(api client.Interface, aStore store.Store, options ...Option) *Controller {
	ret := &Controller{api: api, store: aStore, loginPath: DefaultLoginPath}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logrus.WithField("component", "session")
	}
	return ret
}
