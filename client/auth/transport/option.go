package transport

import (
	"net/http"
	"time"

	"github.com/rewear/admin/client/auth/store"
	"github.com/sirupsen/logrus"
)

type Option func(*RoundTripper)

// WithStore sets store
func WithStore(store store.Store) Option {
	return func(t *RoundTripper) {
		t.store = store
	}
}

// WithTransport sets the network transport requests are delegated to
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithRefreshURL sets the absolute URL of the refresh-token endpoint
func WithRefreshURL(URL string) Option {
	return func(t *RoundTripper) {
		t.refreshURL = URL
	}
}

// WithRefreshTimeout bounds a single refresh call
func WithRefreshTimeout(timeout time.Duration) Option {
	return func(t *RoundTripper) {
		t.refreshTimeout = timeout
	}
}

// WithSessionExpired registers the session-expired callback. It fires once
// per refresh cycle that ends the session.
func WithSessionExpired(fn func(err error)) Option {
	return func(t *RoundTripper) {
		t.onExpired = fn
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Entry) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}
