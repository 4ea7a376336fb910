package admin

import (
	"fmt"
	"io"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/rewear/admin/client"
	"github.com/rewear/admin/client/auth/store"
	authtransport "github.com/rewear/admin/client/auth/transport"
	"github.com/rewear/admin/client/session"
	"github.com/rewear/admin/config"
	"github.com/sirupsen/logrus"
)

// Admin is a configured admin API client.
type Admin struct {
	*client.Client
	Session   *session.Controller
	Store     store.Store
	Transport *authtransport.RoundTripper
	// ownsStore is set when the store was built from config
	ownsStore bool
}

// Close releases the store connections opened by New. A store passed with
// WithStore is left to the caller.
func (a *Admin) Close() error {
	if !a.ownsStore {
		return nil
	}
	if closer, ok := a.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

type options struct {
	navigator session.Navigator
	store     store.Store
	transport http.RoundTripper
	userAgent string
	logger    *logrus.Entry
}

// Option represents option
type Option func(o *options)

// WithNavigator sets the navigator used when the session expires
func WithNavigator(navigator session.Navigator) Option {
	return func(o *options) {
		o.navigator = navigator
	}
}

// WithStore overrides the configured token store
func WithStore(aStore store.Store) Option {
	return func(o *options) {
		o.store = aStore
	}
}

// WithTransport sets the network transport, defaults to http.DefaultTransport
func WithTransport(transport http.RoundTripper) Option {
	return func(o *options) {
		o.transport = transport
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the base logger, every component derives its entry from it
func WithLogger(logger *logrus.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an admin API client from cfg.
func New(cfg *config.Config, opts ...Option) (*Admin, error) {
	o := &options{transport: http.DefaultTransport, logger: logrus.NewEntry(logrus.StandardLogger())}
	for _, opt := range opts {
		opt(o)
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	aStore := o.store
	ownsStore := aStore == nil
	if ownsStore {
		var err error
		if aStore, err = NewStore(&cfg.Store); err != nil {
			return nil, err
		}
	}

	ret := &Admin{Store: aStore, ownsStore: ownsStore}
	rt, err := authtransport.New(
		authtransport.WithStore(aStore),
		authtransport.WithTransport(o.transport),
		authtransport.WithRefreshURL(cfg.RefreshURL(client.PathRefreshToken)),
		authtransport.WithRefreshTimeout(cfg.Timeout),
		authtransport.WithSessionExpired(func(err error) { ret.Session.OnExpired(err) }),
		authtransport.WithLogger(o.logger.WithField("component", "auth.transport")),
	)
	if err != nil {
		_ = ret.Close()
		return nil, err
	}
	ret.Transport = rt
	ret.Client = client.New(cfg.BaseURL,
		client.WithRoundTripper(rt),
		client.WithTimeout(cfg.Timeout),
		client.WithUserAgent(o.userAgent),
		client.WithLogger(o.logger.WithField("component", "client")))
	ret.Session = session.New(ret.Client, aStore,
		session.WithNavigator(o.navigator),
		session.WithLoginPath(cfg.LoginPath),
		session.WithLogger(o.logger.WithField("component", "session")))
	return ret, nil
}

// NewStore creates the token store selected by cfg.
func NewStore(cfg *config.Store) (store.Store, error) {
	switch cfg.Type {
	case "", config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreFile:
		fileStore, err := store.NewFileStore(cfg.URL)
		if err != nil {
			return nil, err
		}
		return fileStore, nil
	case config.StoreRedis:
		var storeOptions []store.RedisStoreOption
		if cfg.RedisPrefix != "" {
			storeOptions = append(storeOptions, store.WithPrefix(cfg.RedisPrefix))
		}
		return store.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), storeOptions...), nil
	}
	return nil, fmt.Errorf("unsupported store type: %q", cfg.Type)
}
