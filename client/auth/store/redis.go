package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const defaultRedisTimeout = 5 * time.Second

type RedisStoreOption func(*RedisStore)

// WithPrefix namespaces both storage keys, e.g. "ops:" + AccessTokenKey.
func WithPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithTimeout bounds every Redis command.
func WithTimeout(timeout time.Duration) RedisStoreOption {
	return func(s *RedisStore) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Entry) RedisStoreOption {
	return func(s *RedisStore) {
		s.logger = logger
	}
}

// RedisStore shares one token pair between hosts through Redis.
type RedisStore struct {
	redis   redis.UniversalClient
	prefix  string
	timeout time.Duration
	logger  *logrus.Entry
}

func (s *RedisStore) key(name string) string {
	return s.prefix + name
}

func (s *RedisStore) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// lookup reports a failed read as absent; LoadTokens surfaces it.
func (s *RedisStore) lookup(name string) (string, bool) {
	ctx, cancel := s.commandContext()
	defer cancel()
	value, err := s.redis.Get(ctx, s.key(name)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WithError(err).WithField("key", s.key(name)).Error("failed to read token")
		}
		return "", false
	}
	return value, value != ""
}

// LoadTokens reads both tokens in one command. A missing pair is not an error.
func (s *RedisStore) LoadTokens() (string, string, error) {
	ctx, cancel := s.commandContext()
	defer cancel()
	values, err := s.redis.MGet(ctx, s.key(AccessTokenKey), s.key(RefreshTokenKey)).Result()
	if err != nil {
		s.logger.WithError(err).Error("failed to read tokens")
		return "", "", &Error{Op: OpGet, Key: s.key(AccessTokenKey), Err: err}
	}
	var pair [2]string
	for i := 0; i < len(values) && i < len(pair); i++ {
		pair[i], _ = values[i].(string)
	}
	return pair[0], pair[1], nil
}

func (s *RedisStore) LookupAccessToken() (string, bool) {
	return s.lookup(AccessTokenKey)
}

func (s *RedisStore) LookupRefreshToken() (string, bool) {
	return s.lookup(RefreshTokenKey)
}

func (s *RedisStore) SetTokens(access, refresh string) error {
	if access == "" || refresh == "" {
		return ErrIncompletePair
	}
	ctx, cancel := s.commandContext()
	defer cancel()
	_, err := s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(AccessTokenKey), access, 0)
		pipe.Set(ctx, s.key(RefreshTokenKey), refresh, 0)
		return nil
	})
	if err != nil {
		return &Error{Op: OpSet, Key: s.key(AccessTokenKey), Err: err}
	}
	return nil
}

func (s *RedisStore) ClearTokens() error {
	ctx, cancel := s.commandContext()
	defer cancel()
	err := s.redis.Del(ctx, s.key(AccessTokenKey), s.key(RefreshTokenKey)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return &Error{Op: OpDelete, Key: s.key(AccessTokenKey), Err: err}
	}
	return nil
}

func (s *RedisStore) IsAuthenticated() bool {
	_, ok := s.LookupAccessToken()
	return ok
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.redis.Close()
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, options ...RedisStoreOption) *RedisStore {
	ret := &RedisStore{redis: client, timeout: defaultRedisTimeout}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logrus.WithField("component", "store.redis")
	}
	return ret
}
