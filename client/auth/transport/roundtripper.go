package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rewear/admin/client/auth/store"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

type RoundTripper struct {
	store          store.Store
	transport      http.RoundTripper
	refresher      *Refresher
	refreshURL     string
	refreshTimeout time.Duration
	onExpired      func(err error)
	logger         *logrus.Entry
}

func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport:      http.DefaultTransport,
		store:          store.NewMemoryStore(),
		refreshTimeout: defaultRefreshTimeout,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.refreshURL == "" {
		return nil, errors.New("transport: refresh URL is required")
	}
	if ret.logger == nil {
		ret.logger = logrus.WithField("component", "auth.transport")
	}
	ret.refresher = NewRefresher(ret.refresh,
		WithFailureHandler(ret.expire),
		WithCycleTimeout(ret.refreshTimeout))
	return ret, nil
}

func (r *RoundTripper) Store() store.Store {
	return r.store
}

func (r *RoundTripper) Refresher() *Refresher {
	return r.refresher
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// 1) Send with whatever access token is stored.
	outbound, err := clone(req)
	if err != nil {
		return nil, err
	}
	access, _, err := store.Load(r.store)
	if err != nil {
		return nil, err
	}
	if access != "" {
		setBearer(outbound, access)
	}
	resp, err := r.transport.RoundTrip(outbound)
	if err != nil {
		return nil, err
	}

	// 2) If it wasn’t a 401, just return it.
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	body := discard(resp)

	ctx := req.Context()
	if isRetried(ctx) {
		return nil, &Error{Kind: KindRefreshExhausted, Status: resp.StatusCode, Body: body}
	}
	ctx = WithRetried(ctx)

	// 3) Join or start the refresh cycle.
	grant, err := r.refresher.Await(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoRefreshToken):
			return nil, &Error{Kind: KindUnauthorized, Status: resp.StatusCode, Body: body, Err: err}
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			return nil, err
		case store.IsReadError(err):
			// tokens may still be stored
			return nil, err
		}
		return nil, asRefreshFailure(err)
	}
	defer grant.Release()

	// 4) Replay the request with the new Bearer header.
	retry, err := clone(req)
	if err != nil {
		return nil, err
	}
	retry = retry.WithContext(ctx)
	setBearer(retry, grant.Token)
	grant.Release()
	resp, err = r.transport.RoundTrip(retry)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &Error{Kind: KindRefreshExhausted, Status: resp.StatusCode, Body: discard(resp)}
	}
	return resp, nil
}

// refresh redeems the stored refresh token. It talks to the inner transport
// directly so the refresh call never re-enters RoundTrip.
func (r *RoundTripper) refresh(ctx context.Context) (string, error) {
	_, refreshToken, err := store.Load(r.store)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}
	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	r.logger.Debug("refreshing access token")
	resp, err := r.transport.RoundTrip(req)
	if err != nil {
		return "", &Error{Kind: KindRefreshFailed, Err: fmt.Errorf("refresh request: %w", err)}
	}
	body := discard(resp)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Kind: KindRefreshFailed, Status: resp.StatusCode, Body: body}
	}
	access := gjson.GetBytes(body, "data.access_token").String()
	rotated := gjson.GetBytes(body, "data.refresh_token").String()
	if access == "" || rotated == "" {
		return "", &Error{Kind: KindRefreshFailed, Status: resp.StatusCode, Body: body, Err: errors.New("refresh response is missing tokens")}
	}
	if err = r.store.SetTokens(access, rotated); err != nil {
		return "", &Error{Kind: KindRefreshFailed, Err: fmt.Errorf("failed to store refreshed tokens: %w", err)}
	}
	r.logger.Info("access token refreshed")
	return access, nil
}

// expire ends the session after a failed refresh cycle. A failed store read
// leaves the session alone.
func (r *RoundTripper) expire(err error) {
	if store.IsReadError(err) {
		r.logger.WithError(err).Warn("refresh skipped, token store unavailable")
		return
	}
	if cerr := r.store.ClearTokens(); cerr != nil {
		r.logger.WithError(cerr).Error("failed to clear tokens")
	}
	r.logger.WithError(err).Warn("session expired")
	if r.onExpired != nil {
		r.onExpired(err)
	}
}
