package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	// DefaultTimeout bounds every request, time spent waiting on a token
	// refresh included.
	DefaultTimeout = 30 * time.Second
	// RequestIDHeader correlates client and server logs.
	RequestIDHeader = "X-Request-Id"
)

// Client sends JSON requests to the admin API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *logrus.Entry
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL joins path onto the base URL.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Get sends a GET request and decodes the response data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do sends a request. A nil body sends no payload; a nil out discards the
// response. The `data` member of the response envelope is decoded into out.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	URL := c.URL(path)
	if len(query) > 0 {
		URL += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %v %v request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return fmt.Errorf("failed to create %v %v request: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	logger := c.logger.WithFields(logrus.Fields{"request_id": requestID, "method": method, "path": path})
	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := transportError(ctx, method, path, err)
		logger.WithError(err).WithField("kind", apiErr.Kind.String()).Warn("request failed")
		return apiErr
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(ctx, method, path, err)
	}
	logger = logger.WithFields(logrus.Fields{"status": resp.StatusCode, "elapsed": time.Since(started).String()})
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := responseError(method, path, resp.StatusCode, data)
		logger.WithField("kind", apiErr.Kind.String()).Warn("request rejected")
		return apiErr
	}
	logger.Debug("request completed")
	if out == nil || len(data) == 0 {
		return nil
	}
	payload := gjson.GetBytes(data, "data")
	if !payload.Exists() {
		return nil
	}
	if err = json.Unmarshal([]byte(payload.Raw), out); err != nil {
		return fmt.Errorf("failed to decode %v %v response: %w", method, path, err)
	}
	return nil
}

// New creates a client for the API at baseURL.
func New(baseURL string, options ...Option) *Client {
	ret := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logrus.WithField("component", "client")
	}
	return ret
}
