package client

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Option represents option
type Option func(c *Client)

// WithHTTPClient sets the http client used to send requests
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRoundTripper sets the transport of the default http client
func WithRoundTripper(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Transport: transport}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
