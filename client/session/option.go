package session

import "github.com/sirupsen/logrus"

// Option represents option
type Option func(c *Controller)

// WithNavigator sets the navigator called when the session expires
func WithNavigator(navigator Navigator) Option {
	return func(c *Controller) {
		c.navigator = navigator
	}
}

// WithLoginPath sets the path passed to the navigator, defaults to /login
func WithLoginPath(path string) Option {
	return func(c *Controller) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *logrus.Entry) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}
