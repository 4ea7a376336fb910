// Package config loads the admin client configuration from defaults, an
// optional YAML file, a .env file and the process environment, in that order.
package config
