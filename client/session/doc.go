// Package session tracks the signed-in admin user on top of the API client
// and the token store. It replaces the browser redirect of an expired session
// with a Navigator callback.
package session
