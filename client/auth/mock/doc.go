// Package mock provides an in-process ReWear API backend for tests.
//
// It implements the auth endpoints (login, refresh-token rotation, me,
// logout) and a catch-all protected resource, issuing RS256 access tokens
// and one-time refresh tokens so the client's refresh protocol can be
// exercised without a real server.
package mock
