// Package store defines the token store used by the authenticated transport
// in the sibling `transport` package.
//
// A store holds exactly one access/refresh token pair, or nothing. It ships
// with an in-memory implementation for tests and short-lived processes, an
// afs backed file store that survives restarts, and a Redis store that lets
// several operator hosts share one admin session.
package store
