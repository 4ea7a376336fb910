// Package client implements a typed client for the ReWear admin REST API.
//
// Every call goes through one shared pipeline: JSON encoding, the default
// headers, a fixed per-request timeout counted from issuance, and an
// http.Client whose transport is usually the token refreshing RoundTripper
// from `client/auth/transport`. Failures are reported as *Error values whose
// Kind tells connectivity problems, server rejections and lost sessions
// apart.
package client
