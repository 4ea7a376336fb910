// Package transport implements an http.RoundTripper that attaches the stored
// admin access token to every request and, when the API answers
// `401 Unauthorized`, rotates the token pair through the refresh endpoint and
// replays the request.
//
// Concurrent 401s are coalesced by a Refresher: one caller redeems the
// refresh token while the others park in arrival order and replay with the
// new access token once the refresh settles.
package transport
