package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoRefreshToken is reported when a 401 arrives and the store holds no
// refresh token.
var ErrNoRefreshToken = errors.New("no refresh token")

// Kind classifies a terminal authorization failure.
type Kind int

const (
	// KindUnauthorized is a 401 that could not be refreshed.
	KindUnauthorized Kind = iota + 1
	// KindRefreshFailed means the refresh attempt itself failed.
	KindRefreshFailed
	// KindRefreshExhausted is a 401 on a request that was already replayed.
	KindRefreshExhausted
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRefreshFailed:
		return "refresh failed"
	case KindRefreshExhausted:
		return "refresh exhausted"
	}
	return "unknown"
}

// Error is returned by RoundTrip when authorization is terminally lost.
// Status is the HTTP status behind the failure when there was one and Body
// holds the first bytes of that response.
type Error struct {
	Kind   Kind
	Status int
	Body   []byte
	Err    error
}

func (e *Error) Error() string {
	msg := "auth: " + e.Kind.String()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (%d %s)", e.Status, http.StatusText(e.Status))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func asRefreshFailure(err error) *Error {
	var authErr *Error
	if errors.As(err, &authErr) && authErr.Kind == KindRefreshFailed {
		return authErr
	}
	return &Error{Kind: KindRefreshFailed, Err: err}
}
