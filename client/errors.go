package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/rewear/admin/client/auth/store"
	"github.com/rewear/admin/client/auth/transport"
	"github.com/tidwall/gjson"
)

// Kind classifies a failed call.
type Kind int

const (
	// KindNetwork means no response was received.
	KindNetwork Kind = iota + 1
	// KindTimeout means the request exceeded its timeout.
	KindTimeout
	// KindUnauthorized is a 401 that could not be refreshed.
	KindUnauthorized
	// KindRefreshFailed means the token refresh failed and the session ended.
	KindRefreshFailed
	// KindRefreshExhausted is a 401 on a request already replayed once.
	KindRefreshExhausted
	// KindServer is any other non-2xx response.
	KindServer
	// KindStore means the token store could not be read.
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindTimeout:
		return "timeout"
	case KindUnauthorized:
		return "unauthorized"
	case KindRefreshFailed:
		return "refresh failed"
	case KindRefreshExhausted:
		return "refresh exhausted"
	case KindServer:
		return "server error"
	case KindStore:
		return "store error"
	}
	return "unknown"
}

// Error is returned by every failed call.
type Error struct {
	Kind    Kind
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Method)
	sb.WriteString(" ")
	sb.WriteString(e.Path)
	sb.WriteString(": ")
	sb.WriteString(e.Kind.String())
	if e.Status != 0 {
		sb.WriteString(fmt.Sprintf(" (%d)", e.Status))
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	} else if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func kindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// IsNetwork reports whether no response was received, timeouts included.
func IsNetwork(err error) bool {
	kind := kindOf(err)
	return kind == KindNetwork || kind == KindTimeout
}

// IsTimeout reports whether the request timed out.
func IsTimeout(err error) bool {
	return kindOf(err) == KindTimeout
}

// IsUnauthorized reports whether the call failed because the session is gone.
func IsUnauthorized(err error) bool {
	switch kindOf(err) {
	case KindUnauthorized, KindRefreshFailed, KindRefreshExhausted:
		return true
	}
	return false
}

// IsRefreshExhausted reports a 401 on an already replayed request.
func IsRefreshExhausted(err error) bool {
	return kindOf(err) == KindRefreshExhausted
}

// StatusCode returns the HTTP status behind err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// Message returns a message suitable for display.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		switch apiErr.Kind {
		case KindNetwork:
			return "Unable to reach the server. Check your connection."
		case KindTimeout:
			return "The request timed out."
		case KindStore:
			return "Unable to read the saved session. Try again."
		case KindUnauthorized, KindRefreshFailed, KindRefreshExhausted:
			return "Your session has expired. Please sign in again."
		}
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// responseError builds the error of a non-2xx response.
func responseError(method, path string, status int, body []byte) *Error {
	kind := KindServer
	if status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	return &Error{Kind: kind, Method: method, Path: path, Status: status, Message: messageOf(body)}
}

// transportError classifies an error returned by http.Client.Do.
func transportError(ctx context.Context, method, path string, err error) *Error {
	ret := &Error{Kind: KindNetwork, Method: method, Path: path, Err: err}
	var authErr *transport.Error
	if errors.As(err, &authErr) {
		switch authErr.Kind {
		case transport.KindUnauthorized:
			ret.Kind = KindUnauthorized
		case transport.KindRefreshFailed:
			ret.Kind = KindRefreshFailed
		case transport.KindRefreshExhausted:
			ret.Kind = KindRefreshExhausted
		}
		ret.Status = authErr.Status
		ret.Message = messageOf(authErr.Body)
		return ret
	}
	if store.IsReadError(err) {
		ret.Kind = KindStore
		return ret
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		ret.Kind = KindTimeout
	}
	return ret
}

func messageOf(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		if value := gjson.GetBytes(body, key); value.Exists() && value.Type == gjson.String {
			return value.String()
		}
	}
	return ""
}
