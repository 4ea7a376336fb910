package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

const maxErrorBody = 64 * 1024

func clone(r *http.Request) (*http.Request, error) {
	cloned := r.Clone(r.Context())
	if r.Body == nil || r.Body == http.NoBody {
		return cloned, nil
	}
	if r.GetBody != nil {
		body, err := r.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to get request body: %w", err)
		}
		cloned.Body = body
		return cloned, nil
	}
	// deep-copy body for POST/PUT replay
	buf, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(buf))
	r.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	cloned.Body = io.NopCloser(bytes.NewReader(buf))
	return cloned, nil
}

func setBearer(r *http.Request, token string) {
	if token == "" {
		r.Header.Del("Authorization")
		return
	}
	r.Header.Set("Authorization", "Bearer "+token)
}

// discard reads what is left of the body so the connection can be reused.
func discard(resp *http.Response) []byte {
	if resp == nil || resp.Body == nil {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return body
}
