// Package client provides the typed HTTP wrappers the front-end uses to call
// the auth, recommendation and catalog services. Non-2xx responses are
// decoded into the owning service's error envelope and surfaced as *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError carries the status code and the service-provided message of a
// failed call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customises a client at construction time.
type Option func(*base)

// WithHTTPClient overrides the underlying HTTP client, e.g. to set timeouts.
func WithHTTPClient(hc httpDoer) Option {
	return func(b *base) { b.hc = hc }
}

type base struct {
	baseURL string
	hc      httpDoer
}

func newBase(baseURL string, opts []Option) base {
	b := base{baseURL: baseURL, hc: http.DefaultClient}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return b.hc.Do(req)
}

func (b *base) get(ctx context.Context, path string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return b.hc.Do(req)
}

func decodeBody(res *http.Response, dest any) error {
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
