package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestProvider is the transport contract consumed by the feature services.
// Implementations decode 2xx bodies into out (out may be nil to discard the
// body) and surface failures as the typed errors of this package.
type RequestProvider interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path string, body, out any, token string, headers map[string]string) error
	Put(ctx context.Context, path string, body, out any, token string) error
	Delete(ctx context.Context, path, token string) error
}

// Provider is the net/http implementation of RequestProvider.
type Provider struct {
	baseURL string
	client  *http.Client
}

// NewProvider returns a Provider bound to baseURL. A zero timeout leaves the
// http.Client without a deadline; per-call deadlines come from the context.
func NewProvider(baseURL string, timeout time.Duration) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *Provider) Get(ctx context.Context, path, token string, out any) error {
	return p.do(ctx, http.MethodGet, path, nil, out, token, nil)
}

func (p *Provider) Post(ctx context.Context, path string, body, out any, token string, headers map[string]string) error {
	return p.do(ctx, http.MethodPost, path, body, out, token, headers)
}

func (p *Provider) Put(ctx context.Context, path string, body, out any, token string) error {
	return p.do(ctx, http.MethodPut, path, body, out, token, nil)
}

func (p *Provider) Delete(ctx context.Context, path, token string) error {
	return p.do(ctx, http.MethodDelete, path, nil, nil, token, nil)
}

func (p *Provider) do(ctx context.Context, method, path string, body, out any, token string, headers map[string]string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// url.Error wraps context errors, so errors.Is(err, context.Canceled)
		// keeps working through this wrap.
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{StatusCode: resp.StatusCode, Body: string(raw)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &RequestError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ProtocolError{Body: string(raw), Err: err}
	}
	return nil
}
