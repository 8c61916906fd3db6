package api

// Package api is the single request dispatcher for the StreamWave backend.
// It owns the cross-cutting concerns every screen would otherwise
// duplicate: base URL resolution, the bearer-token request interceptor,
// the 401 response interceptor, timeout enforcement, and error
// classification.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamwave/streamwave-go/internal/ports"
)

const (
	// DefaultTimeout bounds every in-flight request. On expiry the call
	// fails with a network-kind error; recovery is a manual retry.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "streamwave-go"

	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	headerUserAgent     = "User-Agent"

	contentTypeJSON = "application/json"
)

// Options groups construction parameters for Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration // defaults to DefaultTimeout
	UserAgent string
	Logger    *slog.Logger
	Tokens    ports.TokenSource // optional; unauthenticated when nil
	// HTTPClient overrides the underlying transport, mainly for tests.
	// Its Timeout is ignored; the per-request context deadline governs.
	HTTPClient *http.Client
}

// Client dispatches requests against the StreamWave REST backend.
type Client struct {
	base      *url.URL
	hc        *http.Client
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
	tokens    ports.TokenSource

	unauthorized []func()
}

// NewClient builds a Client. Callers should pass a validated base URL.
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, errors.New("base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base URL scheme %q", base.Scheme)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		base:      base,
		hc:        hc,
		timeout:   timeout,
		userAgent: userAgent,
		logger:    logger,
		tokens:    opts.Tokens,
	}, nil
}

// SetTokenSource installs the request interceptor's token source. Mirrors
// registering an interceptor after construction; needed because the
// session store that owns the token is itself built on top of the client.
func (c *Client) SetTokenSource(src ports.TokenSource) { c.tokens = src }

// OnUnauthorized subscribes fn to the typed unauthenticated event. Every
// 401 response, whatever the request, fires all subscribers exactly once
// before the rejection is returned to the caller. The application shell
// subscribes session teardown and navigation here; the transport layer
// itself never navigates.
func (c *Client) OnUnauthorized(fn func()) {
	c.unauthorized = append(c.unauthorized, fn)
}

// RequestOptions carries optional per-call configuration. Values extend
// the client defaults; they never remove the standing interceptors.
type RequestOptions struct {
	Query   url.Values
	Headers http.Header
}

// Get issues a GET and decodes the response body into out (ignored when nil).
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOptions) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOptions) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOptions) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out, opts...)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOptions) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE and decodes the response into out (ignored when nil).
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOptions) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, opts ...RequestOptions) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return setupError("encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	headers := http.Header{}
	if body != nil {
		headers.Set(headerContentType, contentTypeJSON)
	}
	return c.dispatch(ctx, method, path, reader, headers, out, opts...)
}

// dispatch performs one request through the full interceptor chain.
// Contract with callers: a nil return means a 2xx response whose body,
// when out is non-nil, decoded cleanly.
func (c *Client) dispatch(ctx context.Context, method, path string, body io.Reader, headers http.Header, out any, opts ...RequestOptions) error {
	target, err := c.resolve(path, opts...)
	if err != nil {
		return setupError("resolve request URL", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return setupError("build request", err)
	}

	req.Header.Set(headerUserAgent, c.userAgent)
	req.Header.Set(headerRequestID, uuid.NewString())
	for key, values := range headers {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	for _, opt := range opts {
		for key, values := range opt.Headers {
			for _, v := range values {
				req.Header.Set(key, v)
			}
		}
	}

	// Request interceptor: attach the bearer credential when a session
	// token exists. Login and signup intentionally go out without one.
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok && token != "" {
			req.Header.Set(headerAuthorization, "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.logger.Warn("api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Duration("duration", time.Since(start)),
			slog.Any("error", err),
		)
		return networkError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return networkError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleErrorResponse(method, path, resp.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return malformedError(fmt.Sprintf("decode %s %s response: %v", method, path, err))
	}
	return nil
}

// maxResponseBytes caps how much of a response body the client will hold
// in memory. Video content itself is never fetched through this client.
const maxResponseBytes = 16 << 20

// handleErrorResponse is the response interceptor for non-2xx statuses.
// A 401 fires the unauthenticated event; everything else is logged and
// surfaced to the caller unchanged.
func (c *Client) handleErrorResponse(method, path string, status int, payload []byte) error {
	apiErr := statusError(status, payload)

	c.logger.Warn("api request rejected",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("kind", string(apiErr.Kind)),
	)

	if status == http.StatusUnauthorized {
		for _, fn := range c.unauthorized {
			fn()
		}
	}
	return apiErr
}

func (c *Client) resolve(path string, opts ...RequestOptions) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}
	target := c.base.ResolveReference(ref)

	query := target.Query()
	for _, opt := range opts {
		for key, values := range opt.Query {
			for _, v := range values {
				query.Add(key, v)
			}
		}
	}
	target.RawQuery = query.Encode()
	return target.String(), nil
}
