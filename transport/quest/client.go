// Package quest is the HTTP client for the quest platform API. It owns
// the shared cookie-session state: one jar, one authenticated identity at
// a time, checkpointed to a CookieStore after the nonce and verify calls.
package quest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/layer-3/questrun/core"
	"github.com/layer-3/questrun/ports"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Client is a cookie-session client for the quest API
type Client struct {
	baseURL *url.URL
	http    *http.Client
	jar     *cookiejar.Jar
	store   ports.CookieStore
	logger  *slog.Logger
}

// NewClient creates a new quest API client. The store may be nil, in
// which case session cookies live only for the process lifetime.
func NewClient(baseURL string, store ports.CookieStore, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, core.ErrMissingBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: parsed,
		http: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
		jar:    jar,
		store:  store,
		logger: logger,
	}, nil
}

// RestoreSession loads persisted cookies into the jar. Returns whether
// any cookie was restored; store failures are logged and non-fatal.
func (c *Client) RestoreSession(ctx context.Context) bool {
	if c.store == nil {
		return false
	}

	cookies, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("failed to restore session cookies", "error", err)
		return false
	}
	if len(cookies) == 0 {
		return false
	}

	httpCookies := make([]*http.Cookie, 0, len(cookies))
	for _, ck := range cookies {
		httpCookies = append(httpCookies, ck.ToHTTP())
	}
	c.jar.SetCookies(c.baseURL, httpCookies)

	c.logger.Info("session cookies restored", "count", len(cookies))
	return true
}

// CheckpointSession writes the jar's current cookies for the base URL to
// durable storage. Returns whether the write succeeded; failures are
// logged and non-fatal.
func (c *Client) CheckpointSession(ctx context.Context) bool {
	if c.store == nil {
		return false
	}

	if err := c.store.Save(ctx, core.FromHTTP(c.jar.Cookies(c.baseURL))); err != nil {
		c.logger.Warn("failed to save session cookies", "error", err)
		return false
	}
	return true
}

// Cookies exposes the jar's current cookie set for the base URL.
func (c *Client) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.baseURL)
}

// VisitLanding performs the unauthenticated document GET against the base
// site to seed cookies.
func (c *Client) VisitLanding(ctx context.Context) error {
	status, _, err := c.do(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return err
	}
	c.logger.Debug("visited landing page", "status", status)
	return nil
}

// endpoint resolves an API path and optional query against the base URL.
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do executes one request against the quest API and returns the status
// code and raw body. Transport errors are returned as errors; HTTP error
// statuses are not — callers classify those.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (int, []byte, error) {
	target := c.endpoint(path, query)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%s %s: failed to read body: %w", method, path, err)
	}
	return resp.StatusCode, data, nil
}
