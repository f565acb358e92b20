// Authenticated request dispatch for the Spotify Web API.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/auth"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"golang.org/x/time/rate"
)

const (
	spotifyBaseURL = "https://api.spotify.com/v1"

	requestTimeout = 15 * time.Second

	// Spotify applies a rolling request quota per application; a modest
	// client-side limit keeps bursts of tool calls under it.
	requestsPerSecond = 10
)

// APIError is a normalized upstream failure carrying the status code and the
// provider's human-readable message when it supplied one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify API error: status %d: %s", e.Status, e.Message)
}

// Unwrap maps upstream statuses onto the shared sentinels so callers can
// branch with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return shared.ErrTokenExpired
	case http.StatusForbidden:
		return shared.ErrPermissionDenied
	case http.StatusNotFound:
		return shared.ErrResourceNotFound
	}
	return shared.ErrAPIRequest
}

// errorEnvelope is the provider's error body shape.
type errorEnvelope struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// RequestOpts carries optional query parameters and a JSON body for a request.
type RequestOpts struct {
	Params url.Values
	Body   any
}

// Client is the single chokepoint for calls to the Spotify Web API: it
// attaches the session's bearer token, performs the HTTP round trip, and
// normalizes failures. All domain operations route through [Client.Request].
type Client struct {
	baseURL    string
	store      *auth.TokenStore
	sessionKey string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// ClientOpts contains configuration options for creating a [Client].
type ClientOpts struct {
	BaseURL    string
	Store      *auth.TokenStore
	SessionKey string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Logger     *log.Logger
}

// NewClient creates a new API client reading tokens from the given store.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = spotifyBaseURL
	}
	if opts.Store == nil {
		opts.Store = auth.NewTokenStore()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: requestTimeout}
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Client{
		baseURL:    opts.BaseURL,
		store:      opts.Store,
		sessionKey: opts.SessionKey,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
		logger:     opts.Logger,
	}
}

// WithSession returns a copy of the client bound to another session key. The
// copy shares the token store, HTTP client and rate limiter.
func (c *Client) WithSession(sessionKey string) *Client {
	clone := *c
	clone.sessionKey = sessionKey
	return &clone
}

// SessionKey returns the session key the client is bound to.
func (c *Client) SessionKey() string {
	return c.sessionKey
}

// Authenticated reports whether the client's session holds a live token.
func (c *Client) Authenticated() bool {
	return c.store.Authenticated(c.sessionKey)
}

// Request performs an authenticated call against the API and decodes a 2xx
// JSON body into result (when result is non-nil). The upstream status code is
// returned so call sites can translate 204 responses into domain results.
//
// An unauthenticated session fails immediately with [shared.ErrNotAuthenticated]
// before any network I/O. Non-2xx responses return an [*APIError] carrying the
// upstream message when the error envelope is decodable.
func (c *Client) Request(ctx context.Context, method, endpoint string, opts *RequestOpts, result any) (int, error) {
	token, ok := c.store.Get(c.sessionKey)
	if !ok {
		return 0, fmt.Errorf("%w: no live token for session", shared.ErrNotAuthenticated)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	apiURL := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if opts != nil && len(opts.Params) > 0 {
		apiURL += "?" + opts.Params.Encode()
	}

	var reqBody io.Reader
	if opts != nil && opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: "An API error occurred"}
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message
		}
		c.logger.Warn("upstream request failed", "method", method, "endpoint", endpoint, "status", resp.StatusCode)
		return resp.StatusCode, apiErr
	}

	if result != nil && resp.StatusCode != http.StatusNoContent && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
