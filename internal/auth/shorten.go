package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

const defaultShortenerEndpoint = "https://is.gd/create.php"

// Shortener shortens URLs via the is.gd simple-format endpoint.
//
// It is best-effort: callers treat any error as "use the original URL".
type Shortener struct {
	endpoint   string
	httpClient *http.Client
}

// NewShortener creates a Shortener from config, falling back to the is.gd
// endpoint with a five second timeout.
func NewShortener(cfg shared.ShortenerConfig) *Shortener {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultShortenerEndpoint
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Shortener{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Shorten requests a shortened form of target. Returns the shortened URL text
// on success; any transport failure, non-2xx status, or empty body is an error.
func (s *Shortener) Shorten(ctx context.Context, target string) (string, error) {
	params := url.Values{}
	params.Set("format", "simple")
	params.Set("url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: shortener status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	short := strings.TrimSpace(string(body))
	if short == "" {
		return "", fmt.Errorf("%w: empty shortener response", shared.ErrAPIRequest)
	}

	return short, nil
}
