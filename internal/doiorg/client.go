// Package doiorg fetches ready-made BibTeX entries from the doi.org
// resolver via content negotiation.
package doiorg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the DOI resolver base URL.
	BaseURL = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps the client polite toward the resolver.
	RateLimit = 3.0

	acceptBibTeX = "application/x-bibtex"
)

// Errors returned by the client.
var (
	// ErrNotFound indicates the DOI does not resolve.
	ErrNotFound = errors.New("DOI not found")

	// ErrNetworkError indicates a connectivity problem reaching doi.org.
	ErrNetworkError = errors.New("network error communicating with doi.org")
)

// Client is a rate-limited HTTP client for doi.org.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a new doi.org client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchBibTeX retrieves the BibTeX rendering of a DOI. The entry text
// is returned verbatim; the caller writes it out without
// re-serialization.
func (c *Client) FetchBibTeX(ctx context.Context, doi string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+doi, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptBibTeX)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", ErrNotFound, doi)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: doi.org returned status %d", ErrNetworkError, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrNetworkError, err)
	}
	return string(body), nil
}
