package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com"
const defaultCacheTTL = 24 * time.Hour

// ErrNotFound is returned when no title matches the query. OMDb signals
// this in-band with an HTTP 200 and Response "False".
var ErrNotFound = errors.New("title not found")

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCacheTTL sets the cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new OMDb client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search looks a movie up by title and optional year (0 = unset).
// Returns ErrNotFound when OMDb has no match.
func (c *Client) Search(ctx context.Context, title string, year int) (*Result, error) {
	key := cacheKey(title, year)
	if result, ok := c.cache.get(key); ok {
		return result, nil
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	if year > 0 {
		q.Set("y", strconv.Itoa(year))
	}

	reqURL := c.baseURL + "/?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "mediacat/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OMDb API error: %s", resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !result.Found() {
		return nil, ErrNotFound
	}

	c.cache.set(key, &result)
	return &result, nil
}

func cacheKey(title string, year int) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strconv.Itoa(year)
}
