package fetch

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultCacheTTL matches the upstream site's revalidation window.
const DefaultCacheTTL = time.Hour

// Cache is the fetch client's cache policy. A nil Cache disables caching
// entirely rather than hiding the behavior in global state.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Close() error
}

// Client fetches URLs with a fixed User-Agent and an optional read-through
// cache. Cache failures degrade to a direct fetch; only HTTP-level
// failures surface as errors.
type Client struct {
	httpClient *http.Client
	userAgent  string
	cache      Cache
	cacheTTL   time.Duration
}

func NewClient(httpClient *http.Client, userAgent string, cache Cache, cacheTTL time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	key := cacheKey(rawURL)

	if c.cache != nil {
		cached, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			slog.Debug("Cache read failed, fetching directly", "url", rawURL, "error", err)
		} else if ok {
			return []byte(cached), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, string(data), c.cacheTTL); err != nil {
			slog.Debug("Cache write failed", "url", rawURL, "error", err)
		}
	}

	return data, nil
}

func cacheKey(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	return fmt.Sprintf("fetch:%x", hash[:8])
}
