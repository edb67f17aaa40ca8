package kanoon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/lexindia/precedent/internal/cache"
	"github.com/lexindia/precedent/internal/model"
	"github.com/lexindia/precedent/internal/util"
)

// DefaultBaseURL is the production IndianKanoon API endpoint.
const DefaultBaseURL = "https://api.indiankanoon.org"

// sleepFunc is the sleep used between retries (injectable for tests).
var sleepFunc = func(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Client mediates all outbound calls to the IndianKanoon API: token
// injection, response caching, single-lane request pacing, and retry with
// backoff. All four endpoint methods share the same request path.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
	store      cache.Cache
	cacheTTL   time.Duration
	useCache   bool
	maxRetries int
	maxBytes   int64
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache attaches a response cache. A nil store disables caching.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.store = store
		c.cacheTTL = ttl
		c.useCache = store != nil
	}
}

// NewClient creates a client from configuration. The request delay becomes
// a single-lane limiter: no two physical calls are spaced closer than the
// delay, no matter how many logical calls run concurrently.
func NewClient(cfg *model.Config, opts ...Option) *Client {
	every := cfg.API.RequestDelay
	if every <= 0 {
		every = time.Millisecond
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
		},
		baseURL:    DefaultBaseURL,
		token:      cfg.API.Token,
		limiter:    rate.NewLimiter(rate.Every(every), 1),
		maxRetries: cfg.API.MaxRetries,
		maxBytes:   cfg.HTTP.MaxBodyBytes,
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchFilters narrows a search call.
type SearchFilters struct {
	Doctypes string // Court-type code, e.g. "supremecourt"
	FromDate string // "DD-MM-YYYY"
	ToDate   string // "DD-MM-YYYY"
}

// CiteLimits caps the citation lists returned with a document.
type CiteLimits struct {
	MaxCites   int
	MaxCitedBy int
}

// Search queries the search endpoint. Page is zero-based.
func (c *Client) Search(ctx context.Context, query string, page int, filters SearchFilters) (*model.SearchPage, error) {
	params := map[string]string{
		"formInput": query,
		"pagenum":   strconv.Itoa(page),
	}
	if filters.Doctypes != "" {
		params["doctypes"] = filters.Doctypes
	}
	if filters.FromDate != "" {
		params["fromdate"] = filters.FromDate
	}
	if filters.ToDate != "" {
		params["todate"] = filters.ToDate
	}

	raw, err := c.call(ctx, "search", params)
	if err != nil {
		return nil, err
	}

	var sp model.SearchPage
	if err := json.Unmarshal(raw, &sp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &sp, nil
}

// Document fetches a full document by id.
func (c *Client) Document(ctx context.Context, id int, limits CiteLimits) (map[string]any, error) {
	params := map[string]string{"tid": strconv.Itoa(id)}
	if limits.MaxCites > 0 {
		params["maxcites"] = strconv.Itoa(limits.MaxCites)
	}
	if limits.MaxCitedBy > 0 {
		params["maxcitedby"] = strconv.Itoa(limits.MaxCitedBy)
	}
	return c.callObject(ctx, fmt.Sprintf("doc/%d", id), params)
}

// DocumentFragments fetches the fragments of a document matching a query.
func (c *Client) DocumentFragments(ctx context.Context, id int, query string) (map[string]any, error) {
	params := map[string]string{
		"tid":       strconv.Itoa(id),
		"formInput": query,
	}
	return c.callObject(ctx, fmt.Sprintf("docfragment/%d", id), params)
}

// DocumentMetadata fetches document metadata without the body.
func (c *Client) DocumentMetadata(ctx context.Context, id int) (map[string]any, error) {
	params := map[string]string{"tid": strconv.Itoa(id)}
	return c.callObject(ctx, fmt.Sprintf("docmeta/%d", id), params)
}

func (c *Client) callObject(ctx context.Context, endpoint string, params map[string]string) (map[string]any, error) {
	raw, err := c.call(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return obj, nil
}

// call performs one logical API call: cache consult, paced POST with
// retries, cache store. Returns the raw JSON body.
func (c *Client) call(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	key := cache.Key(endpoint, params)

	if c.useCache {
		if raw, found := c.store.Get(key); found {
			return raw, nil
		}
	}

	raw, err := c.post(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	if c.useCache {
		// A failed cache write only costs a refetch later.
		_ = c.store.Set(key, raw, c.cacheTTL)
	}

	return raw, nil
}

// post performs the physical POST with pacing and retry. 429 responses back
// off exponentially, network failures linearly, both up to the retry
// ceiling; any other non-2xx fails immediately with a classified error.
func (c *Client) post(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for request slot: %w", err)
		}

		raw, err := c.doOnce(ctx, endpoint, params)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		var statusErr *StatusError
		switch {
		case errors.As(err, &statusErr) && errors.Is(err, ErrRateLimited):
			if attempt < c.maxRetries {
				backoff := time.Duration(1<<uint(attempt)) * time.Second
				if serr := sleepFunc(ctx, backoff); serr != nil {
					return nil, serr
				}
			}
		case errors.As(err, &statusErr):
			// Auth and other HTTP failures are not retryable.
			return nil, err
		default:
			// Network-level failure: linear backoff.
			if attempt < c.maxRetries {
				backoff := time.Duration(attempt+1) * 500 * time.Millisecond
				if serr := sleepFunc(ctx, backoff); serr != nil {
					return nil, serr
				}
			}
		}
	}

	if errors.Is(lastErr, ErrRateLimited) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, endpoint, lastErr)
}

func (c *Client) doOnce(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	form := url.Values{}
	for name, value := range params {
		form.Set(name, value)
	}

	reqURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
