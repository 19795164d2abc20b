package scryfall

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/guarzo/mtgsetlist/internal/cache"
	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/progress"
)

const (
	// DefaultBaseURL is the public Scryfall API root.
	DefaultBaseURL = "https://api.scryfall.com"

	// Scryfall asks clients to leave 50-100ms between requests.
	// https://scryfall.com/docs/api
	requestInterval = 100 * time.Millisecond

	// One initial request plus three retries for 429/5xx.
	maxAttempts    = 4
	retryBaseDelay = 100 * time.Millisecond

	searchTTL = 6 * time.Hour

	userAgent = "mtgsetlist (+https://github.com/guarzo/mtgsetlist)"
)

// APIError is a non-2xx answer from the API, carrying the Scryfall
// error object when the body held one.
type APIError struct {
	Status  int
	Code    string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall: HTTP %d: %s", e.Status, e.Details)
	}
	return fmt.Sprintf("scryfall: HTTP %d", e.Status)
}

// NotFound reports whether the API answered "no cards matched".
func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound && e.Code == "not_found"
}

type Options struct {
	BaseURL string       // empty means DefaultBaseURL
	Client  *http.Client // nil means a 30s-timeout default
	Cache   *cache.Cache // nil disables caching
	Verbose bool
}

type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	cache   *cache.Cache
	verbose bool
}

func New(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.Client
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		client:  hc,
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
		cache:   opts.Cache,
		verbose: opts.Verbose,
	}
}

// BuildQuery assembles the search expression for a set and format,
// optionally restricted to commons.
func BuildQuery(setCode string, format model.Format, commonsOnly bool) string {
	q := fmt.Sprintf("e:%s f:%s", strings.ToLower(strings.TrimSpace(setCode)), format)
	if commonsOnly {
		q += " r:common"
	}
	return q
}

// listPage mirrors a Scryfall /cards/search response page.
type listPage struct {
	Object     string       `json:"object"`
	TotalCards int          `json:"total_cards"`
	HasMore    bool         `json:"has_more"`
	NextPage   string       `json:"next_page"`
	Data       []model.Card `json:"data"`
}

// SearchCards runs a paginated /cards/search query and returns every
// matching card in the order the API yields them. No deduplication is
// performed. A query with no matches returns an empty result, not an
// error.
func (c *Client) SearchCards(ctx context.Context, query string) ([]model.Card, error) {
	if c.cache != nil {
		var cached []model.Card
		if ok, _ := c.cache.Get(cache.SearchKey(query), &cached); ok {
			c.logf("using cached result for %q (%d cards)", query, len(cached))
			return cached, nil
		}
	}

	ind := progress.New(fmt.Sprintf("Searching %q", query), c.verbose)
	ind.Start()

	u := fmt.Sprintf("%s/cards/search?order=name&q=%s", c.baseURL, url.QueryEscape(query))
	var cards []model.Card
	page := 1
	for u != "" {
		var resp listPage
		if err := c.get(ctx, u, &resp); err != nil {
			var apiErr *APIError
			if page == 1 && errors.As(err, &apiErr) && apiErr.NotFound() {
				ind.Finish(0)
				return nil, nil
			}
			ind.Fail(err)
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		for _, card := range resp.Data {
			if _, err := uuid.Parse(card.ID); err != nil {
				err = fmt.Errorf("page %d: malformed card id %q: %w", page, card.ID, err)
				ind.Fail(err)
				return nil, err
			}
		}
		cards = append(cards, resp.Data...)
		ind.Page(page, len(resp.Data), len(cards))

		if !resp.HasMore {
			break
		}
		u = resp.NextPage
		page++
	}
	ind.Finish(len(cards))

	if c.cache != nil {
		if err := c.cache.Put(cache.SearchKey(query), cards, searchTTL); err != nil {
			c.logf("caching result: %v", err)
		}
	}
	return cards, nil
}

// get fetches u into the target, retrying rate-limit and server errors
// with exponential backoff. Other 4xx answers and malformed bodies are
// fatal on the first attempt.
func (c *Client) get(ctx context.Context, u string, into any) error {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, 400ms
			delay := retryBaseDelay << (attempt - 1)
			c.logf("retry %d/%d after %v: %v", attempt, maxAttempts-1, delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Accept-Encoding", "gzip, br")
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		retryable, err := decodeResponse(resp, into)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}

// decodeResponse consumes and closes the body. The bool reports
// whether the failure is worth another attempt.
func decodeResponse(resp *http.Response, into any) (bool, error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode/100 == 2:
		reader, err := bodyReader(resp)
		if err != nil {
			return false, err
		}
		if err := json.NewDecoder(reader).Decode(into); err != nil {
			return false, fmt.Errorf("decoding response: %w", err)
		}
		return false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode/100 == 5:
		return true, readAPIError(resp)
	default:
		// The request itself is wrong; retrying won't help.
		return false, readAPIError(resp)
	}
}

// bodyReader unwraps whatever Content-Encoding the server picked from
// our Accept-Encoding offer.
func bodyReader(resp *http.Response) (io.Reader, error) {
	switch enc := resp.Header.Get("Content-Encoding"); enc {
	case "gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return r, nil
	case "br":
		return brotli.NewReader(resp.Body), nil
	case "", "identity":
		return resp.Body, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", enc)
	}
}

func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	reader, err := bodyReader(resp)
	if err != nil {
		return apiErr
	}
	body, err := io.ReadAll(io.LimitReader(reader, 1<<16))
	if err != nil {
		return apiErr
	}

	// Scryfall error bodies look like
	// {"object":"error","code":"not_found","details":"..."}
	var e struct {
		Object  string `json:"object"`
		Code    string `json:"code"`
		Details string `json:"details"`
	}
	if json.Unmarshal(body, &e) == nil && e.Object == "error" {
		apiErr.Code = e.Code
		apiErr.Details = e.Details
		return apiErr
	}

	apiErr.Details = strings.TrimSpace(string(body))
	return apiErr
}

func (c *Client) logf(format string, args ...any) {
	if c.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
