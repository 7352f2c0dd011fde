// Package holidays fetches Argentina's public-holiday calendar from the
// ArgentinaDatos API (no API key required).
package holidays

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/nvidal/clockfill/internal/cache"
	"github.com/nvidal/clockfill/internal/timecalc"
)

const defaultBaseURL = "https://api.argentinadatos.com/v1/feriados"

// UnavailableError means the holiday calendar for a year could not be
// fetched. Callers must abort the whole run on this error: proceeding
// without holiday data would mis-tag holidays as regular work days.
type UnavailableError struct {
	Year int
	Err  error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("holiday calendar for %d unavailable: %v", e.Year, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Client fetches per-year holiday calendars, optionally through an on-disk
// cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *cache.Store
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables the on-disk snapshot cache.
func WithCache(s *cache.Store) Option {
	return func(c *Client) { c.store = s }
}

// New creates a holiday API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// holidayItem is one element of the API's per-year response.
type holidayItem struct {
	Fecha  string `json:"fecha"`
	Tipo   string `json:"tipo"`
	Nombre string `json:"nombre"`
}

// FetchYear returns the holiday dates for a year, consulting the cache
// first when one is configured.
func (c *Client) FetchYear(ctx context.Context, year int) ([]time.Time, error) {
	if c.store != nil {
		if dates, ok, err := c.store.Load(year); err == nil && ok {
			return dates, nil
		}
	}

	dates, err := c.fetchYear(ctx, year)
	if err != nil {
		return nil, &UnavailableError{Year: year, Err: err}
	}

	if c.store != nil {
		if err := c.store.Save(year, dates); err != nil {
			// Cache writes are best-effort; the fetched data is still good.
			fmt.Fprintf(os.Stderr, "Warning: could not cache holidays for %d: %v\n", year, err)
		}
	}
	return dates, nil
}

func (c *Client) fetchYear(ctx context.Context, year int) ([]time.Time, error) {
	endpoint := fmt.Sprintf("%s/%d", c.baseURL, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API error %d: %s", resp.StatusCode, string(body))
	}

	var items []holidayItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("decoding holiday response: %w", err)
	}

	dates := make([]time.Time, 0, len(items))
	for _, item := range items {
		d, err := time.Parse("2006-01-02", item.Fecha)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", item.Fecha, err)
		}
		dates = append(dates, timecalc.DateOf(d))
	}
	return dates, nil
}

// InRange returns the set of holiday dates within [from, to] inclusive. It
// fetches each distinct year touched by the range (one or two) and unions
// the results; any failed year aborts with an UnavailableError.
func (c *Client) InRange(ctx context.Context, from, to time.Time) (map[time.Time]bool, error) {
	first := timecalc.DateOf(from)
	last := timecalc.DateOf(to)

	set := make(map[time.Time]bool)
	for year := first.Year(); year <= last.Year(); year++ {
		dates, err := c.FetchYear(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, d := range dates {
			if d.Before(first) || d.After(last) {
				continue
			}
			set[d] = true
		}
	}
	return set, nil
}
