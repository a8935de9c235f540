// Package cricapi provides a client for the CricAPI current-matches
// endpoint, the primary match data source.
package cricapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/stumpline/cricket-cli/internal/resilience"
)

const defaultBaseURL = "https://api.cricapi.com"

// Client fetches current matches from CricAPI.
type Client interface {
	// CurrentMatches performs a single request against /v1/currentMatches.
	// On timeout the request is retried exactly once; any other failure
	// returns immediately. A response body whose status is not "success"
	// is an error even when the transport succeeded.
	CurrentMatches(ctx context.Context) (*CurrentMatchesResponse, error)
}

// CurrentMatchesResponse is the decoded envelope of GET /v1/currentMatches.
// Data entries are kept raw and decoded one at a time via ParseMatch so a
// single malformed match cannot poison the whole batch.
type CurrentMatchesResponse struct {
	Status string            `json:"status"`
	Data   []json.RawMessage `json:"data"`
}

// Match is a single raw match entry from the current-matches list.
type Match struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	MatchType    string         `json:"matchType"`
	Status       string         `json:"status"`
	Venue        string         `json:"venue"`
	TossWinner   string         `json:"tossWinner"`
	TossChoice   string         `json:"tossChoice"`
	MatchStarted bool           `json:"matchStarted"`
	MatchEnded   bool           `json:"matchEnded"`
	Teams        []string       `json:"teams"`
	Score        []InningsScore `json:"score"`
}

// InningsScore is one entry of the per-innings score array. Overs use
// cricket notation: the first decimal digit is balls bowled (0-5).
type InningsScore struct {
	Runs    int     `json:"r"`
	Wickets int     `json:"w"`
	Overs   float64 `json:"o"`
	Inning  string  `json:"inning"`
}

// ParseMatch decodes a single raw match entry.
func ParseMatch(raw json.RawMessage) (Match, error) {
	var m Match
	if err := json.Unmarshal(raw, &m); err != nil {
		return Match{}, eris.Wrap(err, "cricapi: decode match")
	}
	return m, nil
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a CricAPI client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) CurrentMatches(ctx context.Context) (*CurrentMatchesResponse, error) {
	reqURL := fmt.Sprintf("%s/v1/currentMatches?apikey=%s&offset=0", c.baseURL, url.QueryEscape(c.apiKey))

	cfg := resilience.RetryConfig{
		MaxAttempts: 2,
		ShouldRetry: resilience.IsTimeout,
		OnRetry:     resilience.RetryLogger("cricapi", "currentMatches"),
	}

	return resilience.DoVal(ctx, cfg, func(ctx context.Context) (*CurrentMatchesResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, eris.Wrap(err, "cricapi: create request")
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, eris.Wrap(err, "cricapi: send request")
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, eris.Wrap(err, "cricapi: read response")
		}

		if resp.StatusCode != http.StatusOK {
			return nil, eris.Errorf("cricapi: unexpected status %d: %s", resp.StatusCode, string(body))
		}

		var result CurrentMatchesResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, eris.Wrap(err, "cricapi: unmarshal response")
		}

		if result.Status != "success" {
			return nil, eris.Errorf("cricapi: upstream status %q", result.Status)
		}

		return &result, nil
	})
}
