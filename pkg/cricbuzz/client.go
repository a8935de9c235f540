// Package cricbuzz provides a client for the unofficial Cricbuzz mobile
// API, the fallback match data source.
package cricbuzz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://mapps.cricbuzz.com/cbzios/match"

// Client fetches live matches and per-match scores from Cricbuzz.
type Client interface {
	// LiveMatches enumerates all matches and keeps only those currently
	// in progress. Zero in-progress matches is a failure, not an empty
	// result.
	LiveMatches(ctx context.Context) ([]Match, error)
	// Livescore fetches the live score for one match. Calls are rate
	// limited; the endpoint is unofficial.
	Livescore(ctx context.Context, matchID string) (*Livescore, error)
}

// Team is a nested team object in the match list.
type Team struct {
	Name string `json:"name"`
}

// Match is a single entry of the Cricbuzz match list.
type Match struct {
	ID    string `json:"id"`
	State string `json:"mchstate"`
	Type  string `json:"type"`
	Venue string `json:"venue_name"`
	Toss  string `json:"toss"`
	Team1 Team   `json:"team1"`
	Team2 Team   `json:"team2"`
}

// matchList is the envelope of the live-matches endpoint.
type matchList struct {
	Matches []Match `json:"matches"`
}

// Livescore is the live score payload for one match.
type Livescore struct {
	Batting Innings `json:"batting"`
}

// Innings holds one side's scorecard entries.
type Innings struct {
	Team  Team         `json:"team"`
	Score []ScoreEntry `json:"score"`
}

// ScoreEntry is one scorecard line. Cricbuzz serves numbers and strings
// interchangeably here, so the fields coerce both.
type ScoreEntry struct {
	Runs    FlexInt   `json:"runs"`
	Wickets FlexInt   `json:"wickets"`
	Overs   FlexFloat `json:"overs"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit overrides the default per-request rate limit.
func WithRateLimit(perSec float64, burst int) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Cricbuzz client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(2, 2),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) LiveMatches(ctx context.Context) ([]Match, error) {
	body, err := c.get(ctx, c.baseURL+"/livematches")
	if err != nil {
		return nil, eris.Wrap(err, "cricbuzz: fetch match list")
	}

	var list matchList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, eris.Wrap(err, "cricbuzz: unmarshal match list")
	}

	var live []Match
	for _, m := range list.Matches {
		if m.State == "inprogress" {
			live = append(live, m)
		}
	}
	if len(live) == 0 {
		return nil, eris.New("cricbuzz: no matches in progress")
	}

	return live, nil
}

func (c *httpClient) Livescore(ctx context.Context, matchID string) (*Livescore, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "cricbuzz: rate limiter")
	}

	body, err := c.get(ctx, fmt.Sprintf("%s/%s/summary", c.baseURL, matchID))
	if err != nil {
		return nil, eris.Wrapf(err, "cricbuzz: fetch livescore for match %s", matchID)
	}

	var ls Livescore
	if err := json.Unmarshal(body, &ls); err != nil {
		return nil, eris.Wrapf(err, "cricbuzz: unmarshal livescore for match %s", matchID)
	}

	return &ls, nil
}

func (c *httpClient) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
