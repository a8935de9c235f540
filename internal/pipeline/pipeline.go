// Package pipeline drives a fetch cycle: primary source, fallback on
// failure, live-match filtering, per-record normalization.
package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/stumpline/cricket-cli/internal/model"
	"github.com/stumpline/cricket-cli/internal/normalize"
	"github.com/stumpline/cricket-cli/pkg/cricapi"
	"github.com/stumpline/cricket-cli/pkg/cricbuzz"
)

// ErrMatchNotFound is returned when a requested match id is not among
// the live matches. It is terminal: the fallback is not consulted for
// an id the primary source already answered about.
var ErrMatchNotFound = eris.New("requested match id not found among live matches")

// Options selects what a run fetches.
type Options struct {
	// MatchID narrows the live set to a single match. Empty processes
	// every live match (batch-all policy).
	MatchID string
	// FixturePath, when set, sources input from a local file shaped like
	// the primary response instead of the network. A missing fixture is
	// fatal.
	FixturePath string
	// Now is injectable for testing. Defaults to time.Now.
	Now func() time.Time
}

// Outcome is the result of one fetch cycle.
type Outcome struct {
	Records       []model.MatchRecord
	Source        string
	ParseFailures int
	// NoLiveMatches marks the benign empty state: the source answered,
	// there is simply nothing live. Not an error.
	NoLiveMatches bool
}

// Pipeline holds the two source clients. Either may be nil when not
// configured; a nil primary goes straight to the fallback, a nil
// fallback fails fast with a descriptive reason.
type Pipeline struct {
	primary  cricapi.Client
	fallback cricbuzz.Client
}

// New creates a pipeline over the given source clients.
func New(primary cricapi.Client, fallback cricbuzz.Client) *Pipeline {
	return &Pipeline{primary: primary, fallback: fallback}
}

// Run executes one fetch cycle. The flow is a strict linear pipeline
// with a single fallback edge: primary failure (transport, timeout after
// one retry, or non-success body status) triggers exactly one fallback
// attempt; if that fails too the combined error is returned and nothing
// is written.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Outcome, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if opts.FixturePath != "" {
		resp, err := loadFixture(opts.FixturePath)
		if err != nil {
			return nil, err
		}
		return p.processPrimary(resp, opts.MatchID, now)
	}

	resp, perr := p.fetchPrimary(ctx)
	if perr == nil {
		return p.processPrimary(resp, opts.MatchID, now)
	}
	zap.L().Warn("primary source unavailable, switching to fallback", zap.Error(perr))

	out, ferr := p.runFallback(ctx, opts.MatchID, now)
	if ferr != nil {
		return nil, eris.Wrapf(ferr, "both sources failed (primary: %v)", perr)
	}
	return out, nil
}

func (p *Pipeline) fetchPrimary(ctx context.Context) (*cricapi.CurrentMatchesResponse, error) {
	if p.primary == nil {
		return nil, eris.New("cricapi: no API key configured")
	}
	return p.primary.CurrentMatches(ctx)
}

func (p *Pipeline) processPrimary(resp *cricapi.CurrentMatchesResponse, matchID string, now func() time.Time) (*Outcome, error) {
	var live []cricapi.Match
	failures := 0
	for _, raw := range resp.Data {
		m, err := cricapi.ParseMatch(raw)
		if err != nil {
			failures++
			zap.L().Warn("skipping unparseable match", zap.Error(err))
			continue
		}
		if m.MatchStarted && !m.MatchEnded {
			live = append(live, m)
		}
	}

	if matchID != "" {
		narrowed := live[:0]
		for _, m := range live {
			if m.ID == matchID {
				narrowed = append(narrowed, m)
			}
		}
		if len(narrowed) == 0 {
			return nil, eris.Wrapf(ErrMatchNotFound, "match id %s", matchID)
		}
		live = narrowed
	}

	if len(live) == 0 {
		return &Outcome{Source: model.SourceCricAPI, ParseFailures: failures, NoLiveMatches: true}, nil
	}

	var records []model.MatchRecord
	for _, m := range live {
		rec, err := normalize.FromCricAPI(m, now())
		if err != nil {
			failures++
			zap.L().Warn("skipping match: normalization failed",
				zap.String("match", m.Name),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, eris.Errorf("pipeline: all %d live matches failed to normalize", len(live))
	}

	return &Outcome{Records: records, Source: model.SourceCricAPI, ParseFailures: failures}, nil
}

func (p *Pipeline) runFallback(ctx context.Context, matchID string, now func() time.Time) (*Outcome, error) {
	if p.fallback == nil {
		return nil, eris.New("cricbuzz: integration disabled")
	}

	matches, err := p.fallback.LiveMatches(ctx)
	if err != nil {
		return nil, err
	}

	if matchID != "" {
		narrowed := matches[:0]
		for _, m := range matches {
			if m.ID == matchID {
				narrowed = append(narrowed, m)
			}
		}
		if len(narrowed) == 0 {
			return nil, eris.Wrapf(ErrMatchNotFound, "match id %s", matchID)
		}
		matches = narrowed
	}

	var records []model.MatchRecord
	failures := 0
	for _, m := range matches {
		ls, err := p.fallback.Livescore(ctx, m.ID)
		if err != nil {
			failures++
			zap.L().Warn("skipping match: livescore fetch failed",
				zap.String("match", m.ID),
				zap.Error(err),
			)
			continue
		}
		rec, err := normalize.FromCricbuzz(m, ls, now())
		if err != nil {
			failures++
			zap.L().Warn("skipping match: normalization failed",
				zap.String("match", m.ID),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, eris.Errorf("cricbuzz: no matches could be processed (%d failures)", failures)
	}

	return &Outcome{Records: records, Source: model.SourceCricbuzz, ParseFailures: failures}, nil
}

// loadFixture reads a local file shaped like the primary current-matches
// response. Unlike the live path, the body status flag is not checked:
// fixtures exist to exercise the processing, not the transport.
func loadFixture(path string) (*cricapi.CurrentMatchesResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: read fixture %s", path)
	}
	var resp cricapi.CurrentMatchesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, eris.Wrapf(err, "pipeline: decode fixture %s", path)
	}
	return &resp, nil
}
