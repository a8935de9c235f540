// Package normalize converts raw provider match objects into canonical
// match records. All functions are pure: same input, same output, except
// for the caller-supplied fetch timestamp.
package normalize

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/stumpline/cricket-cli/internal/model"
	"github.com/stumpline/cricket-cli/pkg/cricapi"
	"github.com/stumpline/cricket-cli/pkg/cricbuzz"
)

// FromCricAPI builds a canonical record from a CricAPI match. The last
// entry of the score array is taken as the innings in progress, a known
// simplification (declared and rain-affected innings are not
// special-cased). A match that fails validation returns an error so the
// caller can skip it without aborting the batch.
func FromCricAPI(m cricapi.Match, now time.Time) (model.MatchRecord, error) {
	teams := strings.Join(m.Teams, " vs ")
	if len(m.Teams) == 0 {
		teams = m.Name
		if teams == "" {
			teams = "Unknown Match"
		}
	}

	status := model.StatusLive
	switch {
	case m.MatchEnded:
		status = model.StatusCompleted
	case strings.Contains(strings.ToLower(m.Status), "innings break"):
		status = model.StatusInningsBreak
	}

	var cur cricapi.InningsScore
	innings := 1
	if len(m.Score) > 0 {
		cur = m.Score[len(m.Score)-1]
		innings = len(m.Score)
	}
	if err := validateScore(cur.Runs, cur.Wickets, cur.Overs); err != nil {
		return model.MatchRecord{}, eris.Wrapf(err, "normalize: match %q", m.ID)
	}

	rec := model.MatchRecord{
		Match: model.MatchInfo{
			ID:         m.ID,
			Teams:      teams,
			Format:     strings.ToUpper(m.MatchType),
			Venue:      m.Venue,
			Innings:    innings,
			Toss:       tossDescription(m.TossWinner, m.TossChoice),
			Status:     status,
			StatusText: m.Status,
			Source:     model.SourceCricAPI,
		},
		Score: model.Score{
			Runs:    cur.Runs,
			Wickets: cur.Wickets,
			Overs:   cur.Overs,
			RunRate: RunRate(cur.Runs, cur.Overs),
			Details: m.Score,
		},
		MatchPhase: PhaseFor(m.MatchType, cur.Overs),
		FetchedAt:  now,
	}
	fillUnavailable(&rec)
	return rec, nil
}

// FromCricbuzz builds a canonical record from a Cricbuzz match and its
// live score. The first scorecard entry is the innings in progress;
// innings count is always 1 and status always live, matching what the
// mobile list endpoint exposes.
func FromCricbuzz(m cricbuzz.Match, ls *cricbuzz.Livescore, now time.Time) (model.MatchRecord, error) {
	if ls == nil || len(ls.Batting.Score) == 0 {
		return model.MatchRecord{}, eris.Errorf("normalize: match %q has no batting score", m.ID)
	}

	entry := ls.Batting.Score[0]
	runs := int(entry.Runs)
	wickets := int(entry.Wickets)
	overs := float64(entry.Overs)
	if err := validateScore(runs, wickets, overs); err != nil {
		return model.MatchRecord{}, eris.Wrapf(err, "normalize: match %q", m.ID)
	}

	toss := m.Toss
	if toss == "" {
		toss = model.NameUnavailable
	}

	rec := model.MatchRecord{
		Match: model.MatchInfo{
			ID:         m.ID,
			Teams:      fmt.Sprintf("%s vs %s", m.Team1.Name, m.Team2.Name),
			Format:     strings.ToUpper(m.Type),
			Venue:      m.Venue,
			Innings:    1,
			Toss:       toss,
			Status:     model.StatusLive,
			StatusText: m.State,
			Source:     model.SourceCricbuzz,
		},
		Score: model.Score{
			Runs:    runs,
			Wickets: wickets,
			Overs:   overs,
			RunRate: RunRate(runs, overs),
			Details: ls.Batting.Score,
		},
		MatchPhase: PhaseFor(m.Type, overs),
		FetchedAt:  now,
	}
	fillUnavailable(&rec)
	return rec, nil
}

// tossDescription composes "<winner> chose to <choice>". A missing
// winner yields the sentinel: concatenating absent values would produce
// an uninformative string like "None chose to None".
func tossDescription(winner, choice string) string {
	if winner == "" {
		return model.NameUnavailable
	}
	return fmt.Sprintf("%s chose to %s", winner, choice)
}

// validateScore rejects score entries the schema cannot represent.
func validateScore(runs, wickets int, overs float64) error {
	if runs < 0 {
		return eris.Errorf("negative runs %d", runs)
	}
	if wickets < 0 || wickets > 10 {
		return eris.Errorf("wickets %d out of range", wickets)
	}
	if overs < 0 {
		return eris.Errorf("negative overs %g", overs)
	}
	whole := int(overs)
	if balls := int(math.Round((overs - float64(whole)) * 10)); balls > 5 {
		return eris.Errorf("overs %g: ball component out of range", overs)
	}
	return nil
}

// fillUnavailable populates the fields the free provider tiers never
// expose with explicit sentinels so the record shape stays fixed.
func fillUnavailable(rec *model.MatchRecord) {
	rec.CurrentBatter = model.BatterStats{Name: model.NameUnavailable}
	rec.NonStriker = model.BatterStats{Name: model.NameUnavailable}
	rec.CurrentBowler = model.BowlerStats{Name: model.NameUnavailable}
	rec.Partnership = model.Partnership{}
	rec.LastFiveOvers = model.OverWindow{}
	rec.RecentWickets = []model.WicketEvent{}
}
