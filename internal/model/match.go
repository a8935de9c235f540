// Package model defines the canonical match record schema shared by all
// providers.
package model

import "time"

// Status represents the coarse state of a match.
type Status string

const (
	StatusLive         Status = "live"
	StatusInningsBreak Status = "innings_break"
	StatusCompleted    Status = "completed"
)

// Phase classifies how far a limited-overs innings has progressed.
type Phase string

const (
	PhasePowerplay   Phase = "powerplay"
	PhaseMiddleOvers Phase = "middle_overs"
	PhaseDeathOvers  Phase = "death_overs"
)

// NameUnavailable is the sentinel for name-valued fields a provider tier
// does not expose (toss winner, batter, bowler). Consumers use it to tell
// "provider has no data" apart from real values.
const NameUnavailable = "Data Not Available"

// Provider tags identifying which source produced a record.
const (
	SourceCricAPI  = "cricapi"
	SourceCricbuzz = "cricbuzz"
)

// MatchRecord is the canonical, provider-independent representation of a
// live match. Every field is always populated: data a provider cannot
// supply is filled with explicit sentinels rather than omitted, so
// downstream consumers can rely on a fixed shape. Records are built fresh
// on every fetch cycle and never mutated after construction.
type MatchRecord struct {
	Match         MatchInfo     `json:"match"`
	Score         Score         `json:"score"`
	CurrentBatter BatterStats   `json:"current_batter"`
	NonStriker    BatterStats   `json:"non_striker"`
	CurrentBowler BowlerStats   `json:"current_bowler"`
	Partnership   Partnership   `json:"partnership"`
	MatchPhase    Phase         `json:"match_phase"`
	LastFiveOvers OverWindow    `json:"last_5_overs"`
	RecentWickets []WicketEvent `json:"recent_wickets"`
	FetchedAt     time.Time     `json:"fetched_at"`
}

// MatchInfo holds match-level metadata.
type MatchInfo struct {
	ID         string `json:"id"`
	Teams      string `json:"teams"`
	Format     string `json:"format"`
	Venue      string `json:"venue"`
	Innings    int    `json:"innings"`
	Target     *int   `json:"target"`
	Toss       string `json:"toss"`
	Status     Status `json:"status"`
	StatusText string `json:"status_text"`
	Source     string `json:"source"`
}

// Score holds the current innings score and derived rates. RequiredRate
// is never computed from the current sources and stays null.
type Score struct {
	Runs         int      `json:"runs"`
	Wickets      int      `json:"wickets"`
	Overs        float64  `json:"overs"`
	RunRate      float64  `json:"run_rate"`
	RequiredRate *float64 `json:"required_rate"`
	Details      any      `json:"details"`
}

// BatterStats holds per-batter figures. The free API tiers do not expose
// ball-by-ball data, so these are sentinel-filled placeholders.
type BatterStats struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	StrikeRate float64 `json:"strike_rate"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
}

// BowlerStats holds per-bowler figures. Same placeholder policy as
// BatterStats.
type BowlerStats struct {
	Name         string  `json:"name"`
	Overs        float64 `json:"overs"`
	RunsConceded int     `json:"runs_conceded"`
	Wickets      int     `json:"wickets"`
	Economy      float64 `json:"economy"`
	Maidens      int     `json:"maidens"`
}

// Partnership describes the current batting partnership.
type Partnership struct {
	Runs    int    `json:"runs"`
	Balls   int    `json:"balls"`
	Batter1 string `json:"batter1"`
	Batter2 string `json:"batter2"`
}

// OverWindow aggregates a trailing window of overs. Not computed from the
// current sources; always zero.
type OverWindow struct {
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
}

// WicketEvent records a single dismissal. The current sources never
// populate these; RecentWickets is always an empty (non-nil) slice.
type WicketEvent struct {
	Batter string  `json:"batter"`
	Over   float64 `json:"over"`
	Score  string  `json:"score"`
}
