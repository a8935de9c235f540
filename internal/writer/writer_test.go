package writer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stumpline/cricket-cli/internal/model"
)

func sampleRecord(id string) model.MatchRecord {
	return model.MatchRecord{
		Match: model.MatchInfo{
			ID:     id,
			Teams:  "India vs Australia",
			Format: "T20",
			Toss:   "India chose to bat",
			Status: model.StatusLive,
			Source: model.SourceCricAPI,
		},
		Score: model.Score{Runs: 65, Wickets: 2, Overs: 10.3, RunRate: 6.19},
		CurrentBatter: model.BatterStats{Name: model.NameUnavailable},
		NonStriker:    model.BatterStats{Name: model.NameUnavailable},
		CurrentBowler: model.BowlerStats{Name: model.NameUnavailable},
		MatchPhase:    model.PhaseMiddleOvers,
		RecentWickets: []model.WicketEvent{},
		FetchedAt:     time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriteProducesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_state.json")
	w := New(path)

	require.NoError(t, w.Write([]model.MatchRecord{sampleRecord("m1")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []model.MatchRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "m1", records[0].Match.ID)
	assert.Equal(t, "India vs Australia", records[0].Match.Teams)
}

func TestWriteOverwritesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_state.json")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 64*1024), 0o644))

	w := New(path)
	require.NoError(t, w.Write([]model.MatchRecord{sampleRecord("m1")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "xxx")

	var records []model.MatchRecord
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 1)
}

func TestWriteAllFieldsPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match_state.json")
	w := New(path)
	require.NoError(t, w.Write([]model.MatchRecord{sampleRecord("m1")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	// The canonical schema never omits fields; sentinels and nulls are
	// written explicitly.
	for _, key := range []string{
		"match", "score", "current_batter", "non_striker", "current_bowler",
		"partnership", "match_phase", "last_5_overs", "recent_wickets", "fetched_at",
	} {
		assert.Contains(t, raw[0], key)
	}

	score := raw[0]["score"].(map[string]any)
	assert.Contains(t, score, "required_rate")
	assert.Nil(t, score["required_rate"])

	assert.NotNil(t, raw[0]["recent_wickets"], "recent_wickets must be an empty array, not null")
}

func TestWriteFailureIsFatal(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "match_state.json"))
	err := w.Write([]model.MatchRecord{sampleRecord("m1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writer: write")
}

func TestSummarize(t *testing.T) {
	var buf bytes.Buffer
	Summarize(&buf, []model.MatchRecord{sampleRecord("m1"), sampleRecord("m2")})

	out := buf.String()
	assert.Contains(t, out, "[OK] India vs Australia 65/2 (10.3 ov)")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("[OK]")))
}
