// Package writer persists normalized match records and prints per-match
// run summaries.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/stumpline/cricket-cli/internal/model"
)

// Writer serializes match records to a single JSON file, fully
// overwriting any prior content. The file always holds a JSON array,
// even for a single record.
type Writer struct {
	path string
}

// New creates a writer targeting path.
func New(path string) *Writer {
	return &Writer{path: path}
}

// Write marshals records as indented JSON and replaces the target file.
func (w *Writer) Write(records []model.MatchRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return eris.Wrap(err, "writer: marshal records")
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil {
		return eris.Wrapf(err, "writer: write %s", w.path)
	}
	return nil
}

// Summarize prints a one-line summary per match and mirrors it to the
// structured log.
func Summarize(out io.Writer, records []model.MatchRecord) {
	for _, r := range records {
		fmt.Fprintf(out, "[OK] %s %d/%d (%.1f ov)\n",
			r.Match.Teams, r.Score.Runs, r.Score.Wickets, r.Score.Overs)
		zap.L().Info("match processed",
			zap.String("teams", r.Match.Teams),
			zap.Int("runs", r.Score.Runs),
			zap.Int("wickets", r.Score.Wickets),
			zap.Float64("overs", r.Score.Overs),
			zap.String("source", r.Match.Source),
		)
	}
}
