package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stumpline/cricket-cli/internal/pipeline"
	"github.com/stumpline/cricket-cli/internal/writer"
	"github.com/stumpline/cricket-cli/pkg/cricapi"
	"github.com/stumpline/cricket-cli/pkg/cricbuzz"
)

var (
	fetchMatchID string
	fetchTest    bool
	fetchFixture string
	fetchOut     string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch live matches and write the normalized state file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var primary cricapi.Client
		if cfg.CricAPI.Key != "" {
			primary = cricapi.NewClient(cfg.CricAPI.Key,
				cricapi.WithBaseURL(cfg.CricAPI.BaseURL),
				cricapi.WithTimeout(time.Duration(cfg.CricAPI.TimeoutSecs)*time.Second),
			)
		} else {
			zap.L().Warn("cricapi key not configured, primary source disabled")
		}

		var fallback cricbuzz.Client
		if cfg.Cricbuzz.Enabled {
			fallback = cricbuzz.NewClient(
				cricbuzz.WithBaseURL(cfg.Cricbuzz.BaseURL),
				cricbuzz.WithRateLimit(cfg.Cricbuzz.RatePerSec, cfg.Cricbuzz.Burst),
			)
		}

		fixture := fetchFixture
		if fixture == "" && fetchTest {
			fixture = cfg.Fixture.Path
		}

		p := pipeline.New(primary, fallback)
		outcome, err := p.Run(ctx, pipeline.Options{
			MatchID:     fetchMatchID,
			FixturePath: fixture,
		})
		if err != nil {
			return err
		}

		if outcome.NoLiveMatches {
			fmt.Fprintln(cmd.OutOrStdout(), "No live cricket matches right now.")
			return nil
		}

		outPath := fetchOut
		if outPath == "" {
			outPath = cfg.Output.Path
		}
		w := writer.New(outPath)
		if err := w.Write(outcome.Records); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Found %d live matches:\n", len(outcome.Records))
		writer.Summarize(cmd.OutOrStdout(), outcome.Records)

		zap.L().Info("fetch complete",
			zap.String("source", outcome.Source),
			zap.Int("records", len(outcome.Records)),
			zap.Int("parse_failures", outcome.ParseFailures),
			zap.String("output", outPath),
		)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchMatchID, "match-id", "", "process only the match with this id")
	fetchCmd.Flags().BoolVar(&fetchTest, "test", false, "read input from the configured fixture file instead of the network")
	fetchCmd.Flags().StringVar(&fetchFixture, "fixture", "", "fixture file path (implies --test)")
	fetchCmd.Flags().StringVar(&fetchOut, "out", "", "output file path (overrides output.path)")
	rootCmd.AddCommand(fetchCmd)
}
