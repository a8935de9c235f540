package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stumpline/cricket-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "cricket-cli",
	Short: "Live cricket match fetcher",
	Long:  "Fetches live match data from CricAPI with a Cricbuzz fallback, normalizes it into a stable schema, and writes it to a JSON state file.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; viper picks up whatever it exported.
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
