package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/phishtab/phishtab/internal/config"
	"github.com/spf13/cobra"
)

var probeLogLevel string

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check API connectivity and your key",
	Long: `Check that the Phish.net API is reachable and your key works.

Nothing is fetched beyond a single today-in-history request and nothing
is written. Exit code 0 means the extract command is ready to run.`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVar(&probeLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runProbe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured. Set PHISHTAB_API_KEY or add api_key to %s/config.yaml", config.GetConfigDir())
	}

	logger := setupLogger("", probeLogLevel)

	client, err := newAPIClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	shows, err := client.Shows().TodayInHistory(ctx)
	if err != nil {
		return fmt.Errorf("API connection failed, check your API key: %w", err)
	}

	fmt.Printf("✓ API connection successful (%d shows on this date in history)\n", len(shows))
	return nil
}
