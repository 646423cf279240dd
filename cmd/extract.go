package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/phishtab/phishtab/internal/config"
	"github.com/phishtab/phishtab/internal/export"
	"github.com/phishtab/phishtab/internal/extract"
	"github.com/phishtab/phishtab/internal/setlist"
	"github.com/phishtab/phishtab/pkg/phishnet"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	extractYears    string
	extractYes      bool
	extractOutDir   string
	extractPrefix   string
	extractLogFile  string
	extractLogLevel string
	extractSQLite   string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Fetch shows and setlists and export them as datasets",
	Long: `Fetch the show catalog and per-show setlists from the Phish.net API
and export them as datasets.

The run proceeds in stages:
1. Check API connectivity (nothing is written if this fails)
2. Confirm the year range (skipped with --yes or --years)
3. Sweep the catalog year by year and enrich each show with its setlist
4. Write standard, wide, and long CSV files into the output directory

Requests are paced to respect the API's rate limits, so a full-catalog
run takes a while. Failed years or setlists are logged and skipped;
only Ctrl-C stops the run.

An API key is required. Get one at https://api.phish.net/keys/ and set
PHISHTAB_API_KEY (a .env file in the working directory works too).`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractYears, "years", "", "Year range, YYYY or YYYY-YYYY (default: all years)")
	extractCmd.Flags().BoolVarP(&extractYes, "yes", "y", false, "Skip the confirmation prompts")
	extractCmd.Flags().StringVar(&extractOutDir, "out-dir", "", "Directory for export files (default: config output_dir)")
	extractCmd.Flags().StringVar(&extractPrefix, "prefix", "", "Export filename prefix (default: config file_prefix)")
	extractCmd.Flags().StringVar(&extractLogFile, "log-file", "", "Log file path (default: stderr)")
	extractCmd.Flags().StringVar(&extractLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	extractCmd.Flags().StringVar(&extractSQLite, "sqlite", "", "Also mirror results into a SQLite database at this path")
}

func runExtract(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The API key is the only fatal precondition
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key configured. Set PHISHTAB_API_KEY or add api_key to %s/config.yaml", config.GetConfigDir())
	}

	// Set up logging
	logger := setupLogger(extractLogFile, extractLogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle first signal gracefully, second signal forces exit
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info().Msg("Shutdown signal received, stopping extraction")
		cancel()

		<-sigChan
		logger.Warn().Msg("Second shutdown signal received, forcing exit")
		os.Exit(1)
	}()

	client, err := newAPIClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	// Probe before any real work so a bad key fails fast
	logger.Info().Msg("Testing API connection")
	if _, err := client.Shows().TodayInHistory(ctx); err != nil {
		return fmt.Errorf("API connection failed, check your API key: %w", err)
	}
	logger.Info().Msg("API connection successful")

	startYear, endYear, proceed, err := resolveYears(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if !proceed {
		logger.Info().Msg("Extraction cancelled by user")
		return nil
	}

	opts := extract.Options{
		StartYear:     startYear,
		EndYear:       endYear,
		Artist:        cfg.Artist,
		YearBatchSize: cfg.YearBatchSize,
		ShowBatchSize: cfg.ShowBatchSize,
		BatchDelay:    cfg.BatchDelay,
	}
	if startYear == 0 && cfg.StartYear != 0 {
		opts.StartYear = cfg.StartYear
	}

	extractor := extract.New(client, opts, logger)

	logger.Info().
		Int("start_year", extractor.Options().StartYear).
		Int("end_year", extractor.Options().EndYear).
		Str("artist", extractor.Options().Artist).
		Msg("Starting extraction")

	shows, err := extractor.Run(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if len(shows) == 0 {
		return fmt.Errorf("no shows extracted")
	}

	written, err := writeExports(cfg, shows, extractor.Universe(), startYear, endYear)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(renderPreview(shows, previewRows))
	fmt.Println()
	fmt.Printf("✓ Extracted %d shows (%d distinct songs)\n", len(shows), extractor.Universe().Len())
	for _, path := range written {
		fmt.Printf("✓ Wrote %s\n", path)
	}

	return nil
}

// writeExports writes the three CSV datasets, plus the optional SQLite
// mirror, and returns the paths written.
func writeExports(cfg *config.Config, shows []extract.Show, universe *setlist.Universe, startYear, endYear int) ([]string, error) {
	outDir := extractOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	prefix := extractPrefix
	if prefix == "" {
		prefix = cfg.FilePrefix
	}
	now := time.Now()

	sinks := []struct {
		tag   string
		write func(w io.Writer) error
	}{
		{export.TagStandard, func(w io.Writer) error { return export.WriteStandard(w, shows) }},
		{export.TagWide, func(w io.Writer) error { return export.WriteWide(w, shows, universe) }},
		{export.TagLong, func(w io.Writer) error { return export.WriteLong(w, shows) }},
	}

	var written []string
	for _, sink := range sinks {
		path := filepath.Join(outDir, export.Filename(prefix, startYear, endYear, sink.tag, now))
		if err := export.WriteFile(path, sink.write); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if extractSQLite != "" {
		if err := export.WriteSQLite(extractSQLite, shows); err != nil {
			return nil, fmt.Errorf("failed to write SQLite database: %w", err)
		}
		written = append(written, extractSQLite)
	}

	return written, nil
}

// resolveYears determines the year range for the run: the --years flag
// when given, otherwise an interactive prompt unless --yes skips it.
// Zero years mean the extractor's full default range; proceed is false
// when the user declines the confirmation.
func resolveYears(in io.Reader, out io.Writer) (int, int, bool, error) {
	if extractYears != "" {
		start, end, err := parseYearRange(extractYears)
		if err != nil {
			return 0, 0, false, fmt.Errorf("invalid --years value: %w", err)
		}
		return start, end, true, nil
	}

	if extractYes {
		return 0, 0, true, nil
	}

	reader := bufio.NewReader(in)

	fmt.Fprint(out, "This fetches every show and setlist in the range, which takes a while. Proceed? (y/n): ")
	response, err := reader.ReadString('\n')
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to read response: %w", err)
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		return 0, 0, false, nil
	}

	fmt.Fprint(out, "Enter year range (e.g. '2020-2024') or press Enter for all years: ")
	rangeInput, err := reader.ReadString('\n')
	if err != nil {
		return 0, 0, false, fmt.Errorf("failed to read year range: %w", err)
	}
	rangeInput = strings.TrimSpace(rangeInput)
	if rangeInput == "" {
		return 0, 0, true, nil
	}

	start, end, err := parseYearRange(rangeInput)
	if err != nil {
		// Malformed input falls back to the full range
		fmt.Fprintf(out, "Invalid year range format, using all years (%v)\n", err)
		return 0, 0, true, nil
	}
	return start, end, true, nil
}

// parseYearRange parses "YYYY" or "YYYY-YYYY".
func parseYearRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, nil
	}

	first, second, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", first)
	}
	if !found {
		return start, start, nil
	}

	end, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", second)
	}
	if end < start {
		return 0, 0, fmt.Errorf("year range %q ends before it starts", s)
	}
	return start, end, nil
}

// newAPIClient builds the Phish.net client from configuration.
func newAPIClient(cfg *config.Config, logger zerolog.Logger) (*phishnet.Client, error) {
	return phishnet.NewClient(phishnet.Config{
		APIKey:       cfg.APIKey,
		BaseURL:      cfg.BaseURL,
		Logger:       apiLogger{logger.With().Str("component", "phishnet").Logger()},
		RequestDelay: cfg.RequestDelay,
		Retry:        phishnet.RetryPolicy{MaxAttempts: cfg.RetryAttempts},
	})
}

// apiLogger adapts zerolog to the client's minimal Logger interface.
type apiLogger struct {
	l zerolog.Logger
}

func (a apiLogger) Debugf(format string, args ...interface{}) {
	a.l.Debug().Msgf(format, args...)
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Set up output
	var output *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			output = os.Stderr
		} else {
			output = f
		}
	} else {
		output = os.Stderr
	}

	// Create logger
	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Use pretty console output if logging to stderr
	if output == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger
}
