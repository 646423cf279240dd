package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Phish.net API key, required for any network work
	APIKey string

	// API base URL, overridable for testing
	BaseURL string

	// Artist to keep when filtering fetched shows
	Artist string

	// First year of the sweep when no range is given
	StartYear int

	// Years fetched per pacing chunk
	YearBatchSize int

	// Shows enriched per pacing chunk
	ShowBatchSize int

	// Pause between pacing chunks
	BatchDelay time.Duration

	// Pause after each successful API request
	RequestDelay time.Duration

	// Total request attempts including the first
	RetryAttempts int

	// Directory the export files land in
	OutputDir string

	// Export filename prefix
	FilePrefix string
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	// A .env beside the binary is the easiest place for the API key
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("artist", "Phish")
	v.SetDefault("start_year", 1983)
	v.SetDefault("year_batch_size", 5)
	v.SetDefault("show_batch_size", 50)
	v.SetDefault("batch_delay_seconds", 2)
	v.SetDefault("request_delay_ms", 500)
	v.SetDefault("retry_attempts", 3)
	v.SetDefault("output_dir", ".")
	v.SetDefault("file_prefix", "phish_shows")

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables
	v.SetEnvPrefix("PHISHTAB")
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		APIKey:        v.GetString("api_key"),
		BaseURL:       v.GetString("base_url"),
		Artist:        v.GetString("artist"),
		StartYear:     v.GetInt("start_year"),
		YearBatchSize: v.GetInt("year_batch_size"),
		ShowBatchSize: v.GetInt("show_batch_size"),
		BatchDelay:    time.Duration(v.GetInt("batch_delay_seconds")) * time.Second,
		RequestDelay:  time.Duration(v.GetInt("request_delay_ms")) * time.Millisecond,
		RetryAttempts: v.GetInt("retry_attempts"),
		OutputDir:     v.GetString("output_dir"),
		FilePrefix:    v.GetString("file_prefix"),
	}

	return cfg, nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "phishtab")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}
