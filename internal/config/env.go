package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values taken from the environment. A .env
// file in the working directory is loaded first when present; a missing
// file is not an error.
//
// Populated fields:
//   - DatabasePath     (SCHOLAR_DATABASE_PATH)
//   - DiscoveryFeedURL (SCHOLAR_FEED_URL)
//   - SealPassphrase   (SCHOLAR_SEAL_PASSPHRASE)
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SCHOLAR_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SCHOLAR_FEED_URL"); v != "" {
		cfg.DiscoveryFeedURL = v
	}
	if v := os.Getenv("SCHOLAR_SEAL_PASSPHRASE"); v != "" {
		cfg.SealPassphrase = v
	}
}
