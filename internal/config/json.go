package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nuesadev/scholarengine/internal/flagx"
	"github.com/nuesadev/scholarengine/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3m" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath     string         `json:"database_path"`
	DiscoveryFeedURL string         `json:"discovery_feed_url"`
	PollInterval     timex.Duration `json:"poll_interval"`
	WelcomeDelay     timex.Duration `json:"welcome_delay"`
	SessionTimeout   timex.Duration `json:"session_timeout"`
	WarningBuffer    timex.Duration `json:"warning_buffer"`
	CheckInterval    timex.Duration `json:"check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.ConfigFileFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values are
//     treated as "not specified" and leave the earlier value intact.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseEnv -> parseJson -> parseFlags, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DiscoveryFeedURL != "" {
		cfg.DiscoveryFeedURL = jc.DiscoveryFeedURL
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = time.Duration(jc.PollInterval.Duration)
	}
	if jc.WelcomeDelay.Duration != 0 {
		cfg.WelcomeDelay = time.Duration(jc.WelcomeDelay.Duration)
	}
	if jc.SessionTimeout.Duration != 0 {
		cfg.SessionTimeout = time.Duration(jc.SessionTimeout.Duration)
	}
	if jc.WarningBuffer.Duration != 0 {
		cfg.WarningBuffer = time.Duration(jc.WarningBuffer.Duration)
	}
	if jc.CheckInterval.Duration != 0 {
		cfg.CheckInterval = time.Duration(jc.CheckInterval.Duration)
	}
}
