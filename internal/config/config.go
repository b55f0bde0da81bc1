package config

import (
	"time"

	"github.com/nuesadev/scholarengine/internal/discovery"
	"github.com/nuesadev/scholarengine/internal/session"
)

// Config holds runtime settings for the scholar engine CLI.
//
// Units: all intervals are time.Duration values.
type Config struct {
	DatabasePath     string
	DiscoveryFeedURL string
	SealPassphrase   string

	PollInterval time.Duration
	WelcomeDelay time.Duration

	SessionTimeout time.Duration
	WarningBuffer  time.Duration
	CheckInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "scholar.db"
	c.DiscoveryFeedURL = ""
	c.SealPassphrase = ""
	c.PollInterval = discovery.DefaultInterval
	c.WelcomeDelay = discovery.DefaultWelcomeDelay

	sc := session.DefaultConfig()
	c.SessionTimeout = sc.Timeout
	c.WarningBuffer = sc.WarningBuffer
	c.CheckInterval = sc.CheckInterval
}

// SessionConfig returns the inactivity schedule as a session.Config.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		Timeout:       c.SessionTimeout,
		WarningBuffer: c.WarningBuffer,
		CheckInterval: c.CheckInterval,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
