package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "scholar.db", c.DatabasePath)
	assert.Empty(t, c.DiscoveryFeedURL)
	assert.Empty(t, c.SealPassphrase)
	assert.Equal(t, 3*time.Minute, c.PollInterval)
	assert.Equal(t, 5*time.Second, c.WelcomeDelay)
	assert.Equal(t, 15*time.Minute, c.SessionTimeout)
	assert.Equal(t, 2*time.Minute, c.WarningBuffer)
	assert.Equal(t, 10*time.Second, c.CheckInterval)
}

func TestSessionConfig(t *testing.T) {
	var c Config
	c.LoadDefaults()

	sc := c.SessionConfig()
	assert.Equal(t, c.SessionTimeout, sc.Timeout)
	assert.Equal(t, c.WarningBuffer, sc.WarningBuffer)
	assert.Equal(t, c.CheckInterval, sc.CheckInterval)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "scholar.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Minute, cfg.SessionTimeout)
}

func Test_parseEnv(t *testing.T) {
	t.Setenv("SCHOLAR_DATABASE_PATH", "/tmp/env.db")
	t.Setenv("SCHOLAR_FEED_URL", "https://feeds.example.org/opps")
	t.Setenv("SCHOLAR_SEAL_PASSPHRASE", "hunter2")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/env.db", cfg.DatabasePath)
	assert.Equal(t, "https://feeds.example.org/opps", cfg.DiscoveryFeedURL)
	assert.Equal(t, "hunter2", cfg.SealPassphrase)
}
