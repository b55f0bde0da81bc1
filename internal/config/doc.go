// Package config loads runtime configuration for the scholar engine CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally loaded from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file (":memory:" for ephemeral)
//	-f string   discovery feed URL; empty disables polling
//	-p int      discovery poll interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3m" or integer nanoseconds:
//
//	{
//	  "database_path": "scholar.db",
//	  "discovery_feed_url": "https://feeds.example.org/opportunities",
//	  "poll_interval": "3m",
//	  "welcome_delay": "5s",
//	  "session_timeout": "15m",
//	  "warning_buffer": "2m",
//	  "check_interval": "10s"
//	}
//
// Environment variables
//
//	SCHOLAR_DATABASE_PATH     database file path
//	SCHOLAR_FEED_URL          discovery feed URL
//	SCHOLAR_SEAL_PASSPHRASE   enables at-rest encryption of the store
//
// The passphrase is deliberately env-only so it never lands in a config
// file or shell history via flags.
package config
