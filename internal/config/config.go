package config

import (
	"fmt"
	"os"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// Config holds runtime settings.
type Config struct {
	Storage        string
	DataPath       string
	SaveDebounce   time.Duration
	Model          string
	SmartModel     string
	SuggestTimeout time.Duration
	LogLevel       string
	LogFile        string

	// APIKey is never read from the JSON file or flags.
	APIKey string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = StorageSQLite
	c.DataPath = ""
	c.SaveDebounce = 300 * time.Millisecond
	c.Model = "gemini-2.0-flash"
	c.SmartModel = "gemini-2.5-pro"
	c.SuggestTimeout = 30 * time.Second
	c.LogLevel = "warn"
	c.LogFile = ""
}

// Validate checks the storage backend and fills the backend's default data
// path when none was given.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite:
		if c.DataPath == "" {
			c.DataPath = "founderstack.db"
		}
	case StorageFile:
		if c.DataPath == "" {
			c.DataPath = "founderstack-data"
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q (want sqlite, file or memory)", c.Storage)
	}
	if c.SaveDebounce < 0 {
		return fmt.Errorf("negative save debounce %s", c.SaveDebounce)
	}
	return nil
}

// LoadConfig constructs a Config from defaults, the JSON file, flags and the
// environment, in that order. It panics on unreadable or invalid input.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	parseEnv(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
