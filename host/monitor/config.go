package monitor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the monitor configuration file.
type Config struct {
	Monitor MonitorConfig `yaml:"monitor"`
}

type MonitorConfig struct {
	// StaleAfterSec marks a board as stale after this many seconds of
	// silence. Zero selects the default.
	StaleAfterSec int `yaml:"stale_after_sec"`

	Consoles []ConsoleConfig `yaml:"consoles"`
}

// ConsoleConfig describes one board console.
type ConsoleConfig struct {
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
	Label  string `yaml:"label"`
}

// DefaultStaleAfterSec is twice the firmware heartbeat period with some
// slack for the queue drain pauses.
const DefaultStaleAfterSec = 35

// LoadConfig reads and parses a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ValidateConfig checks configuration correctness. It performs
// declarative validation only and MUST NOT mutate the configuration.
func ValidateConfig(cfg *Config) error {
	if len(cfg.Monitor.Consoles) == 0 {
		return fmt.Errorf("no consoles defined")
	}

	if cfg.Monitor.StaleAfterSec < 0 {
		return fmt.Errorf("stale_after_sec must not be negative")
	}

	seen := make(map[string]bool)
	for i, c := range cfg.Monitor.Consoles {
		if c.Device == "" {
			return fmt.Errorf("console %d: device must be set", i)
		}
		if seen[c.Device] {
			return fmt.Errorf("console %d: device %q appears twice", i, c.Device)
		}
		seen[c.Device] = true

		if c.Baud < 0 {
			return fmt.Errorf("console %q: baud must not be negative", c.Device)
		}
	}
	return nil
}

// NormalizeConfig fills in defaults. Call after ValidateConfig.
func NormalizeConfig(cfg *Config) {
	if cfg.Monitor.StaleAfterSec == 0 {
		cfg.Monitor.StaleAfterSec = DefaultStaleAfterSec
	}
	for i := range cfg.Monitor.Consoles {
		c := &cfg.Monitor.Consoles[i]
		if c.Baud == 0 {
			c.Baud = 115200
		}
		if c.Label == "" {
			c.Label = c.Device
		}
	}
}
