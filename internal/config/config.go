package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const (
	SourceSimulated = "simulated"
	SourceFeed      = "feed"
)

type Config struct {
	Source    string `yaml:"source"`
	FeedURL   string `yaml:"feed_url,omitempty"`
	Latency   string `yaml:"latency,omitempty"`
	Fail      bool   `yaml:"fail,omitempty"`
	SearchKey string `yaml:"search_key,omitempty"`
}

// LatencyDuration returns the simulated fetch latency, defaulting to 2s.
func (c *Config) LatencyDuration() time.Duration {
	d, err := time.ParseDuration(c.Latency)
	if err != nil {
		return 2 * time.Second
	}
	return d
}

// GetSearchKey returns the key the search term persists under, defaulting
// to "search".
func (c *Config) GetSearchKey() string {
	if c.SearchKey == "" {
		return "search"
	}
	return c.SearchKey
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "hackstories", "config.yaml")
}

func StorePath() string {
	return filepath.Join(xdg.CacheHome, "hackstories", "hackstories.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Source == "" {
		cfg.Source = defaults.Source
	}
	if cfg.FeedURL == "" {
		cfg.FeedURL = defaults.FeedURL
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Source {
	case SourceSimulated:
	case SourceFeed:
		if cfg.FeedURL == "" {
			return fmt.Errorf("source %q: feed_url is required", cfg.Source)
		}
		u, err := url.Parse(cfg.FeedURL)
		if err != nil {
			return fmt.Errorf("invalid feed_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feed_url scheme must be http or https, got %q", u.Scheme)
		}
	default:
		return fmt.Errorf("unknown source %q (valid: simulated, feed)", cfg.Source)
	}

	if cfg.Latency != "" {
		if _, err := time.ParseDuration(cfg.Latency); err != nil {
			return fmt.Errorf("invalid latency %q: %w", cfg.Latency, err)
		}
	}
	return nil
}
