package assistant

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultWatchlist backs the market-status reply when no config is given.
var defaultWatchlist = []string{"BTC", "ETH"}

// Config tunes the assistant's replies.
type Config struct {
	// Watchlist is the fixed set of assets summarized by the market intent.
	Watchlist []string `yaml:"watchlist"`
}

// LoadConfig reads configuration from disk.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open assistant config: %w", err)
	}
	defer file.Close()
	return LoadConfigFromReader(file)
}

// LoadConfigFromReader constructs a Config from a reader.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read assistant config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal assistant config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	cleaned := make([]string, 0, len(c.Watchlist))
	for _, sym := range c.Watchlist {
		if s := strings.ToUpper(strings.TrimSpace(sym)); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		cleaned = append(cleaned, defaultWatchlist...)
	}
	c.Watchlist = cleaned
}
