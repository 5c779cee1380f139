package serve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the site server.
type Config struct {
	Addr        string `yaml:"addr"`
	SiteDir     string `yaml:"site_dir"`
	CacheMaxAge int    `yaml:"cache_max_age"` // seconds, applied to snapshot responses
}

// LoadConfig reads a YAML configuration file. An empty path yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8077"
	}
	if c.SiteDir == "" {
		c.SiteDir = "site"
	}
	if c.CacheMaxAge <= 0 {
		c.CacheMaxAge = 3600
	}
}
