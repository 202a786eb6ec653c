package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/youruser/horoscopecard/internal/horoscope"
)

// ErrUnknownSign is returned when enabled_signs names something outside the zodiac.
var ErrUnknownSign = errors.New("config: unknown sign")

const DefaultPort = "8080"

// Config represents the service configuration
type Config struct {
	Port           string   `toml:"port"`
	DisplayFont    string   `toml:"display_font"`
	BodyFont       string   `toml:"body_font"`
	Dataset        string   `toml:"dataset"`
	BackgroundsDir string   `toml:"backgrounds_dir"`
	BackgroundURLs []string `toml:"background_urls"`
	SignsDir       string   `toml:"signs_dir"`
	EnabledSigns   []string `toml:"enabled_signs"`
	RateLimit      float64  `toml:"rate_limit"` // requests per second, 0 disables
	RateBurst      int      `toml:"rate_burst"`
	PublicURL      string   `toml:"public_url"`
}

// Default returns the configuration matching the stock resources/ layout.
func Default() *Config {
	return &Config{
		Port:           DefaultPort,
		DisplayFont:    "resources/fonts/Cinzel.ttf",
		BodyFont:       "resources/fonts/Gideon.ttf",
		Dataset:        "resources/horoscopes.json",
		BackgroundsDir: "resources/backgrounds",
		SignsDir:       "resources/signs",
		EnabledSigns:   []string{"scorpio"},
		RateBurst:      1,
	}
}

// Load reads the config file at path on top of the defaults. An empty path
// skips the file. PORT from the environment always wins.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be caught later by asset loading.
func (c *Config) Validate() error {
	for _, s := range c.EnabledSigns {
		if _, ok := horoscope.LookupSign(s); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSign, s)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: rate_limit must not be negative, got %v", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("config: rate_burst must be at least 1 when rate_limit is set")
	}
	return nil
}

// Enabled reports whether the sign slug is served.
func (c *Config) Enabled(slug string) bool {
	for _, s := range c.EnabledSigns {
		if sign, ok := horoscope.LookupSign(s); ok && sign.Slug == slug {
			return true
		}
	}
	return false
}
