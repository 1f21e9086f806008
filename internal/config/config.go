package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// APIConfig points the client at the news backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout,omitempty"`
}

// SearchDefaults seed the search screen's controls.
type SearchDefaults struct {
	Language string `yaml:"language,omitempty"`
	PageSize int    `yaml:"page_size,omitempty"`
}

type Config struct {
	API    APIConfig      `yaml:"api"`
	Search SearchDefaults `yaml:"search,omitempty"`
}

// BaseURL returns the backend base URL, with the NEWSDESK_API_URL
// environment variable taking precedence over the config file.
func (c *Config) BaseURL() string {
	if v := os.Getenv("NEWSDESK_API_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return strings.TrimRight(c.API.BaseURL, "/")
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Language returns the search language code, defaulting to "en".
func (c *Config) Language() string {
	if c.Search.Language == "" {
		return "en"
	}
	return c.Search.Language
}

// PageSize returns the fixed result page size, defaulting to 20.
func (c *Config) PageSize() int {
	if c.Search.PageSize <= 0 {
		return 20
	}
	return c.Search.PageSize
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsdesk", "config.yaml")
}

// StatePath is the sqlite file holding the active workspace and
// recent searches.
func StatePath() string {
	return filepath.Join(xdg.StateHome, "newsdesk", "newsdesk.db")
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
	// A .env in the working directory may carry NEWSDESK_API_URL.
	_ = godotenv.Load()

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

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
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
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url: scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.Search.PageSize < 0 || cfg.Search.PageSize > 100 {
		return fmt.Errorf("search.page_size: must be between 1 and 100, got %d", cfg.Search.PageSize)
	}
	return nil
}
