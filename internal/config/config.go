// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	LLM     LLMConfig     `toml:"llm"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	Path string `toml:"path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme         string `toml:"theme"`          // "mocha", "macchiato", "frappe", "latte", "light"
	DefaultFilter string `toml:"default_filter"` // "all", "active", "completed"
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "openai", "lmstudio", "ollama"
	Model    string `toml:"model"`    // e.g., "qwen2.5-7b-instruct"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:1234/v1"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:         "mocha",
			DefaultFilter: "active",
		},
		LLM: LLMConfig{
			Provider: "lmstudio",
			Model:    "qwen2.5-7b-instruct",
			BaseURL:  "", // Empty means the provider's default endpoint
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todos.db"
	}
	return filepath.Join(home, ".local", "share", "todos", "todos.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "todos", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.Path = expandPath(cfg.Storage.Path)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// Storage overrides. DATABASE_URL is checked first so that the more
	// specific TODOS_DB_PATH wins when both are set.
	if v := os.Getenv("DATABASE_URL"); v != "" {
		if path, ok := sqlitePath(v); ok {
			cfg.Storage.Path = path
		}
	}
	if v := os.Getenv("TODOS_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}

	// UI overrides
	if v := os.Getenv("TODOS_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TODOS_FILTER"); v != "" {
		cfg.UI.DefaultFilter = v
	}

	// LLM overrides
	if v := os.Getenv("TODOS_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("TODOS_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("TODOS_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
}

// sqlitePath extracts the filesystem path from a sqlite:// or sqlite: URL.
func sqlitePath(url string) (string, bool) {
	for _, prefix := range []string{"sqlite://", "sqlite:"} {
		if strings.HasPrefix(url, prefix) {
			return strings.TrimPrefix(url, prefix), true
		}
	}
	return "", false
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("storage path must be set")
	}
	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if !isValidFilter(c.UI.DefaultFilter) {
		return fmt.Errorf("invalid default_filter: %s", c.UI.DefaultFilter)
	}
	if !isValidProvider(c.LLM.Provider) {
		return fmt.Errorf("invalid llm provider: %s", c.LLM.Provider)
	}
	return nil
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
	"light":     true,
}

func isValidTheme(theme string) bool {
	return validThemes[strings.ToLower(theme)]
}

var validFilters = map[string]bool{
	"all":       true,
	"active":    true,
	"completed": true,
}

func isValidFilter(filter string) bool {
	return validFilters[strings.ToLower(filter)]
}

var validProviders = map[string]bool{
	"openai":    true,
	"lmstudio":  true,
	"lm-studio": true,
	"ollama":    true,
}

func isValidProvider(provider string) bool {
	return validProviders[strings.ToLower(provider)]
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
