// ABOUTME: Configuration management for feed sources, data directory and server address
// ABOUTME: Reads a JSON config file, applies .env/environment overrides, and opens the collection store

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/storage"
)

// Environment variables that override the config file.
const (
	EnvDataDir  = "NEWSROOM_DATA_DIR"
	EnvAddr     = "NEWSROOM_ADDR"
	EnvNewsURL  = "NEWSROOM_NEWS_URL"
	EnvPressURL = "NEWSROOM_PRESS_URL"
)

// Config stores newsroom configuration.
type Config struct {
	// DataDir is the directory holding rss_data_news.json and rss_data_press.json.
	// Supports ~ expansion. Defaults to the current directory.
	DataDir string `json:"data_dir,omitempty"`

	// Addr is the listen address of the web server.
	Addr string `json:"addr,omitempty"`

	// Sources maps a source name (news, press) to its feed URL.
	Sources map[string]string `json:"sources,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir
	}
	return ExpandPath(c.DataDir)
}

// GetAddr returns the configured listen address.
func (c *Config) GetAddr() string {
	if c.Addr == "" {
		return DefaultAddr
	}
	return c.Addr
}

// GetSources returns the news and press sources in that order.
func (c *Config) GetSources() []models.Source {
	news := c.Sources[models.SourceNews]
	if news == "" {
		news = DefaultNewsURL
	}
	press := c.Sources[models.SourcePress]
	if press == "" {
		press = DefaultPressURL
	}
	return []models.Source{
		models.NewSource(models.SourceNews, "Latest Articles", news),
		models.NewSource(models.SourcePress, "Latest Press Releases", press),
	}
}

// GetSource returns the source with the given name.
func (c *Config) GetSource(name string) (models.Source, error) {
	for _, s := range c.GetSources() {
		if s.Name == name {
			return s, nil
		}
	}
	return models.Source{}, fmt.Errorf("unknown source: %q", name)
}

// OpenStorage returns the collection store rooted at the data directory.
func (c *Config) OpenStorage() *storage.FileStore {
	return storage.NewFileStore(c.GetDataDir())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "newsroom", "config.json")
}

// Load reads config from disk and applies environment overrides.
// A missing config file yields the defaults.
func Load() (*Config, error) {
	// A .env file in the working directory is optional
	_ = godotenv.Load()

	cfg, err := LoadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads a config file without applying environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return err
	}
	return os.WriteFile(path, data, DefaultFilePerms)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvNewsURL); v != "" {
		c.setSource(models.SourceNews, v)
	}
	if v := os.Getenv(EnvPressURL); v != "" {
		c.setSource(models.SourcePress, v)
	}
}

func (c *Config) setSource(name, url string) {
	if c.Sources == nil {
		c.Sources = map[string]string{}
	}
	c.Sources[name] = url
}
