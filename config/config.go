package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment overrides
const (
	EnvOutputDir = "MIDIGEN_OUTPUT_DIR"
	EnvDebug     = "MIDIGEN_DEBUG"
)

// MaxRecent caps the remembered request history
const MaxRecent = 10

// RecentRequest is a previously generated file request
type RecentRequest struct {
	Shape   string `json:"shape"`
	Root    string `json:"root"`
	Mapping string `json:"mapping,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	OutputDir string          `json:"outputDir,omitempty"`
	Debug     bool            `json:"debug,omitempty"`
	Palette   string          `json:"palette,omitempty"` // path to a .gpl file
	Recent    []RecentRequest `json:"recent,omitempty"`  // newest first
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midigen"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadEnv reads .env files (default ./.env) into the environment.
// Missing files are not an error and existing variables are not replaced.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// OutputPath returns where generated files go: MIDIGEN_OUTPUT_DIR, then the
// config value, then the working directory
func (c *Config) OutputPath() string {
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		return dir
	}
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return "."
}

// DebugEnabled reports whether debug logging was requested by config or MIDIGEN_DEBUG
func (c *Config) DebugEnabled() bool {
	switch strings.ToLower(os.Getenv(EnvDebug)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return c.Debug
}

// AddRecent records a request as the newest, dropping an older duplicate
func (c *Config) AddRecent(r RecentRequest) {
	list := []RecentRequest{r}
	for _, old := range c.Recent {
		if old != r {
			list = append(list, old)
		}
	}
	if len(list) > MaxRecent {
		list = list[:MaxRecent]
	}
	c.Recent = list
}

// LastRecent returns the newest recorded request, if any
func (c *Config) LastRecent() (RecentRequest, bool) {
	if len(c.Recent) == 0 {
		return RecentRequest{}, false
	}
	return c.Recent[0], true
}
