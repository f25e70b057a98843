package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the saved configuration
const (
	EnvOutputDir = "ODGEN_OUTPUT_DIR"
	EnvDegree    = "ODGEN_DEGREE"
	EnvAddr      = "ODGEN_ADDR"
)

// DefaultServerAddr is used by `odgen serve` when nothing is configured.
const DefaultServerAddr = ":8080"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	OutputDir      string   `json:"output_dir,omitempty"`
	DegreePrefix   string   `json:"degree_prefix,omitempty"`
	SignatureRoles []string `json:"signature_roles,omitempty"`
	DateLayout     string   `json:"date_layout,omitempty"`
	TimeLayout     string   `json:"time_layout,omitempty"`
	AccentColor    string   `json:"accent_color,omitempty"`
	ServerAddr     string   `json:"server_addr,omitempty"`
}

// getConfigPath returns the absolute path to ~/.odgen.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".odgen.json"), nil
}

// Path reports where the configuration file lives.
func Path() (string, error) {
	return getConfigPath()
}

// Load reads the application configuration from disk and applies
// environment overrides. Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadDotEnv loads ODGEN_* overrides from .env files (default ./.env).
// Missing files are ignored and variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

func (c *AppConfig) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvOutputDir)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDegree)); v != "" {
		c.DegreePrefix = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		c.ServerAddr = v
	}
}

// ResolveOutputDir returns the configured output directory, or "." when unset.
func (c *AppConfig) ResolveOutputDir() string {
	if c == nil || c.OutputDir == "" {
		return "."
	}
	return c.OutputDir
}

// ResolveServerAddr returns the configured listen address or DefaultServerAddr.
func (c *AppConfig) ResolveServerAddr() string {
	if c == nil || c.ServerAddr == "" {
		return DefaultServerAddr
	}
	return c.ServerAddr
}
