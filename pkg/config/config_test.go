package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolateHome(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvDegree, "")
	t.Setenv(EnvAddr, "")
	return tempDir
}

func TestConfigLoadSave(t *testing.T) {
	tempDir := isolateHome(t)

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.OutputDir = "/tmp/od"
	cfg.DegreePrefix = "B.E."
	cfg.SignatureRoles = []string{"Coordinator", "Principal"}
	cfg.DateLayout = "02-01-2006"
	cfg.AccentColor = "205"

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".odgen.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := isolateHome(t)

	configPath := filepath.Join(tempDir, ".odgen.json")
	err := os.WriteFile(configPath, []byte("invalid json { content"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	isolateHome(t)

	if err := Save(&AppConfig{OutputDir: "saved", DegreePrefix: "B.Tech"}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv(EnvOutputDir, "/srv/reports")
	t.Setenv(EnvAddr, "127.0.0.1:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.OutputDir != "/srv/reports" {
		t.Errorf("expected env to override output dir, got %q", cfg.OutputDir)
	}
	if cfg.DegreePrefix != "B.Tech" {
		t.Errorf("expected saved degree prefix to survive, got %q", cfg.DegreePrefix)
	}
	if cfg.ResolveServerAddr() != "127.0.0.1:9000" {
		t.Errorf("expected env server address, got %q", cfg.ResolveServerAddr())
	}
}

func TestConfigResolveDefaults(t *testing.T) {
	var cfg *AppConfig
	if got := cfg.ResolveOutputDir(); got != "." {
		t.Errorf("expected nil config to resolve output dir to '.', got %q", got)
	}
	if got := (&AppConfig{}).ResolveServerAddr(); got != DefaultServerAddr {
		t.Errorf("expected default server address, got %q", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolateHome(t)
	// Unset after t.Setenv so the original value is restored on cleanup
	os.Unsetenv(EnvDegree)
	t.Setenv(EnvAddr, ":7000")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvDegree + "=M.Tech\n" + EnvAddr + "=:9999\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	if err := LoadDotEnv(envFile, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("unexpected error loading env file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DegreePrefix != "M.Tech" {
		t.Errorf("expected degree from .env, got %q", cfg.DegreePrefix)
	}
	if cfg.ServerAddr != ":7000" {
		t.Errorf("expected existing environment to win over .env, got %q", cfg.ServerAddr)
	}
}
