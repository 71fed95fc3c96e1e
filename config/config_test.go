package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Decode.StrictMode {
		t.Error("Expected Decode.StrictMode=true")
	}

	if cfg.MMU.Enabled {
		t.Error("Expected MMU.Enabled=false")
	}
	if cfg.MMU.P0Length != 0 {
		t.Errorf("Expected MMU.P0Length=0, got %d", cfg.MMU.P0Length)
	}

	if cfg.Execution.MaxSteps != 1000000 {
		t.Errorf("Expected MaxSteps=1000000, got %d", cfg.Execution.MaxSteps)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "vaxcore" && path != "config.toml" {
			t.Errorf("Expected path in vaxcore directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.MMU.Enabled = true
	cfg.MMU.P0Base = 0x1000
	cfg.MMU.P0Length = 16
	cfg.Execution.MaxSteps = 5000000

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !loaded.MMU.Enabled {
		t.Error("Expected MMU.Enabled=true")
	}
	if loaded.MMU.P0Base != 0x1000 {
		t.Errorf("Expected P0Base=0x1000, got %#x", loaded.MMU.P0Base)
	}
	if loaded.MMU.P0Length != 16 {
		t.Errorf("Expected P0Length=16, got %d", loaded.MMU.P0Length)
	}
	if loaded.Execution.MaxSteps != 5000000 {
		t.Errorf("Expected MaxSteps=5000000, got %d", loaded.Execution.MaxSteps)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Execution.MaxSteps != 1000000 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[execution]
max_steps = "not a number"  # Invalid: should be uint64
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
