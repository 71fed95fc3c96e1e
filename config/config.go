package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the emulator core's configuration
type Config struct {
	// Decode settings
	Decode struct {
		StrictMode bool `toml:"strict_mode"` // loaded and saved only; no package reads it, and decode.Decode returns ErrOutOfBytes for a truncated two-byte opcode regardless
	} `toml:"decode"`

	// MMU settings
	MMU struct {
		Enabled    bool   `toml:"enabled"`
		P0Base     uint32 `toml:"p0_base"`
		P0Length   uint32 `toml:"p0_length"` // 512-byte pages
		P1Base     uint32 `toml:"p1_base"`
		P1Length   uint32 `toml:"p1_length"`
		SysBase    uint32 `toml:"sys_base"`
		SysLength  uint32 `toml:"sys_length"`
	} `toml:"mmu"`

	// Execution settings
	Execution struct {
		MaxSteps uint64 `toml:"max_steps"`
	} `toml:"execution"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Decode defaults
	cfg.Decode.StrictMode = true

	// MMU defaults: disabled, all regions empty
	cfg.MMU.Enabled = false
	cfg.MMU.P0Base = 0
	cfg.MMU.P0Length = 0
	cfg.MMU.P1Base = 0
	cfg.MMU.P1Length = 0
	cfg.MMU.SysBase = 0
	cfg.MMU.SysLength = 0

	// Execution defaults
	cfg.Execution.MaxSteps = 1000000

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\vaxcore\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "vaxcore")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/vaxcore/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "vaxcore")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
