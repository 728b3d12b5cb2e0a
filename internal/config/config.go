// Package config loads render settings from a JSON file and CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths. Relative paths are resolved against BaseDir.
	BaseDir    string `json:"base_dir"`
	ScenesPath string `json:"scenes"`
	OutputDir  string `json:"output_dir"`
	TextureDir string `json:"texture_dir"`

	// Render settings
	Size        int `json:"size"` // longest side; 0 keeps each scene's size
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values, except BaseDir which
// defaults to the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ScenesPath  string
	OutputDir   string
	TextureDir  string
	Size        int
	Supersample int
	Workers     int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty. Flag paths are used as
// given; file paths are joined with BaseDir.
func (c *Config) Resolve(flags Flags) {
	c.ScenesPath = c.abs(c.ScenesPath)
	c.OutputDir = c.abs(c.OutputDir)
	c.TextureDir = c.abs(c.TextureDir)

	// CLI flags override config file
	if flags.ScenesPath != "" {
		c.ScenesPath = flags.ScenesPath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.ScenesPath == "" {
		c.ScenesPath = c.abs("scenes")
	}
	if c.OutputDir == "" {
		c.OutputDir = c.abs("renders")
	}
	if c.TextureDir == "" {
		if dir := c.abs("textures"); isDir(dir) {
			c.TextureDir = dir
		}
	}

	// Defaults for render settings
	if c.Size < 0 {
		c.Size = 0
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

func (c *Config) abs(path string) string {
	if path == "" || filepath.IsAbs(path) || c.BaseDir == "" {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
