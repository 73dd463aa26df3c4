// Package config loads and validates the imgpick configuration file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"imgpick/internal/format"
	"imgpick/internal/picker"
)

//go:embed sample_config.toml
var sampleConfig string

// Config encapsulates all configuration values for imgpick. Unset values
// fall back to environment variables and then to defaults; source_dir stays
// empty when nothing provides it and is rejected by the picker.
type Config struct {
	SourceDir string `toml:"source_dir"`
	Format    string `toml:"format"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/imgpick/config.toml")
}

// Load locates, parses, and validates a configuration file. Unknown keys in
// the file are rejected. The returned config has its source directory
// expanded and environment fallbacks applied.
func Load(path string) (*Config, string, bool, error) {
	// A .env file in the working directory may supply the IMGPICK_*
	// variables; a missing file is fine.
	_ = godotenv.Load()

	var cfg Config

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("imgpick.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.SourceDir = strings.TrimSpace(c.SourceDir)
	if c.SourceDir == "" {
		if value, ok := os.LookupEnv("IMGPICK_SOURCE_DIR"); ok {
			c.SourceDir = strings.TrimSpace(value)
		}
	}
	if c.SourceDir != "" {
		expanded, err := expandPath(c.SourceDir)
		if err != nil {
			return err
		}
		c.SourceDir = expanded
	}

	// Format names are case sensitive, so only whitespace is trimmed.
	c.Format = strings.TrimSpace(c.Format)
	if c.Format == "" {
		if value, ok := os.LookupEnv("IMGPICK_FORMAT"); ok {
			c.Format = strings.TrimSpace(value)
		}
	}

	var err error
	if c.Width, err = resolveSize("IMGPICK_WIDTH", c.Width, picker.DefaultWidth); err != nil {
		return err
	}
	if c.Height, err = resolveSize("IMGPICK_HEIGHT", c.Height, picker.DefaultHeight); err != nil {
		return err
	}
	return nil
}

// resolveSize fills an unset size from the environment, then the default.
func resolveSize(name string, current, defaultValue int) (int, error) {
	if current != 0 {
		return current, nil
	}
	if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %q", name, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// Validate ensures the configuration is usable. The source directory is not
// required here: commands that need one report its absence themselves.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := format.Parse(c.Format); err != nil {
			return fmt.Errorf("format must be one of %s: %w", formatNames(), err)
		}
	}
	if c.Width <= 0 {
		return errors.New("width must be positive")
	}
	if c.Height <= 0 {
		return errors.New("height must be positive")
	}
	return nil
}

// Picker returns the picker configuration this config describes.
func (c *Config) Picker() picker.Config {
	return picker.Config{
		SourceDir: c.SourceDir,
		Format:    c.Format,
		Width:     c.Width,
		Height:    c.Height,
	}
}

func formatNames() string {
	names := make([]string, 0, len(format.All()))
	for _, f := range format.All() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
