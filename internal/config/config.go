package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the display settings for phosphor.
type Config struct {
	FPS        int
	Seed       uint64
	Theme      string
	LineHeight float64
	MinBuffer  int
	Jitter     bool
	Border     bool
	BannerFile string
	LogFile    string
}

const (
	defaultConfigPath = "~/.config/phosphor/config.toml"
	defaultFPS        = 60
	maxFPS            = 240
	defaultTheme      = "Phosphor"
	defaultLineHeight = 18.0
	defaultMinBuffer  = 120
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		FPS:        defaultFPS,
		Theme:      defaultTheme,
		LineHeight: defaultLineHeight,
		MinBuffer:  defaultMinBuffer,
		Jitter:     true,
		Border:     true,
	}
}

// Load locates and parses the phosphor config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		FPS        *int     `toml:"fps"`
		Seed       *uint64  `toml:"seed"`
		Theme      string   `toml:"theme"`
		LineHeight *float64 `toml:"line_height"`
		MinBuffer  *int     `toml:"min_buffer"`
		Jitter     *bool    `toml:"jitter"`
		Border     *bool    `toml:"border"`
		BannerFile string   `toml:"banner_file"`
		LogFile    string   `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.FPS != nil {
		cfg.FPS = *raw.FPS
	}
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if raw.LineHeight != nil {
		cfg.LineHeight = *raw.LineHeight
	}
	if raw.MinBuffer != nil {
		cfg.MinBuffer = *raw.MinBuffer
	}
	if raw.Jitter != nil {
		cfg.Jitter = *raw.Jitter
	}
	if raw.Border != nil {
		cfg.Border = *raw.Border
	}
	if banner := strings.TrimSpace(raw.BannerFile); banner != "" {
		cfg.BannerFile = mustExpand(banner)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg.Normalize(), nil
}

// Normalize replaces out-of-range values with usable ones. FPS is clamped to
// 1..240 and a non-positive FPS or line height uses the default. The buffer
// minimum never drops below 120 lines.
func (c Config) Normalize() Config {
	switch {
	case c.FPS <= 0:
		c.FPS = defaultFPS
	case c.FPS > maxFPS:
		c.FPS = maxFPS
	}
	if math.IsNaN(c.LineHeight) || math.IsInf(c.LineHeight, 0) || c.LineHeight <= 0 {
		c.LineHeight = defaultLineHeight
	}
	if c.MinBuffer < defaultMinBuffer {
		c.MinBuffer = defaultMinBuffer
	}
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = defaultTheme
	}
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
