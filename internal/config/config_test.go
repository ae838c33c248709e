package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want %+v", cfg, Default())
	}
	if cfg.FPS != 60 || cfg.Theme != "Phosphor" || cfg.LineHeight != 18 || cfg.MinBuffer != 120 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Jitter || !cfg.Border {
		t.Fatalf("Jitter/Border = %v/%v, want true/true", cfg.Jitter, cfg.Border)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "phosphor")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`theme = "Ice"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "Ice" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Ice")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
fps = 30
seed = 42
theme = "  Amber  "
line_height = 20.5
min_buffer = 300
jitter = false
border = false
banner_file = "  ~/banner.txt  "
log_file = "~/logs/phosphor.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FPS != 30 {
		t.Fatalf("FPS = %d, want 30", cfg.FPS)
	}
	if cfg.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Theme != "Amber" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Amber")
	}
	if cfg.LineHeight != 20.5 {
		t.Fatalf("LineHeight = %v, want 20.5", cfg.LineHeight)
	}
	if cfg.MinBuffer != 300 {
		t.Fatalf("MinBuffer = %d, want 300", cfg.MinBuffer)
	}
	if cfg.Jitter || cfg.Border {
		t.Fatalf("Jitter/Border = %v/%v, want false/false", cfg.Jitter, cfg.Border)
	}
	if cfg.BannerFile != filepath.Join(home, "banner.txt") {
		t.Fatalf("BannerFile = %q, want it under HOME %q", cfg.BannerFile, home)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeConfig(t, `
fps = 0
theme = "   "
line_height = -3
min_buffer = 40
banner_file = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.FPS != defaultFPS {
		t.Fatalf("FPS = %d, want %d", cfg.FPS, defaultFPS)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.LineHeight != defaultLineHeight {
		t.Fatalf("LineHeight = %v, want %v", cfg.LineHeight, defaultLineHeight)
	}
	if cfg.MinBuffer != defaultMinBuffer {
		t.Fatalf("MinBuffer = %d, want %d", cfg.MinBuffer, defaultMinBuffer)
	}
	if cfg.BannerFile != "" {
		t.Fatalf("BannerFile = %q, want empty", cfg.BannerFile)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `fps = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "fps clamped high",
			in:   Config{FPS: 1000, Theme: "Ice", LineHeight: 18, MinBuffer: 120},
			want: Config{FPS: 240, Theme: "Ice", LineHeight: 18, MinBuffer: 120},
		},
		{
			name: "fps minimum kept",
			in:   Config{FPS: 1, Theme: "Ice", LineHeight: 18, MinBuffer: 120},
			want: Config{FPS: 1, Theme: "Ice", LineHeight: 18, MinBuffer: 120},
		},
		{
			name: "nan line height",
			in:   Config{FPS: 60, Theme: "Ice", LineHeight: math.NaN(), MinBuffer: 200},
			want: Config{FPS: 60, Theme: "Ice", LineHeight: 18, MinBuffer: 200},
		},
		{
			name: "min buffer raised to floor",
			in:   Config{FPS: 60, Theme: "Ice", LineHeight: 18, MinBuffer: 10},
			want: Config{FPS: 60, Theme: "Ice", LineHeight: 18, MinBuffer: 120},
		},
		{
			name: "zero value",
			in:   Config{},
			want: Config{FPS: 60, Theme: "Phosphor", LineHeight: 18, MinBuffer: 120},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Fatalf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
