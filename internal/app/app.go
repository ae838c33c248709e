package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/five82/phosphor/internal/banner"
	"github.com/five82/phosphor/internal/config"
	"github.com/five82/phosphor/internal/entropy"
	"github.com/five82/phosphor/internal/textgen"
	"github.com/five82/phosphor/internal/ui"
)

// Options configure the phosphor application. Zero values keep the setting
// from the config file.
type Options struct {
	ConfigPath string
	FPS        int
	Seed       uint64
	Theme      string
	Plain      bool
}

// Run shows the animation until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	plain := opts.Plain || !isTerminal(os.Stdout)
	closeLog, err := setupLogging(cfg.LogFile, plain)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := entropy.ResolveSeed(cfg.Seed)
	src := entropy.New(seed)
	log.Printf("starting: theme=%s fps=%d seed=%d plain=%t", cfg.Theme, cfg.FPS, seed, plain)

	uiOpts := ui.Options{
		Context:       ctx,
		Source:        src,
		Lines:         textgen.New(src),
		Banner:        banner.Load(cfg.BannerFile),
		FrameInterval: frameInterval(cfg.FPS),
		LineHeight:    cfg.LineHeight,
		MinCapacity:   cfg.MinBuffer,
		Jitter:        cfg.Jitter,
		ThemeName:     cfg.Theme,
		Border:        cfg.Border,
	}
	if plain {
		return ui.RunPlain(ctx, uiOpts, os.Stdout)
	}
	return ui.Run(uiOpts)
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.FPS > 0 {
		cfg.FPS = opts.FPS
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
	return cfg.Normalize()
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// setupLogging keeps log output off the alternate screen. The TUI logs to
// path, or nowhere when path is empty; plain mode keeps stderr.
func setupLogging(path string, plain bool) (func(), error) {
	if plain && path == "" {
		return func() {}, nil
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "phosphor")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
