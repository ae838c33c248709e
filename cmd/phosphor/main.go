package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/five82/phosphor/internal/app"
	"github.com/five82/phosphor/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	fps := flag.Int("fps", 0, "frames per second (optional, defaults to 60)")
	seed := flag.Uint64("seed", 0, "random seed; 0 picks a new one each run")
	theme := flag.String("theme", "", "color theme: "+strings.Join(ui.ThemeNames(), ", "))
	plain := flag.Bool("plain", false, "print finished lines instead of drawing the screen")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		FPS:        *fps,
		Seed:       *seed,
		Theme:      *theme,
		Plain:      *plain,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "phosphor: %v\n", err)
		return 1
	}
	return 0
}
