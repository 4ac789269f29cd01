package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	placementPath := flag.String("placement", "", "Path to a placement file (empty = embedded demo scene)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = use config, unlimited if unset)")
	snapshot := flag.Bool("snapshot", false, "Write an actor snapshot to the output directory on exit")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("bad log level", "level", *logLevel, "error", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}
	limit := cfg.Sim.MaxTicks
	if *maxTicks > 0 {
		limit = *maxTicks
	}

	g, err := game.NewGameWithOptions(game.Options{
		Config:        cfg,
		PlacementPath: *placementPath,
		Seed:          cfg.Sim.Seed,
		LogStats:      *logStats,
		OutputDir:     *outputDir,
	})
	if err != nil {
		slog.Error("failed to build scene", "placement", *placementPath, "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	scene := "demo"
	if *placementPath != "" {
		scene = strings.TrimSuffix(filepath.Base(*placementPath), filepath.Ext(*placementPath))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting simulation",
		"scene", scene,
		"seed", cfg.Sim.Seed,
		"max_ticks", limit,
		"delta_frames", cfg.Sim.DeltaFrames,
	)

	for ctx.Err() == nil {
		g.Update()
		if limit > 0 && int(g.Tick()) >= limit {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}
	if ctx.Err() != nil {
		slog.Info("interrupted", "tick", g.Tick())
	}

	if *snapshot {
		g.SaveSnapshot(scene)
	}
}
