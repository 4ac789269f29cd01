// Archive list tool - builds a scene and prints every archive it requests.
//
// Usage: go run ./cmd/archives [-placement scene.yaml] [-missing]
package main

import (
	"flag"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/mapactors/config"
	"github.com/pthm-cable/mapactors/game"
)

// report is the YAML document written to stdout.
type report struct {
	Placement string   `yaml:"placement"`
	Actors    int      `yaml:"actors"`
	Requested []string `yaml:"requested"`
	Missing   []string `yaml:"missing,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	placementPath := flag.String("placement", "", "Path to a placement file (empty = embedded demo scene)")
	missingOnly := flag.Bool("missing", false, "Only list archives that do not exist; exit 1 if any")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	g, err := game.NewGameWithOptions(game.Options{Config: config.Cfg(), PlacementPath: *placementPath})
	if err != nil {
		slog.Error("failed to build scene", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	r := report{
		Placement: *placementPath,
		Actors:    len(g.Actors()),
		Requested: g.Archives().Requested(),
		Missing:   g.Archives().Missing(),
	}
	if r.Placement == "" {
		r.Placement = "demo"
	}
	if *missingOnly {
		r.Requested = nil
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		slog.Error("failed to write report", "error", err)
		os.Exit(1)
	}
	if err := enc.Close(); err != nil {
		slog.Error("failed to flush report", "error", err)
		os.Exit(1)
	}

	if *missingOnly && len(r.Missing) > 0 {
		os.Exit(1)
	}
}
