// Package config provides configuration loading and access for the scene runner.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Sim       SimConfig            `yaml:"sim"`
	Camera    CameraConfig         `yaml:"camera"`
	Sensors   SensorsConfig        `yaml:"sensors"`
	Telemetry TelemetryConfig      `yaml:"telemetry"`
	Assets    AssetsConfig         `yaml:"assets"`
	NPCItems  map[string][]NPCItem `yaml:"npc_items"`
	Effects   map[string][]string  `yaml:"effects"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SimConfig holds frame clock parameters.
type SimConfig struct {
	DeltaFrames    float64 `yaml:"delta_frames"`     // Frames advanced per tick (1 = 60Hz lockstep)
	TicksPerSecond int     `yaml:"ticks_per_second"` // Nominal tick rate, used for sim_time in stats
	MaxTicks       int     `yaml:"max_ticks"`        // Stop after N ticks (0 = unlimited)
	Seed           uint64  `yaml:"seed"`             // Random seed (0 = nondeterministic)
}

// CameraConfig holds the scripted orbit of the tracked viewpoint.
type CameraConfig struct {
	Center       [3]float64 `yaml:"center"`
	Radius       float64    `yaml:"radius"`
	Height       float64    `yaml:"height"`
	PeriodFrames float64    `yaml:"period_frames"` // Frames per full orbit
	FovDeg       float64    `yaml:"fov_deg"`       // Full vertical field of view
	Aspect       float64    `yaml:"aspect"`
	Far          float64    `yaml:"far"`
}

// SensorsConfig holds hit-sensor broadphase parameters.
type SensorsConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Frames per stats window
	TraceEvery  int `yaml:"trace_every"`  // Frames between actor trace samples (0 = off)
	PerfWindow  int `yaml:"perf_window"`  // Ticks averaged by the perf collector
}

// AssetsConfig describes which archives exist and how their models animate.
type AssetsConfig struct {
	Archives          []string     `yaml:"archives"`
	DefaultAnimFrames float64      `yaml:"default_anim_frames"` // Length of animations missing from the table
	Models            []ModelAsset `yaml:"models"`
}

// ModelAsset is the headless description of one model archive.
type ModelAsset struct {
	Name   string      `yaml:"name"`
	Joints []string    `yaml:"joints"`
	Anims  []AnimAsset `yaml:"anims"`
}

// AnimAsset is one named animation on one channel.
type AnimAsset struct {
	Name    string  `yaml:"name"`
	Channel string  `yaml:"channel"` // bck, btk, btp, brk or bpk
	Frames  float64 `yaml:"frames"`
	Loop    bool    `yaml:"loop"`
}

// NPCItem names the goods models an NPC carries and the joints they hang from.
type NPCItem struct {
	Goods0 string `yaml:"goods0"`
	Goods1 string `yaml:"goods1"`
	Joint0 string `yaml:"joint0"`
	Joint1 string `yaml:"joint1"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SecondsPerTick float64               // DeltaFrames / 60
	ArchiveSet     map[string]bool       // Assets.Archives as a set
	ModelIndex     map[string]ModelAsset // name -> model asset
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Sim.DeltaFrames <= 0 {
		c.Sim.DeltaFrames = 1
	}
	c.Derived.SecondsPerTick = c.Sim.DeltaFrames / 60

	if c.Assets.DefaultAnimFrames <= 0 {
		c.Assets.DefaultAnimFrames = 60
	}

	c.Derived.ArchiveSet = make(map[string]bool, len(c.Assets.Archives)+len(c.Assets.Models))
	for _, name := range c.Assets.Archives {
		c.Derived.ArchiveSet[name] = true
	}

	// Every described model is an existing archive too
	c.Derived.ModelIndex = make(map[string]ModelAsset, len(c.Assets.Models))
	for _, m := range c.Assets.Models {
		c.Derived.ModelIndex[m.Name] = m
		c.Derived.ArchiveSet[m.Name] = true
	}
}

// NPCItem returns goods entry index for the named NPC.
func (c *Config) NPCItem(npc string, index int) (NPCItem, bool) {
	items := c.NPCItems[npc]
	if index < 0 || index >= len(items) {
		return NPCItem{}, false
	}
	return items[index], true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
