package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo_scene.yaml
var demoSceneYAML []byte

// NumArgs is the number of positional arguments on a placement record.
const NumArgs = 8

// Scene is a placement file: the rails of a level and the objects placed in it.
type Scene struct {
	Rails   []RailSpec   `yaml:"rails"`
	Objects []ObjectSpec `yaml:"objects"`
}

// RailSpec is one authored path.
type RailSpec struct {
	Name   string       `yaml:"name"`
	Loop   bool         `yaml:"loop"`
	Points [][3]float64 `yaml:"points"`
}

// ObjectSpec is one placed object.
type ObjectSpec struct {
	Name        string     `yaml:"name"`
	Model       string     `yaml:"model,omitempty"` // Overrides the model archive name
	Translation [3]float64 `yaml:"translation"`
	Rotation    [3]float64 `yaml:"rotation"` // Degrees
	Scale       [3]float64 `yaml:"scale"`    // Zero value means unit scale
	Args        []float64  `yaml:"args,omitempty"`
	Rail        string     `yaml:"rail,omitempty"`
	SwAppear    *int       `yaml:"sw_appear,omitempty"`
	SwA         *int       `yaml:"sw_a,omitempty"`
	SwB         *int       `yaml:"sw_b,omitempty"`

	// MoveCondition gates the map-parts functions: 0 unconditional, 1 wait for the player.
	MoveCondition int `yaml:"move_condition,omitempty"`
}

// LoadScene reads a placement file. An empty path loads the embedded demo scene.
func LoadScene(path string) (*Scene, error) {
	data := demoSceneYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading placement file: %w", err)
		}
		data = b
	}
	return ParseScene(data)
}

// ParseScene decodes and validates placement YAML.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing placement file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("placement file: %w", err)
	}
	return &s, nil
}

// Validate checks rail references and argument counts.
func (s *Scene) Validate() error {
	rails := make(map[string]bool, len(s.Rails))
	for i, r := range s.Rails {
		if r.Name == "" {
			return fmt.Errorf("rail %d has no name", i)
		}
		if rails[r.Name] {
			return fmt.Errorf("duplicate rail %q", r.Name)
		}
		if len(r.Points) < 2 {
			return fmt.Errorf("rail %q needs at least 2 points", r.Name)
		}
		rails[r.Name] = true
	}
	for i, o := range s.Objects {
		if o.Name == "" {
			return fmt.Errorf("object %d has no name", i)
		}
		if len(o.Args) > NumArgs {
			return fmt.Errorf("object %d (%s) has %d args, max %d", i, o.Name, len(o.Args), NumArgs)
		}
		if o.Rail != "" && !rails[o.Rail] {
			return fmt.Errorf("object %d (%s) references unknown rail %q", i, o.Name, o.Rail)
		}
	}
	return nil
}
