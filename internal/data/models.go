package data

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rangeshot/rangeshot/internal/vmath"
)

// RandomExtent is the side of the square "random" placements land in.
const RandomExtent = 80

// Placement is either a fixed point or "random" (x,z on the field, y 0).
type Placement struct {
	Random bool
	At     vmath.Vec3
}

// UnmarshalYAML accepts the string "random" or a three-element sequence.
func (p *Placement) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if s != "random" {
			return fmt.Errorf("line %d: unknown placement %q", node.Line, s)
		}
		p.Random = true
		return nil
	case yaml.SequenceNode:
		var xyz []float64
		if err := node.Decode(&xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("line %d: position needs 3 components, got %d", node.Line, len(xyz))
		}
		p.At = vmath.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
		return nil
	default:
		return fmt.Errorf("line %d: position must be \"random\" or [x, y, z]", node.Line)
	}
}

// Resolve returns the world position, drawing x then z from rng for random
// placements.
func (p Placement) Resolve(rng *rand.Rand) vmath.Vec3 {
	if !p.Random {
		return p.At
	}
	x := (rng.Float64() - 0.5) * RandomExtent
	z := (rng.Float64() - 0.5) * RandomExtent
	return vmath.Vec3{X: x, Z: z}
}

// ModelEntry is one row of model_list.yaml. A missing position is the
// origin; a missing or zero scale is 1.
type ModelEntry struct {
	Path     string    `yaml:"path"`
	Position Placement `yaml:"position"`
	Scale    float64   `yaml:"scale"`
}

func (e ModelEntry) scale() float64 {
	if e.Scale == 0 {
		return 1
	}
	return e.Scale
}

// LoadModelList loads model_list.yaml.
func LoadModelList(path string) ([]ModelEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model list: %w", err)
	}
	var entries []ModelEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse model list: %w", err)
	}
	for i, e := range entries {
		if e.Path == "" {
			return nil, fmt.Errorf("model list entry %d: missing path", i)
		}
	}
	return entries, nil
}
