package world

import (
	"image/color"
	"math/rand"

	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

var targetColor = color.RGBA{R: 0xff, A: 0xff}

// TargetConfig controls the shootable population.
type TargetConfig struct {
	Count  int     // alive targets kept in the field
	Extent float64 // spawn square side; x,z uniform in [-Extent/2, Extent/2]
	Height float64 // spawn height
	Radius float64
	Mass   float64
}

func DefaultTargetConfig() TargetConfig {
	return TargetConfig{Count: 20, Extent: 80, Height: 1, Radius: 0.5, Mass: 1}
}

// Target pairs a sphere visual with its dynamic body.
type Target struct {
	Visual scene.Handle
	Body   physics.BodyID
	Alive  bool
}

// TargetRegistry tracks the active targets. Removal and respawn happen in
// the same handler call, so the population only dips for the duration of
// that call.
type TargetRegistry struct {
	physics Physics
	scene   Scene
	rng     *rand.Rand
	cfg     TargetConfig
	targets []*Target
}

func NewTargetRegistry(ph Physics, sc Scene, rng *rand.Rand, cfg TargetConfig) *TargetRegistry {
	return &TargetRegistry{
		physics: ph,
		scene:   sc,
		rng:     rng,
		cfg:     cfg,
		targets: make([]*Target, 0, cfg.Count),
	}
}

// Fill spawns targets until the configured count is reached.
func (r *TargetRegistry) Fill() {
	for len(r.targets) < r.cfg.Count {
		r.SpawnTarget()
	}
}

// SpawnTarget places a new target at a random x,z on the spawn square.
func (r *TargetRegistry) SpawnTarget() *Target {
	x := (r.rng.Float64() - 0.5) * r.cfg.Extent
	z := (r.rng.Float64() - 0.5) * r.cfg.Extent
	pos := vmath.Vec3{X: x, Y: r.cfg.Height, Z: z}

	t := &Target{Alive: true}
	t.Visual = r.scene.Add(scene.Visual{
		Kind:    scene.KindSphere,
		Radius:  r.cfg.Radius,
		Color:   targetColor,
		Opacity: 1,
	}, scene.Transform{Position: pos})
	t.Body = r.physics.AddBody(physics.BodyDesc{
		Mass:     r.cfg.Mass,
		Shape:    physics.Sphere(r.cfg.Radius),
		Position: pos,
	})
	r.targets = append(r.targets, t)
	return t
}

// RemoveTarget drops t's visual and body and erases it from the set. The
// caller is expected to spawn a replacement. Reports false if t is not
// registered.
func (r *TargetRegistry) RemoveTarget(t *Target) bool {
	for i, cur := range r.targets {
		if cur != t {
			continue
		}
		r.scene.Remove(t.Visual)
		r.physics.RemoveBody(t.Body)
		t.Alive = false
		r.targets = append(r.targets[:i], r.targets[i+1:]...)
		return true
	}
	return false
}

// SyncVisuals copies each body's position and orientation onto its visual.
func (r *TargetRegistry) SyncVisuals() {
	for _, t := range r.targets {
		r.scene.SetTransform(t.Visual, r.physics.Position(t.Body), r.physics.Orientation(t.Body))
	}
}

// AllVisuals returns the ray-test candidate set.
func (r *TargetRegistry) AllVisuals() []scene.Handle {
	out := make([]scene.Handle, len(r.targets))
	for i, t := range r.targets {
		out[i] = t.Visual
	}
	return out
}

// FindByVisual returns the first target owning h, or nil.
func (r *TargetRegistry) FindByVisual(h scene.Handle) *Target {
	for _, t := range r.targets {
		if t.Visual == h {
			return t
		}
	}
	return nil
}

func (r *TargetRegistry) Targets() []*Target { return r.targets }

func (r *TargetRegistry) Len() int { return len(r.targets) }
