package world

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

const (
	TrajectoryLifetime = 0.1 // seconds a bullet trajectory stays visible
	particleJitter     = 0.1 // per-tick velocity component range, centred on 0
	particleSize       = 0.1
)

var (
	particleColor   = color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}
	trajectoryColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ParticleBurst is one spawned group of points. The three slices always have
// the same length. Velocities are per-tick displacements.
type ParticleBurst struct {
	Positions  []vmath.Vec3
	Velocities []vmath.Vec3
	Lifetimes  []float64
	Visual     scene.Handle
}

func (b *ParticleBurst) expired() bool {
	for _, lt := range b.Lifetimes {
		if lt > 0 {
			return false
		}
	}
	return true
}

// opacity follows lifetimes[0] against a reference lifetime: the first
// point's own remaining lifetime when positive, else the first positive one,
// else 1.
func (b *ParticleBurst) opacity() float64 {
	if len(b.Lifetimes) == 0 {
		return 0
	}
	ref := 1.0
	if b.Lifetimes[0] > 0 {
		ref = b.Lifetimes[0]
	} else {
		for _, lt := range b.Lifetimes {
			if lt > 0 {
				ref = lt
				break
			}
		}
	}
	return math.Max(0, b.Lifetimes[0]/ref)
}

// Trajectory is a fading bullet line.
type Trajectory struct {
	Visual    scene.Handle
	Remaining float64
}

// EffectPool owns the transient visuals: particle bursts and trajectories.
type EffectPool struct {
	scene        Scene
	rng          *rand.Rand
	bursts       []*ParticleBurst
	trajectories []*Trajectory
}

func NewEffectPool(sc Scene, rng *rand.Rand) *EffectPool {
	return &EffectPool{scene: sc, rng: rng}
}

// SpawnParticleBurst scatters count points around origin, each axis offset
// uniform in [-spread/2, spread/2], with random per-tick drift.
func (p *EffectPool) SpawnParticleBurst(origin vmath.Vec3, count int, spread, lifetime float64) *ParticleBurst {
	if count < 0 {
		count = 0
	}
	b := &ParticleBurst{
		Positions:  make([]vmath.Vec3, count),
		Velocities: make([]vmath.Vec3, count),
		Lifetimes:  make([]float64, count),
	}
	for i := 0; i < count; i++ {
		b.Positions[i] = vmath.Vec3{
			X: origin.X + (p.rng.Float64()-0.5)*spread,
			Y: origin.Y + (p.rng.Float64()-0.5)*spread,
			Z: origin.Z + (p.rng.Float64()-0.5)*spread,
		}
		b.Lifetimes[i] = lifetime
		b.Velocities[i] = vmath.Vec3{
			X: (p.rng.Float64() - 0.5) * particleJitter,
			Y: (p.rng.Float64() - 0.5) * particleJitter,
			Z: (p.rng.Float64() - 0.5) * particleJitter,
		}
	}
	b.Visual = p.scene.Add(scene.Visual{
		Kind:      scene.KindPoints,
		Points:    b.Positions,
		PointSize: particleSize,
		Color:     particleColor,
		Opacity:   1,
		Additive:  true,
	}, scene.Transform{})
	p.bursts = append(p.bursts, b)
	return b
}

// SpawnTrajectory draws a line from start to end that fades out over
// TrajectoryLifetime.
func (p *EffectPool) SpawnTrajectory(start, end vmath.Vec3) *Trajectory {
	tr := &Trajectory{Remaining: TrajectoryLifetime}
	tr.Visual = p.scene.Add(scene.Visual{
		Kind:     scene.KindLine,
		Points:   []vmath.Vec3{start, end},
		Color:    trajectoryColor,
		Opacity:  1,
		Additive: true,
	}, scene.Transform{})
	p.trajectories = append(p.trajectories, tr)
	return tr
}

// Tick ages every effect by dt seconds and removes the expired ones.
// Particle drift is per tick, not scaled by dt.
func (p *EffectPool) Tick(dt float64) {
	for i := len(p.bursts) - 1; i >= 0; i-- {
		b := p.bursts[i]
		for j := range b.Lifetimes {
			b.Lifetimes[j] -= dt
			if b.Lifetimes[j] <= 0 {
				continue
			}
			b.Positions[j] = b.Positions[j].Add(b.Velocities[j])
		}
		p.scene.SetPoints(b.Visual, b.Positions)
		p.scene.SetOpacity(b.Visual, b.opacity())
		if b.expired() {
			p.scene.Remove(b.Visual)
			p.bursts = append(p.bursts[:i], p.bursts[i+1:]...)
		}
	}

	for i := len(p.trajectories) - 1; i >= 0; i-- {
		tr := p.trajectories[i]
		tr.Remaining -= dt
		p.scene.SetOpacity(tr.Visual, math.Max(0, tr.Remaining/TrajectoryLifetime))
		if tr.Remaining <= 0 {
			p.scene.Remove(tr.Visual)
			p.trajectories = append(p.trajectories[:i], p.trajectories[i+1:]...)
		}
	}
}

func (p *EffectPool) Bursts() []*ParticleBurst { return p.bursts }

func (p *EffectPool) Trajectories() []*Trajectory { return p.trajectories }

// Len returns the number of live effects of both kinds.
func (p *EffectPool) Len() int { return len(p.bursts) + len(p.trajectories) }
