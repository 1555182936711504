package world

import (
	"github.com/rangeshot/rangeshot/internal/vmath"
	"go.uber.org/zap"
)

const (
	MaxShotRange = 100.0

	muzzleCount    = 10
	muzzleSpread   = 0.2
	muzzleLifetime = 0.2

	impactCount    = 20
	impactSpread   = 0.5
	impactLifetime = 0.5
)

// ShotResult describes one resolved fire action.
type ShotResult struct {
	Muzzle vmath.Vec3
	End    vmath.Vec3
	Hit    bool
	Target *Target // removed target, nil on a miss
}

// Shooter resolves fire actions as instant hit-scan rays from the camera.
type Shooter struct {
	player  *PlayerController
	targets *TargetRegistry
	effects *EffectPool
	scene   Scene
	stats   *RoundStats
	log     *zap.Logger
}

func NewShooter(player *PlayerController, targets *TargetRegistry, effects *EffectPool, sc Scene, stats *RoundStats, log *zap.Logger) *Shooter {
	return &Shooter{
		player:  player,
		targets: targets,
		effects: effects,
		scene:   sc,
		stats:   stats,
		log:     log,
	}
}

// Fire shoots once. It does nothing and reports false while the game is not
// active.
func (s *Shooter) Fire() (ShotResult, bool) {
	if !s.player.Active() {
		return ShotResult{}, false
	}
	s.stats.Shots++

	muzzle := s.player.MuzzleTip()
	s.effects.SpawnParticleBurst(muzzle, muzzleCount, muzzleSpread, muzzleLifetime)

	cam := s.player.Camera()
	forward := cam.Forward()
	res := ShotResult{Muzzle: muzzle}

	hits := Raycast(s.scene, Ray{Origin: cam.Position, Dir: forward}, s.targets.AllVisuals())
	if len(hits) > 0 {
		nearest := hits[0]
		res.End = nearest.Point
		if t := s.targets.FindByVisual(nearest.Visual); t != nil {
			s.effects.SpawnParticleBurst(nearest.Point, impactCount, impactSpread, impactLifetime)
			s.targets.RemoveTarget(t)
			s.targets.SpawnTarget()
			res.Hit = true
			res.Target = t
			s.stats.Hits++
			s.log.Debug("target hit",
				zap.Float64("distance", nearest.Distance),
				zap.Int("hits", s.stats.Hits))
		}
	} else {
		res.End = muzzle.Add(forward.Scale(MaxShotRange))
	}

	s.effects.SpawnTrajectory(muzzle, res.End)
	return res, true
}
