package system

import (
	"time"

	coresys "github.com/rangeshot/rangeshot/internal/core/system"
	"github.com/rangeshot/rangeshot/internal/world"
)

// PhysicsStep is the fixed integration step, independent of frame time.
const PhysicsStep = 1.0 / world.StepsPerSecond

// PhysicsSystem advances the physics world by one fixed step and counts the
// round's simulated ticks. Phase 2 (Update).
type PhysicsSystem struct {
	physics world.Physics
	stats   *world.RoundStats
}

func NewPhysicsSystem(physics world.Physics, stats *world.RoundStats) *PhysicsSystem {
	return &PhysicsSystem{physics: physics, stats: stats}
}

func (s *PhysicsSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *PhysicsSystem) Update(_ time.Duration) {
	s.physics.Step(PhysicsStep)
	s.stats.Ticks++
}
