package system

import (
	"time"

	coresys "github.com/rangeshot/rangeshot/internal/core/system"
	"github.com/rangeshot/rangeshot/internal/world"
)

// EffectStep is the fixed age applied to effects each tick.
const EffectStep = 0.016

// EffectsSystem ages and culls particle bursts and trajectories.
// Phase 4 (Effects).
type EffectsSystem struct {
	effects *world.EffectPool
}

func NewEffectsSystem(effects *world.EffectPool) *EffectsSystem {
	return &EffectsSystem{effects: effects}
}

func (s *EffectsSystem) Phase() coresys.Phase { return coresys.PhaseEffects }

func (s *EffectsSystem) Update(_ time.Duration) {
	s.effects.Tick(EffectStep)
}
