package system

import (
	"time"

	coresys "github.com/rangeshot/rangeshot/internal/core/system"
	"github.com/rangeshot/rangeshot/internal/world"
)

// KeySource reports which movement keys are currently held.
type KeySource interface {
	Keys() world.KeyState
}

// MovementSystem writes the player's movement intent to its body.
// Phase 1 (PreUpdate).
type MovementSystem struct {
	player *world.PlayerController
	keys   KeySource
}

func NewMovementSystem(player *world.PlayerController, keys KeySource) *MovementSystem {
	return &MovementSystem{player: player, keys: keys}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *MovementSystem) Update(_ time.Duration) {
	s.player.ApplyMovement(s.keys.Keys())
}
