package system

import (
	"time"

	coresys "github.com/rangeshot/rangeshot/internal/core/system"
	"github.com/rangeshot/rangeshot/internal/world"
)

// SyncSystem copies post-step body state onto the camera and the target
// visuals. Phase 3 (PostUpdate).
type SyncSystem struct {
	player  *world.PlayerController
	targets *world.TargetRegistry
}

func NewSyncSystem(player *world.PlayerController, targets *world.TargetRegistry) *SyncSystem {
	return &SyncSystem{player: player, targets: targets}
}

func (s *SyncSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *SyncSystem) Update(_ time.Duration) {
	s.player.SyncCamera()
	s.targets.SyncVisuals()
}
