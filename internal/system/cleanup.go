package system

import (
	"time"

	coresys "github.com/rangeshot/rangeshot/internal/core/system"
)

// Flusher destroys objects whose removal was deferred during the tick.
type Flusher interface {
	Flush() int
}

// CleanupSystem flushes the scene's deferred removal queue at tick end.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	scene Flusher
}

func NewCleanupSystem(scene Flusher) *CleanupSystem {
	return &CleanupSystem{scene: scene}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.scene.Flush()
}
