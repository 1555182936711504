package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	coresys "github.com/rangeshot/rangeshot/internal/core/system"
)

// InputSystem swaps the event buffers and delivers everything queued since
// the previous tick, oldest first. Phase 0 (Input), runs while unlocked too.
type InputSystem struct {
	bus *event.Bus
	log *zap.Logger
}

func NewInputSystem(bus *event.Bus, log *zap.Logger) *InputSystem {
	return &InputSystem{bus: bus, log: log}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	if err := s.bus.DispatchAll(); err != nil {
		s.log.Error("event handler failed", zap.Error(err))
	}
}
