package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain the event queue
	PhasePreUpdate               // 1: movement intent → body velocity
	PhaseUpdate                  // 2: physics step
	PhasePostUpdate              // 3: camera + target readback
	PhaseEffects                 // 4: age and cull particles/trajectories
	PhaseCleanup                 // 5: destroy queued scene objects
)

// Gated reports whether systems in this phase only run while the game is
// active. Input and cleanup always run so lock events and removals are never
// starved.
func (p Phase) Gated() bool {
	return p > PhaseInput && p < PhaseCleanup
}

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post-update"
	case PhaseEffects:
		return "effects"
	case PhaseCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
