package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	coresys "github.com/rangeshot/rangeshot/internal/core/system"
	"github.com/rangeshot/rangeshot/internal/world"
)

// FrameTime is the nominal host frame; systems use fixed steps regardless.
const FrameTime = time.Second / world.StepsPerSecond

// Loop is the per-frame orchestrator: input always, simulation only while
// the session is active, cleanup always. Rendering is the host's job and
// happens every frame regardless.
type Loop struct {
	runner  *coresys.Runner
	session *world.Session
}

func NewLoop(session *world.Session, bus *event.Bus, keys KeySource, scene Flusher, log *zap.Logger) *Loop {
	r := coresys.NewRunner()
	r.Register(NewInputSystem(bus, log))
	r.Register(NewMovementSystem(session.Player, keys))
	r.Register(NewPhysicsSystem(session.Physics, &session.Stats))
	r.Register(NewSyncSystem(session.Player, session.Targets))
	r.Register(NewEffectsSystem(session.Effects))
	r.Register(NewCleanupSystem(scene))
	return &Loop{runner: r, session: session}
}

// Tick runs one frame.
func (l *Loop) Tick() {
	l.runner.Tick(FrameTime, l.session.Active)
}
