package handler

import (
	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
)

// HandleModelLoaded inserts a finished model as a static obstacle. Runs in
// the input phase, so the physics world is never mutated mid-step.
func HandleModelLoaded(ev event.ModelLoaded, deps *Deps) {
	ob := deps.Session.Obstacles.Add(ev.Model)
	deps.Log.Debug("obstacle placed",
		zap.String("model", ob.Model),
		zap.Float64("x", ev.Model.Position.X),
		zap.Float64("z", ev.Model.Position.Z))
}
