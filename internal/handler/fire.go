package handler

import "github.com/rangeshot/rangeshot/internal/core/event"

// HandleFire resolves one primary-fire press. Ignored while unlocked.
func HandleFire(deps *Deps) {
	deps.Session.Shooter.Fire()
}

// HandleLook turns the camera. Mouse motion outside a round is ignored.
func HandleLook(ev event.Look, deps *Deps) {
	if !deps.Session.Active() {
		return
	}
	deps.Session.Player.Look(ev.DX, ev.DY)
}
