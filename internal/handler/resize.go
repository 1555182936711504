package handler

import "github.com/rangeshot/rangeshot/internal/core/event"

// HandleResize updates the camera aspect and the renderer output size.
func HandleResize(ev event.Resize, deps *Deps) {
	if ev.Width <= 0 || ev.Height <= 0 {
		return
	}
	deps.Session.Camera.SetViewport(ev.Width, ev.Height)
	if deps.Viewport != nil {
		deps.Viewport.SetSize(ev.Width, ev.Height)
	}
}
