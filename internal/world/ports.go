package world

import (
	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

//go:generate go tool mockgen -destination=./mocks/shell_mock.go -package=mocks . Shell

// Physics is the rigid-body world driven by the game core. The world owns
// all body memory; the core only keeps BodyIDs and must remove a body before
// forgetting its handle.
type Physics interface {
	AddBody(desc physics.BodyDesc) physics.BodyID
	RemoveBody(id physics.BodyID) bool
	Velocity(id physics.BodyID) vmath.Vec3
	SetVelocity(id physics.BodyID, v vmath.Vec3)
	Position(id physics.BodyID) vmath.Vec3
	Orientation(id physics.BodyID) vmath.Quat
	Step(dt float64)
}

// Scene is the render collaborator's object store.
type Scene interface {
	Add(v scene.Visual, tf scene.Transform) scene.Handle
	Remove(h scene.Handle)
	Transform(h scene.Handle) (scene.Transform, bool)
	Visual(h scene.Handle) (scene.Visual, bool)
	SetTransform(h scene.Handle, pos vmath.Vec3, rot vmath.Quat)
	SetOpacity(h scene.Handle, a float64)
	SetPoints(h scene.Handle, pts []vmath.Vec3)
}

// Shell is the UI wrapped around the game view: the start menu, the
// crosshair and the "press Esc to exit" hint.
type Shell interface {
	SetMenuVisible(visible bool)
	SetCrosshairVisible(visible bool)
	SetExitHintVisible(visible bool)
}
