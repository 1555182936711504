package physics

import (
	"math"

	"github.com/rangeshot/rangeshot/internal/core/ecs"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

// DefaultGravity is the world gravity used by the game.
var DefaultGravity = vmath.Vec3{Y: -9.82}

// World is a small rigid-body world: semi-implicit Euler integration with
// gravity and linear damping, then one pass of contact resolution for
// dynamic spheres against planes, static boxes and other spheres.
// Orientation is carried but not integrated. Single-goroutine use only.
type World struct {
	pool    *ecs.EntityPool
	bodies  *ecs.Store[body]
	gravity vmath.Vec3
	scratch []*body
}

func NewWorld(gravity vmath.Vec3) *World {
	return &World{
		pool:    ecs.NewEntityPool(),
		bodies:  ecs.NewStore[body](),
		gravity: gravity,
	}
}

func (w *World) AddBody(desc BodyDesc) BodyID {
	orient := desc.Orientation
	if orient == (vmath.Quat{}) {
		orient = vmath.QuatIdentity()
	}
	b := &body{
		shape:       desc.Shape,
		damping:     desc.LinearDamping,
		position:    desc.Position,
		orientation: orient,
	}
	if desc.Mass > 0 {
		b.invMass = 1 / desc.Mass
	}
	id := w.pool.Create()
	w.bodies.Set(id, b)
	return id
}

// RemoveBody drops the body; the handle becomes invalid. Reports false for
// unknown or already removed handles.
func (w *World) RemoveBody(id BodyID) bool {
	if !w.pool.Destroy(id) {
		return false
	}
	w.bodies.Remove(id)
	return true
}

func (w *World) Has(id BodyID) bool { return w.bodies.Has(id) }

func (w *World) Len() int { return w.bodies.Len() }

func (w *World) Velocity(id BodyID) vmath.Vec3 {
	if b, ok := w.bodies.Get(id); ok {
		return b.velocity
	}
	return vmath.Vec3{}
}

func (w *World) SetVelocity(id BodyID, v vmath.Vec3) {
	if b, ok := w.bodies.Get(id); ok && !b.static() {
		b.velocity = v
	}
}

func (w *World) Position(id BodyID) vmath.Vec3 {
	if b, ok := w.bodies.Get(id); ok {
		return b.position
	}
	return vmath.Vec3{}
}

func (w *World) SetPosition(id BodyID, p vmath.Vec3) {
	if b, ok := w.bodies.Get(id); ok {
		b.position = p
	}
}

func (w *World) Orientation(id BodyID) vmath.Quat {
	if b, ok := w.bodies.Get(id); ok {
		return b.orientation
	}
	return vmath.QuatIdentity()
}

func (w *World) SetOrientation(id BodyID, q vmath.Quat) {
	if b, ok := w.bodies.Get(id); ok {
		b.orientation = q
	}
}

// Step advances every body by dt seconds.
func (w *World) Step(dt float64) {
	w.scratch = w.scratch[:0]
	w.bodies.Each(func(_ ecs.EntityID, b *body) {
		w.scratch = append(w.scratch, b)
	})

	for _, b := range w.scratch {
		if b.static() {
			continue
		}
		b.velocity = b.velocity.Add(w.gravity.Scale(dt))
		if b.damping > 0 {
			b.velocity = b.velocity.Scale(math.Pow(1-b.damping, dt))
		}
		b.position = b.position.Add(b.velocity.Scale(dt))
	}

	for i, a := range w.scratch {
		if a.static() || a.shape.Kind != ShapeSphere {
			continue
		}
		for j, other := range w.scratch {
			if i == j {
				continue
			}
			switch {
			case other.shape.Kind == ShapePlane:
				resolveSpherePlane(a, other)
			case other.shape.Kind == ShapeBox && other.static():
				resolveSphereBox(a, other)
			case other.shape.Kind == ShapeSphere && j > i:
				resolveSphereSphere(a, other)
			}
		}
	}
}
