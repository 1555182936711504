package physics

import (
	"github.com/rangeshot/rangeshot/internal/core/ecs"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

// BodyID is an opaque handle to a body owned by a World.
type BodyID = ecs.EntityID

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapePlane // infinite plane through the body position, normal = local +Z
)

// Shape is a collider. Only the fields relevant to Kind are read.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents vmath.Vec3
}

func Sphere(radius float64) Shape { return Shape{Kind: ShapeSphere, Radius: radius} }

func Box(halfExtents vmath.Vec3) Shape { return Shape{Kind: ShapeBox, HalfExtents: halfExtents} }

func Plane() Shape { return Shape{Kind: ShapePlane} }

// BodyDesc describes a body to add. Mass 0 makes the body static.
type BodyDesc struct {
	Mass          float64
	Shape         Shape
	Position      vmath.Vec3
	Orientation   vmath.Quat // zero value means identity
	LinearDamping float64    // fraction of velocity lost per second, 0..1
}

type body struct {
	shape       Shape
	invMass     float64
	damping     float64
	position    vmath.Vec3
	orientation vmath.Quat
	velocity    vmath.Vec3
}

func (b *body) static() bool { return b.invMass == 0 }

// normal returns the world-space normal of a plane body.
func (b *body) normal() vmath.Vec3 {
	return b.orientation.Rotate(vmath.Vec3{Z: 1})
}
