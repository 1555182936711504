package physics

import (
	"math"
	"testing"

	"github.com/rangeshot/rangeshot/internal/vmath"
)

const step = 1.0 / 60

func newGroundWorld() *World {
	w := NewWorld(DefaultGravity)
	w.AddBody(BodyDesc{
		Shape:       Plane(),
		Orientation: vmath.QuatFromAxisAngle(vmath.V3(1, 0, 0), -math.Pi/2),
	})
	return w
}

func TestGravityIntegration(t *testing.T) {
	w := NewWorld(DefaultGravity)
	id := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5), Position: vmath.V3(0, 10, 0)})
	w.Step(step)
	if got, want := w.Velocity(id).Y, -9.82*step; math.Abs(got-want) > 1e-12 {
		t.Fatalf("vy = %f, want %f", got, want)
	}
	if w.Position(id).Y >= 10 {
		t.Fatalf("body did not fall: y = %f", w.Position(id).Y)
	}
}

func TestSphereRestsOnGround(t *testing.T) {
	w := newGroundWorld()
	id := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5), Position: vmath.V3(3, 1, -2)})
	for i := 0; i < 240; i++ {
		w.Step(step)
	}
	p := w.Position(id)
	if math.Abs(p.Y-0.5) > 1e-6 {
		t.Fatalf("resting y = %f, want 0.5", p.Y)
	}
	if math.Abs(p.X-3) > 1e-9 || math.Abs(p.Z+2) > 1e-9 {
		t.Fatalf("sphere drifted to %+v", p)
	}
}

func TestStaticBodyIgnoresVelocityAndGravity(t *testing.T) {
	w := NewWorld(DefaultGravity)
	id := w.AddBody(BodyDesc{Shape: Box(vmath.V3(1, 1, 1)), Position: vmath.V3(0, 1, 0)})
	w.SetVelocity(id, vmath.V3(5, 5, 5))
	w.Step(step)
	if w.Position(id) != vmath.V3(0, 1, 0) || w.Velocity(id) != (vmath.Vec3{}) {
		t.Fatalf("static body moved: %+v %+v", w.Position(id), w.Velocity(id))
	}
}

func TestSpherePushedOutOfStaticBox(t *testing.T) {
	w := NewWorld(vmath.Vec3{})
	w.AddBody(BodyDesc{Shape: Box(vmath.V3(1, 1, 1)), Position: vmath.V3(0, 1, 0)})
	id := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5), Position: vmath.V3(1.2, 1, 0)})
	w.SetVelocity(id, vmath.V3(-5, 0, 0))
	w.Step(step)
	p := w.Position(id)
	if p.X < 1.5-1e-9 {
		t.Fatalf("sphere still penetrating: x = %f", p.X)
	}
	if v := w.Velocity(id); v.X < 0 {
		t.Fatalf("approach velocity not cancelled: %+v", v)
	}
}

func TestLinearDamping(t *testing.T) {
	w := NewWorld(vmath.Vec3{})
	id := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5), LinearDamping: 0.9})
	w.SetVelocity(id, vmath.V3(5, 0, 0))
	w.Step(step)
	want := 5 * math.Pow(0.1, step)
	if got := w.Velocity(id).X; math.Abs(got-want) > 1e-12 {
		t.Fatalf("vx = %f, want %f", got, want)
	}
}

func TestRemoveBody(t *testing.T) {
	w := NewWorld(DefaultGravity)
	id := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5)})
	if !w.RemoveBody(id) || w.RemoveBody(id) {
		t.Fatal("RemoveBody should succeed exactly once")
	}
	if w.Has(id) || w.Len() != 0 {
		t.Fatalf("body still present: has=%v len=%d", w.Has(id), w.Len())
	}
	again := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5)})
	if again == id {
		t.Fatal("recycled handle aliases removed body")
	}
}

func TestSpheresSeparate(t *testing.T) {
	w := NewWorld(vmath.Vec3{})
	a := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5), Position: vmath.V3(0, 0, 0)})
	b := w.AddBody(BodyDesc{Mass: 1, Shape: Sphere(0.5), Position: vmath.V3(0.6, 0, 0)})
	w.Step(step)
	if d := w.Position(a).Dist(w.Position(b)); d < 1-1e-9 {
		t.Fatalf("spheres overlap after step: dist = %f", d)
	}
}
