package render

import (
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

// Point2 is a screen-space position in pixels, origin top-left.
type Point2 struct {
	X, Y float64
}

// View is a camera frozen for one frame: world-to-camera transform plus
// the viewport it projects onto.
type View struct {
	pos    vmath.Vec3
	inv    vmath.Quat
	near   float64
	focal  float64
	width  float64
	height float64
}

func NewView(cam *scene.Camera, width, height int) View {
	return View{
		pos:    cam.Position,
		inv:    cam.Orientation().Conjugate(),
		near:   cam.Near,
		focal:  cam.FocalLength(float64(height)),
		width:  float64(width),
		height: float64(height),
	}
}

// ToCamera maps a world point into camera space (looking down -Z).
func (v View) ToCamera(p vmath.Vec3) vmath.Vec3 {
	return v.inv.Rotate(p.Sub(v.pos))
}

// Depth is the distance along the view axis of a camera-space point.
func Depth(c vmath.Vec3) float64 { return -c.Z }

// ProjectCamera maps a camera-space point to the screen. ok is false for
// points in front of the near plane.
func (v View) ProjectCamera(c vmath.Vec3) (Point2, bool) {
	d := Depth(c)
	if d < v.near {
		return Point2{}, false
	}
	return Point2{
		X: v.width/2 + c.X*v.focal/d,
		Y: v.height/2 - c.Y*v.focal/d,
	}, true
}

// Project maps a world point to the screen.
func (v View) Project(p vmath.Vec3) (Point2, float64, bool) {
	c := v.ToCamera(p)
	s, ok := v.ProjectCamera(c)
	return s, Depth(c), ok
}

// ScreenRadius is the projected size of a world length at depth d.
func (v View) ScreenRadius(r, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return r * v.focal / d
}

// ClipPolygon cuts a camera-space polygon at the near plane. The result may
// be empty.
func (v View) ClipPolygon(poly []vmath.Vec3) []vmath.Vec3 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]vmath.Vec3, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	prevIn := Depth(prev) >= v.near
	for _, cur := range poly {
		curIn := Depth(cur) >= v.near
		if curIn != prevIn {
			out = append(out, v.nearCrossing(prev, cur))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// ClipSegment cuts a camera-space segment at the near plane.
func (v View) ClipSegment(a, b vmath.Vec3) (vmath.Vec3, vmath.Vec3, bool) {
	aIn, bIn := Depth(a) >= v.near, Depth(b) >= v.near
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	case aIn:
		return a, v.nearCrossing(a, b), true
	default:
		return v.nearCrossing(a, b), b, true
	}
}

func (v View) nearCrossing(a, b vmath.Vec3) vmath.Vec3 {
	da, db := Depth(a), Depth(b)
	t := (v.near - da) / (db - da)
	return a.Add(b.Sub(a).Scale(t))
}
