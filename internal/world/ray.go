package world

import (
	"math"
	"sort"

	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

// Ray is a half-line. Dir is expected to be unit length.
type Ray struct {
	Origin vmath.Vec3
	Dir    vmath.Vec3
}

func (r Ray) At(t float64) vmath.Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// Hit is one ray/surface intersection.
type Hit struct {
	Visual   scene.Handle
	Distance float64
	Point    vmath.Vec3
}

// IntersectSphere returns the distance to the front surface of a sphere.
// Spheres that contain the origin are not hit, since only outward-facing
// surfaces are tested.
func IntersectSphere(r Ray, center vmath.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	c := oc.LenSq() - radius*radius
	if c <= 0 {
		return 0, false
	}
	b := oc.Dot(r.Dir)
	if b > 0 {
		return 0, false // pointing away
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}

// Raycast tests r against the sphere visuals among candidates and returns
// the hits nearest first. Non-sphere and stale handles are skipped.
func Raycast(sc Scene, r Ray, candidates []scene.Handle) []Hit {
	var hits []Hit
	for _, h := range candidates {
		v, ok := sc.Visual(h)
		if !ok || v.Kind != scene.KindSphere {
			continue
		}
		tf, ok := sc.Transform(h)
		if !ok {
			continue
		}
		if t, ok := IntersectSphere(r, tf.Position, v.Radius); ok {
			hits = append(hits, Hit{Visual: h, Distance: t, Point: r.At(t)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
