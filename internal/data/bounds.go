package data

import (
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/rangeshot/rangeshot/internal/vmath"
)

var errNoPositions = errors.New("no POSITION accessor with bounds")

// ModelBounds returns the axis-aligned bounds of every mesh position in a
// .glb or .gltf file, read from the accessors' min/max. Node transforms are
// not applied.
func ModelBounds(path string) (lo, hi vmath.Vec3, err error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return lo, hi, fmt.Errorf("open %s: %w", path, err)
	}

	lo = vmath.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = vmath.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	found := false
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			idx, ok := prim.Attributes["POSITION"]
			if !ok || int(idx) >= len(doc.Accessors) {
				continue
			}
			acc := doc.Accessors[idx]
			if len(acc.Min) < 3 || len(acc.Max) < 3 {
				continue
			}
			lo = vmath.Vec3{
				X: math.Min(lo.X, float64(acc.Min[0])),
				Y: math.Min(lo.Y, float64(acc.Min[1])),
				Z: math.Min(lo.Z, float64(acc.Min[2])),
			}
			hi = vmath.Vec3{
				X: math.Max(hi.X, float64(acc.Max[0])),
				Y: math.Max(hi.Y, float64(acc.Max[1])),
				Z: math.Max(hi.Z, float64(acc.Max[2])),
			}
			found = true
		}
	}
	if !found {
		return vmath.Vec3{}, vmath.Vec3{}, fmt.Errorf("%s: %w", path, errNoPositions)
	}
	return lo, hi, nil
}
