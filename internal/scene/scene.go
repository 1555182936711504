package scene

import (
	"image/color"

	"github.com/rangeshot/rangeshot/internal/core/ecs"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

// Handle is an opaque reference to an object in a Graph.
type Handle = ecs.EntityID

type Kind int

const (
	KindSphere Kind = iota
	KindBox
	KindPlane
	KindPoints
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindPlane:
		return "plane"
	case KindPoints:
		return "points"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Transform places an object in world space.
type Transform struct {
	Position    vmath.Vec3
	Orientation vmath.Quat
}

// Visual describes what to draw. Radius applies to spheres; Size is the full
// box extent, or the X/Y extent of a plane in its local frame (normal +Z).
// Points are world-space positions for point clouds and line vertices, drawn
// without the transform.
type Visual struct {
	Kind      Kind
	Radius    float64
	Size      vmath.Vec3
	Points    []vmath.Vec3
	PointSize float64
	Color     color.RGBA
	Opacity   float64
	Additive  bool
}

// Graph is the scene: transforms and visuals keyed by handle. Removal is
// deferred until Flush so handles stay resolvable for the rest of the tick.
// Game-loop goroutine only.
type Graph struct {
	world      *ecs.World
	transforms *ecs.Store[Transform]
	visuals    *ecs.Store[Visual]
}

func NewGraph() *Graph {
	g := &Graph{
		world:      ecs.NewWorld(),
		transforms: ecs.NewStore[Transform](),
		visuals:    ecs.NewStore[Visual](),
	}
	g.world.Track(g.transforms)
	g.world.Track(g.visuals)
	return g
}

// Add inserts an object and returns its handle. v.Points is copied.
func (g *Graph) Add(v Visual, tf Transform) Handle {
	if tf.Orientation == (vmath.Quat{}) {
		tf.Orientation = vmath.QuatIdentity()
	}
	v.Points = append([]vmath.Vec3(nil), v.Points...)
	h := g.world.CreateEntity()
	g.transforms.Set(h, &tf)
	g.visuals.Set(h, &v)
	return h
}

// Remove schedules h for removal at the next Flush. Removed objects are no
// longer drawn.
func (g *Graph) Remove(h Handle) {
	g.world.MarkForDestruction(h)
}

// Flush destroys every object removed since the last flush.
func (g *Graph) Flush() int {
	return g.world.FlushDestroyQueue()
}

// Live reports whether h is in the graph and not scheduled for removal.
func (g *Graph) Live(h Handle) bool {
	return g.world.Alive(h) && !g.world.Pending(h)
}

func (g *Graph) Transform(h Handle) (Transform, bool) {
	tf, ok := g.transforms.Get(h)
	if !ok {
		return Transform{}, false
	}
	return *tf, true
}

func (g *Graph) Visual(h Handle) (Visual, bool) {
	v, ok := g.visuals.Get(h)
	if !ok {
		return Visual{}, false
	}
	return *v, true
}

func (g *Graph) SetTransform(h Handle, pos vmath.Vec3, rot vmath.Quat) {
	if tf, ok := g.transforms.Get(h); ok {
		tf.Position = pos
		tf.Orientation = rot
	}
}

func (g *Graph) SetOpacity(h Handle, a float64) {
	if v, ok := g.visuals.Get(h); ok {
		v.Opacity = a
	}
}

func (g *Graph) SetColor(h Handle, c color.RGBA) {
	if v, ok := g.visuals.Get(h); ok {
		v.Color = c
	}
}

// SetPoints replaces the vertex list of a point cloud or line. The slice is
// copied.
func (g *Graph) SetPoints(h Handle, pts []vmath.Vec3) {
	if v, ok := g.visuals.Get(h); ok {
		v.Points = append(v.Points[:0], pts...)
	}
}

// Len returns the number of objects, including ones awaiting Flush.
func (g *Graph) Len() int { return g.visuals.Len() }

// Each visits every live object.
func (g *Graph) Each(fn func(Handle, *Transform, *Visual)) {
	ecs.Each2(g.transforms, g.visuals, func(h ecs.EntityID, tf *Transform, v *Visual) {
		if g.world.Pending(h) {
			return
		}
		fn(h, tf, v)
	})
}
