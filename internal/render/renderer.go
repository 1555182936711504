package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

var (
	skyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	lightDir = vmath.V3(0.3, 1, 0.5).Normalize()
)

// Cube faces as corner indices (counter-clockwise seen from outside) and
// their local normals. Corner i has bit 0 = +X, bit 1 = +Y, bit 2 = +Z.
var boxFaces = [6]struct {
	idx    [4]int
	normal vmath.Vec3
}{
	{[4]int{1, 3, 7, 5}, vmath.V3(1, 0, 0)},
	{[4]int{0, 4, 6, 2}, vmath.V3(-1, 0, 0)},
	{[4]int{2, 6, 7, 3}, vmath.V3(0, 1, 0)},
	{[4]int{0, 1, 5, 4}, vmath.V3(0, -1, 0)},
	{[4]int{4, 5, 7, 6}, vmath.V3(0, 0, 1)},
	{[4]int{0, 2, 3, 1}, vmath.V3(0, 0, -1)},
}

// item is one scene object queued for drawing this frame.
type item struct {
	tf    scene.Transform
	vis   *scene.Visual
	depth float64
	floor bool
}

// Renderer paints a scene.Graph with ebiten's vector package. Objects are
// drawn back to front by centre depth; planes always go first.
type Renderer struct {
	graph  *scene.Graph
	width  int
	height int
	items  []item
	path   vector.Path
}

func NewRenderer(graph *scene.Graph, width, height int) *Renderer {
	return &Renderer{graph: graph, width: width, height: height}
}

// SetSize sets the output size in pixels. Non-positive sizes are ignored.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Draw clears screen to the sky colour and paints every live object.
func (r *Renderer) Draw(screen *ebiten.Image, cam *scene.Camera) {
	screen.Fill(skyColor)
	view := NewView(cam, r.width, r.height)
	for _, it := range r.collect(view) {
		switch it.vis.Kind {
		case scene.KindSphere:
			r.drawSphere(screen, view, it)
		case scene.KindBox:
			r.drawBox(screen, view, it)
		case scene.KindPlane:
			r.drawPlane(screen, view, it)
		case scene.KindPoints:
			r.drawPoints(screen, view, it)
		case scene.KindLine:
			r.drawLine(screen, view, it)
		}
	}
}

// collect gathers visible objects in paint order.
func (r *Renderer) collect(view View) []item {
	r.items = r.items[:0]
	r.graph.Each(func(_ scene.Handle, tf *scene.Transform, v *scene.Visual) {
		if v.Opacity <= 0 {
			return
		}
		centre := tf.Position
		if len(v.Points) > 0 && (v.Kind == scene.KindPoints || v.Kind == scene.KindLine) {
			centre = centroid(v.Points)
		}
		r.items = append(r.items, item{
			tf:    *tf,
			vis:   v,
			depth: Depth(view.ToCamera(centre)),
			floor: v.Kind == scene.KindPlane,
		})
	})
	sort.SliceStable(r.items, func(i, j int) bool {
		a, b := r.items[i], r.items[j]
		if a.floor != b.floor {
			return a.floor
		}
		return a.depth > b.depth
	})
	return r.items
}

func (r *Renderer) drawSphere(dst *ebiten.Image, view View, it item) {
	c, depth, ok := view.Project(it.tf.Position)
	if !ok {
		return
	}
	rad := view.ScreenRadius(it.vis.Radius, depth)
	if rad < 0.5 {
		rad = 0.5
	}
	base := fade(it.vis.Color, it.vis.Opacity)
	vector.FillCircle(dst, float32(c.X), float32(c.Y), float32(rad), base, true)
	// Highlight toward the light.
	hl := fade(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 0.35*it.vis.Opacity)
	vector.FillCircle(dst, float32(c.X-rad*0.3), float32(c.Y-rad*0.35), float32(rad*0.35), hl, true)
}

func (r *Renderer) drawBox(dst *ebiten.Image, view View, it item) {
	half := it.vis.Size.Scale(0.5)
	var corners [8]vmath.Vec3
	for i := range corners {
		local := vmath.Vec3{X: -half.X, Y: -half.Y, Z: -half.Z}
		if i&1 != 0 {
			local.X = half.X
		}
		if i&2 != 0 {
			local.Y = half.Y
		}
		if i&4 != 0 {
			local.Z = half.Z
		}
		corners[i] = it.tf.Orientation.Rotate(local).Add(it.tf.Position)
	}
	eye := view.pos
	for _, f := range boxFaces {
		n := it.tf.Orientation.Rotate(f.normal)
		mid := corners[f.idx[0]].Add(corners[f.idx[2]]).Scale(0.5)
		if n.Dot(mid.Sub(eye)) >= 0 {
			continue
		}
		poly := []vmath.Vec3{corners[f.idx[0]], corners[f.idx[1]], corners[f.idx[2]], corners[f.idx[3]]}
		r.fillPolygon(dst, view, poly, shade(it.vis.Color, n), it.vis.Opacity, false)
	}
}

func (r *Renderer) drawPlane(dst *ebiten.Image, view View, it item) {
	hx, hy := it.vis.Size.X/2, it.vis.Size.Y/2
	poly := make([]vmath.Vec3, 4)
	for i, c := range [4][2]float64{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}} {
		poly[i] = it.tf.Orientation.Rotate(vmath.Vec3{X: c[0], Y: c[1]}).Add(it.tf.Position)
	}
	r.fillPolygon(dst, view, poly, it.vis.Color, it.vis.Opacity, false)
}

func (r *Renderer) drawPoints(dst *ebiten.Image, view View, it item) {
	r.path = vector.Path{}
	n := 0
	for _, p := range it.vis.Points {
		s, depth, ok := view.Project(p)
		if !ok {
			continue
		}
		rad := view.ScreenRadius(it.vis.PointSize/2, depth)
		if rad < 1 {
			rad = 1
		}
		r.path.MoveTo(float32(s.X+rad), float32(s.Y))
		r.path.Arc(float32(s.X), float32(s.Y), float32(rad), 0, 2*math.Pi, vector.Clockwise)
		r.path.Close()
		n++
	}
	if n == 0 {
		return
	}
	r.fill(dst, it.vis.Color, it.vis.Opacity, it.vis.Additive)
}

func (r *Renderer) drawLine(dst *ebiten.Image, view View, it item) {
	pts := it.vis.Points
	c := fade(it.vis.Color, it.vis.Opacity)
	for i := 1; i < len(pts); i++ {
		a, b, ok := view.ClipSegment(view.ToCamera(pts[i-1]), view.ToCamera(pts[i]))
		if !ok {
			continue
		}
		sa, _ := view.ProjectCamera(a)
		sb, _ := view.ProjectCamera(b)
		vector.StrokeLine(dst, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y), 2, c, true)
	}
}

// fillPolygon clips a world-space polygon at the near plane and fills it.
func (r *Renderer) fillPolygon(dst *ebiten.Image, view View, poly []vmath.Vec3, c color.RGBA, opacity float64, additive bool) {
	cam := make([]vmath.Vec3, len(poly))
	for i, p := range poly {
		cam[i] = view.ToCamera(p)
	}
	cam = view.ClipPolygon(cam)
	if len(cam) < 3 {
		return
	}
	r.path = vector.Path{}
	for i, p := range cam {
		s, _ := view.ProjectCamera(p)
		if i == 0 {
			r.path.MoveTo(float32(s.X), float32(s.Y))
		} else {
			r.path.LineTo(float32(s.X), float32(s.Y))
		}
	}
	r.path.Close()
	r.fill(dst, c, opacity, additive)
}

func (r *Renderer) fill(dst *ebiten.Image, c color.RGBA, opacity float64, additive bool) {
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(fade(c, opacity))
	if additive {
		opts.Blend = ebiten.BlendLighter
	}
	vector.FillPath(dst, &r.path, &vector.FillOptions{}, opts)
}

// fade scales a straight-alpha colour by opacity and premultiplies it.
func fade(c color.RGBA, opacity float64) color.RGBA {
	a := math.Max(0, math.Min(1, opacity)) * float64(c.A) / 0xff
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(0xff * a),
	}
}

// shade darkens a face colour by how far its normal points from the light.
func shade(c color.RGBA, normal vmath.Vec3) color.RGBA {
	k := 0.55 + 0.45*math.Max(0, normal.Dot(lightDir))
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}

func centroid(pts []vmath.Vec3) vmath.Vec3 {
	var sum vmath.Vec3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}
