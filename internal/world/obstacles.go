package world

import (
	"image/color"

	"github.com/rangeshot/rangeshot/internal/data"
	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

var obstacleColor = color.RGBA{R: 0x8a, G: 0x7f, B: 0x70, A: 0xff}

// StaticObstacle is a loaded model standing on the ground. It never moves.
type StaticObstacle struct {
	Model  string
	Visual scene.Handle
	Body   physics.BodyID
}

type Obstacles struct {
	physics Physics
	scene   Scene
	list    []StaticObstacle
}

func NewObstacles(ph Physics, sc Scene) *Obstacles {
	return &Obstacles{physics: ph, scene: sc}
}

// Add places a box collider matching the model's scaled bounds, resting on
// the ground at the model's x,z.
func (o *Obstacles) Add(m data.LoadedModel) StaticObstacle {
	half := m.Size.Scale(0.5)
	center := vmath.Vec3{X: m.Position.X, Y: half.Y, Z: m.Position.Z}

	ob := StaticObstacle{Model: m.Path}
	ob.Visual = o.scene.Add(scene.Visual{
		Kind:    scene.KindBox,
		Size:    m.Size,
		Color:   obstacleColor,
		Opacity: 1,
	}, scene.Transform{Position: center})
	ob.Body = o.physics.AddBody(physics.BodyDesc{
		Mass:     0,
		Shape:    physics.Box(half),
		Position: center,
	})
	o.list = append(o.list, ob)
	return ob
}

func (o *Obstacles) List() []StaticObstacle { return o.list }

func (o *Obstacles) Len() int { return len(o.list) }
