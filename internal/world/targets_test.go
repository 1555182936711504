package world_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
	"github.com/rangeshot/rangeshot/internal/world"
)

func TestSpawnTargetBounds(t *testing.T) {
	ph := physics.NewWorld(physics.DefaultGravity)
	g := scene.NewGraph()
	cfg := world.DefaultTargetConfig()
	cfg.Count = 500
	reg := world.NewTargetRegistry(ph, g, rand.New(rand.NewSource(11)), cfg)
	reg.Fill()

	if reg.Len() != 500 || ph.Len() != 500 {
		t.Fatalf("targets=%d bodies=%d, want 500", reg.Len(), ph.Len())
	}
	for _, tg := range reg.Targets() {
		p := ph.Position(tg.Body)
		if math.Abs(p.X) > 40 || math.Abs(p.Z) > 40 || p.Y != 1 {
			t.Fatalf("target spawned at %+v", p)
		}
		v, _ := g.Visual(tg.Visual)
		if v.Kind != scene.KindSphere || v.Radius != 0.5 {
			t.Fatalf("target visual %+v", v)
		}
	}
}

func TestRemoveTarget(t *testing.T) {
	ph := physics.NewWorld(physics.DefaultGravity)
	g := scene.NewGraph()
	reg := world.NewTargetRegistry(ph, g, rand.New(rand.NewSource(1)), world.DefaultTargetConfig())
	reg.Fill()

	victim := reg.Targets()[3]
	if !reg.RemoveTarget(victim) {
		t.Fatal("RemoveTarget returned false")
	}
	if reg.RemoveTarget(victim) {
		t.Fatal("second RemoveTarget returned true")
	}
	if victim.Alive || reg.Len() != 19 || ph.Has(victim.Body) || g.Live(victim.Visual) {
		t.Fatalf("target not fully removed")
	}
	if reg.FindByVisual(victim.Visual) != nil {
		t.Fatal("removed target still found by visual")
	}
	reg.SpawnTarget()
	if reg.Len() != 20 {
		t.Fatalf("len = %d after respawn", reg.Len())
	}
}

func TestSyncVisualsFollowsBodies(t *testing.T) {
	ph := physics.NewWorld(physics.DefaultGravity)
	g := scene.NewGraph()
	cfg := world.DefaultTargetConfig()
	cfg.Count = 3
	reg := world.NewTargetRegistry(ph, g, rand.New(rand.NewSource(5)), cfg)
	reg.Fill()

	for i := 0; i < 30; i++ {
		ph.Step(1.0 / 60)
	}
	reg.SyncVisuals()

	for _, tg := range reg.Targets() {
		tf, _ := g.Transform(tg.Visual)
		if tf.Position != ph.Position(tg.Body) {
			t.Fatalf("visual at %+v, body at %+v", tf.Position, ph.Position(tg.Body))
		}
	}
}

func TestRaycastNearestFirst(t *testing.T) {
	g := scene.NewGraph()
	sphere := scene.Visual{Kind: scene.KindSphere, Radius: 0.5}
	far := g.Add(sphere, scene.Transform{Position: vmath.V3(0, 0, -10)})
	near := g.Add(sphere, scene.Transform{Position: vmath.V3(0, 0, -4)})
	off := g.Add(sphere, scene.Transform{Position: vmath.V3(5, 0, -4)})
	box := g.Add(scene.Visual{Kind: scene.KindBox, Size: vmath.V3(1, 1, 1)}, scene.Transform{Position: vmath.V3(0, 0, -2)})

	hits := world.Raycast(g, world.Ray{Dir: vmath.V3(0, 0, -1)}, []scene.Handle{far, off, near, box})
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if hits[0].Visual != near || hits[1].Visual != far {
		t.Fatalf("hit order wrong: %+v", hits)
	}
	if math.Abs(hits[0].Distance-3.5) > 1e-9 || hits[0].Point.Dist(vmath.V3(0, 0, -3.5)) > 1e-9 {
		t.Fatalf("nearest hit %+v", hits[0])
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	r := world.Ray{Origin: vmath.V3(0, 0, 0), Dir: vmath.V3(0, 0, -1)}
	if _, ok := world.IntersectSphere(r, vmath.V3(0, 0, -0.2), 1); ok {
		t.Fatal("ray starting inside the sphere reported a hit")
	}
	if _, ok := world.IntersectSphere(r, vmath.V3(0, 0, 3), 1); ok {
		t.Fatal("sphere behind the origin reported a hit")
	}
}
