package world_test

import (
	"math"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/data"
	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
	"github.com/rangeshot/rangeshot/internal/world"
)

func newSession(t *testing.T, cfg world.Config) (*world.Session, *physics.World, *scene.Graph) {
	t.Helper()
	ph := physics.NewWorld(physics.DefaultGravity)
	g := scene.NewGraph()
	cam := scene.NewCamera(16.0 / 9)
	s := world.NewSession(cfg, ph, g, quietShell{}, &cam, rand.New(rand.NewSource(42)), zap.NewNop())
	return s, ph, g
}

func TestFireIgnoredWhileUnlocked(t *testing.T) {
	s, _, _ := newSession(t, world.DefaultConfig())
	if _, ok := s.Shooter.Fire(); ok {
		t.Fatal("fire processed while unlocked")
	}
	if s.Effects.Len() != 0 || s.Stats.Shots != 0 {
		t.Fatalf("effects=%d shots=%d", s.Effects.Len(), s.Stats.Shots)
	}
}

func TestMissEndpointAtMaxRange(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.Targets.Count = 0
	s, _, _ := newSession(t, cfg)
	s.Lock()

	res, ok := s.Shooter.Fire()
	if !ok || res.Hit {
		t.Fatalf("ok=%v hit=%v", ok, res.Hit)
	}
	if d := res.End.Dist(res.Muzzle); math.Abs(d-world.MaxShotRange) > 1e-9 {
		t.Fatalf("trajectory length = %f, want 100", d)
	}
	want := res.Muzzle.Add(s.Camera.Forward().Scale(100))
	if res.End.Dist(want) > 1e-9 {
		t.Fatalf("end = %+v, want %+v", res.End, want)
	}
	if len(s.Effects.Bursts()) != 1 || len(s.Effects.Trajectories()) != 1 {
		t.Fatalf("bursts=%d trajectories=%d", len(s.Effects.Bursts()), len(s.Effects.Trajectories()))
	}
}

func TestHitKeepsPopulation(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.Targets.Extent = 0 // every target at (0,1,0)
	s, ph, g := newSession(t, cfg)
	s.Lock()

	// From (0,1.6,5) aim at the target centre.
	s.Camera.Pitch = math.Atan2(-0.6, 5)
	before := s.Targets.Len()
	first := s.Targets.Targets()[0]

	res, ok := s.Shooter.Fire()
	if !ok || !res.Hit {
		t.Fatalf("ok=%v hit=%v", ok, res.Hit)
	}
	if res.Target != first {
		t.Fatal("nearest tie did not resolve to the first registered target")
	}
	if s.Targets.Len() != before {
		t.Fatalf("population %d -> %d", before, s.Targets.Len())
	}
	if ph.Has(first.Body) || g.Live(first.Visual) {
		t.Fatal("hit target not removed")
	}
	if d := res.End.Dist(vmath.V3(0, 1, 0)); math.Abs(d-0.5) > 1e-9 {
		t.Fatalf("end %+v is not on the target surface", res.End)
	}
	if len(s.Effects.Bursts()) != 2 || len(s.Effects.Trajectories()) != 1 {
		t.Fatalf("bursts=%d trajectories=%d", len(s.Effects.Bursts()), len(s.Effects.Trajectories()))
	}
	if s.Stats.Shots != 1 || s.Stats.Hits != 1 {
		t.Fatalf("stats %+v", s.Stats)
	}
}

func TestPopulationStableOverTicks(t *testing.T) {
	s, ph, _ := newSession(t, world.DefaultConfig())
	s.Lock()
	for i := 0; i < 600; i++ {
		s.Player.ApplyMovement(world.KeyState{})
		ph.Step(1.0 / 60)
		s.Player.SyncCamera()
		s.Targets.SyncVisuals()
		s.Effects.Tick(0.016)
		if s.Targets.Len() != 20 {
			t.Fatalf("tick %d: %d targets", i, s.Targets.Len())
		}
	}
	// Player rests on the ground plane.
	if y := ph.Position(s.Player.Body).Y; math.Abs(y-0.5) > 0.05 {
		t.Fatalf("player y = %f, want ~0.5", y)
	}
}

func TestUnlockReturnsStats(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.Targets.Count = 0
	s, _, _ := newSession(t, cfg)

	if _, ok := s.Unlock(); ok {
		t.Fatal("unlock without a round reported ok")
	}
	s.Lock()
	s.Shooter.Fire()
	s.Shooter.Fire()
	st, ok := s.Unlock()
	if !ok || st.Shots != 2 || st.Hits != 0 {
		t.Fatalf("stats %+v ok=%v", st, ok)
	}
	s.Lock()
	if s.Stats.Shots != 0 {
		t.Fatal("stats not reset on lock")
	}
}

func TestObstacleRestsOnGround(t *testing.T) {
	s, ph, g := newSession(t, world.DefaultConfig())
	ob := s.Obstacles.Add(data.LoadedModel{
		Path:     "models/crate.glb",
		Position: vmath.V3(4, 0, -6),
		Size:     vmath.V3(2, 3, 1),
	})
	if got, want := ph.Position(ob.Body), vmath.V3(4, 1.5, -6); got != want {
		t.Fatalf("body at %+v, want %+v", got, want)
	}
	ph.Step(1.0 / 60)
	if got := ph.Position(ob.Body); got != vmath.V3(4, 1.5, -6) {
		t.Fatalf("static obstacle moved to %+v", got)
	}
	if v, _ := g.Visual(ob.Visual); v.Size != vmath.V3(2, 3, 1) {
		t.Fatalf("visual size %+v", v.Size)
	}
}
