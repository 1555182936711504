package handler

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	"github.com/rangeshot/rangeshot/internal/data"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/scripting"
	"github.com/rangeshot/rangeshot/internal/vmath"
	"github.com/rangeshot/rangeshot/internal/world"
)

type nopShell struct{}

func (nopShell) SetMenuVisible(bool)      {}
func (nopShell) SetCrosshairVisible(bool) {}
func (nopShell) SetExitHintVisible(bool)  {}

type viewport struct{ w, h int }

func (v *viewport) SetSize(w, h int) { v.w, v.h = w, h }

type flatScorer struct{}

func (flatScorer) CalcScore(ctx scripting.ScoreContext) scripting.ScoreResult {
	return scripting.ScoreResult{Score: ctx.Hits*10 + ctx.Shots, Grade: "X"}
}

type fakeScores struct {
	mu        sync.Mutex
	submitted []leaderboard.Score
	topErr    error
}

func (f *fakeScores) SubmitScore(_ context.Context, name string, score int) (leaderboard.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := leaderboard.Score{PlayerName: name, Score: score}
	f.submitted = append(f.submitted, s)
	return s, nil
}

func (f *fakeScores) GetTopScores(context.Context) ([]leaderboard.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.topErr != nil {
		return nil, f.topErr
	}
	return append([]leaderboard.Score(nil), f.submitted...), nil
}

func (f *fakeScores) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submitted)
}

func newDeps(t *testing.T, scores ScoreService) (*Deps, *event.Bus) {
	t.Helper()
	cfg := world.DefaultConfig()
	cfg.Targets.Count = 0
	cam := scene.NewCamera(1)
	sess := world.NewSession(cfg, physics.NewWorld(physics.DefaultGravity), scene.NewGraph(), nopShell{}, &cam,
		rand.New(rand.NewSource(1)), zap.NewNop())
	bus := event.NewBus()
	deps := &Deps{
		Session:       sess,
		Bus:           bus,
		Viewport:      &viewport{},
		Scorer:        flatScorer{},
		Scores:        scores,
		Board:         &Scoreboard{},
		PlayerName:    "ada",
		ScoresTimeout: time.Second,
		Log:           zap.NewNop(),
	}
	RegisterAll(bus, deps)
	return deps, bus
}

// deliver runs one input-phase drain.
func deliver(t *testing.T, bus *event.Bus) {
	t.Helper()
	bus.SwapBuffers()
	if err := bus.DispatchAll(); err != nil {
		t.Fatal(err)
	}
}

func waitPending(t *testing.T, bus *event.Bus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for bus.Pending() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no event delivered")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRoundLifecycle(t *testing.T) {
	scores := &fakeScores{}
	deps, bus := newDeps(t, scores)

	event.Emit(bus, event.LockAcquired{})
	event.Emit(bus, event.Fire{})
	event.Emit(bus, event.Fire{})
	event.Emit(bus, event.LockReleased{})
	deliver(t, bus)

	if deps.Session.Active() {
		t.Fatal("session still active")
	}
	if got := deps.Board.LastRound; got == nil || got.Stats.Shots != 2 || got.Score != 2 || got.Grade != "X" {
		t.Fatalf("last round = %+v", got)
	}

	waitPending(t, bus)
	deliver(t, bus)

	if scores.calls() != 1 {
		t.Fatalf("submissions = %d, want 1", scores.calls())
	}
	if deps.Board.Pending || len(deps.Board.Top) != 1 || deps.Board.Top[0].PlayerName != "ada" {
		t.Fatalf("board = %+v", deps.Board)
	}
}

func TestFetchFailureKeepsBoard(t *testing.T) {
	scores := &fakeScores{topErr: errors.New("offline")}
	deps, bus := newDeps(t, scores)
	deps.Board.Top = []leaderboard.Score{{PlayerName: "old"}}

	event.Emit(bus, event.LockAcquired{})
	event.Emit(bus, event.LockReleased{})
	deliver(t, bus)
	waitPending(t, bus)
	deliver(t, bus)

	if deps.Board.Pending || len(deps.Board.Top) != 1 || deps.Board.Top[0].PlayerName != "old" {
		t.Fatalf("board = %+v", deps.Board)
	}
}

func TestNoLeaderboardConfigured(t *testing.T) {
	deps, bus := newDeps(t, nil)
	event.Emit(bus, event.LockAcquired{})
	event.Emit(bus, event.LockReleased{})
	deliver(t, bus)

	if deps.Board.Pending || deps.Board.LastRound == nil {
		t.Fatalf("board = %+v", deps.Board)
	}
	time.Sleep(20 * time.Millisecond)
	if bus.Pending() != 0 {
		t.Fatal("unexpected follow-up event")
	}
}

func TestUnlockWithoutRoundIsIgnored(t *testing.T) {
	scores := &fakeScores{}
	deps, bus := newDeps(t, scores)
	event.Emit(bus, event.LockReleased{})
	deliver(t, bus)
	if deps.Board.LastRound != nil || deps.Board.Pending {
		t.Fatalf("board = %+v", deps.Board)
	}
}

func TestLookOnlyWhileActive(t *testing.T) {
	deps, bus := newDeps(t, nil)
	event.Emit(bus, event.Look{DX: 100})
	deliver(t, bus)
	if deps.Session.Camera.Yaw != 0 {
		t.Fatal("look applied while unlocked")
	}

	event.Emit(bus, event.LockAcquired{})
	event.Emit(bus, event.Look{DX: 100})
	deliver(t, bus)
	if deps.Session.Camera.Yaw == 0 {
		t.Fatal("look ignored while locked")
	}
}

func TestResize(t *testing.T) {
	deps, bus := newDeps(t, nil)
	event.Emit(bus, event.Resize{Width: 1600, Height: 800})
	event.Emit(bus, event.Resize{Width: 0, Height: 800})
	deliver(t, bus)

	if deps.Session.Camera.Aspect != 2 {
		t.Fatalf("aspect = %f", deps.Session.Camera.Aspect)
	}
	if vp := deps.Viewport.(*viewport); vp.w != 1600 || vp.h != 800 {
		t.Fatalf("viewport = %+v", vp)
	}
}

func TestModelLoadedAddsObstacle(t *testing.T) {
	deps, bus := newDeps(t, nil)
	event.Emit(bus, event.ModelLoaded{Model: data.LoadedModel{
		Path:     "models/crate.glb",
		Position: vmath.V3(1, 0, 2),
		Size:     vmath.V3(1, 1, 1),
	}})
	deliver(t, bus)
	if deps.Session.Obstacles.Len() != 1 {
		t.Fatalf("obstacles = %d", deps.Session.Obstacles.Len())
	}
}
