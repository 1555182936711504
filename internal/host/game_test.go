package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	"github.com/rangeshot/rangeshot/internal/handler"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
	"github.com/rangeshot/rangeshot/internal/render"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/world"
)

type harness struct {
	game    *Game
	bus     *event.Bus
	modes   []ebiten.CursorModeType
	copied  []string
	copyErr error
}

func newHarness(t *testing.T, board *handler.Scoreboard) *harness {
	t.Helper()
	h := &harness{bus: event.NewBus()}
	h.game = New(h.bus, render.NewRenderer(scene.NewGraph(), 800, 600), board, zap.NewNop())
	h.game.setCursorMode = func(m ebiten.CursorModeType) { h.modes = append(h.modes, m) }
	h.game.copyText = func(s string) error {
		if h.copyErr != nil {
			return h.copyErr
		}
		h.copied = append(h.copied, s)
		return nil
	}
	return h
}

// drain delivers everything emitted so far and returns it in order.
func (h *harness) drain() []any {
	var got []any
	event.Subscribe(h.bus, func(ev event.LockAcquired) { got = append(got, ev) })
	event.Subscribe(h.bus, func(ev event.LockReleased) { got = append(got, ev) })
	event.Subscribe(h.bus, func(ev event.Look) { got = append(got, ev) })
	event.Subscribe(h.bus, func(ev event.Fire) { got = append(got, ev) })
	event.Subscribe(h.bus, func(ev event.Resize) { got = append(got, ev) })
	h.bus.SwapBuffers()
	_ = h.bus.DispatchAll()
	return got
}

func TestClickLocksAndEscapeUnlocks(t *testing.T) {
	h := newHarness(t, nil)

	h.game.handle(frameInput{click: true, focused: true, cursorX: 10, cursorY: 10})
	h.game.handle(frameInput{focused: true, cursorX: 13, cursorY: 8})
	h.game.handle(frameInput{focused: true, escape: true, cursorX: 13, cursorY: 8})

	got := h.drain()
	want := []any{event.LockAcquired{}, event.Look{DX: 3, DY: -2}, event.LockReleased{}}
	if len(got) != len(want) {
		t.Fatalf("events = %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if len(h.modes) != 2 || h.modes[0] != ebiten.CursorModeCaptured || h.modes[1] != ebiten.CursorModeVisible {
		t.Errorf("cursor modes = %v", h.modes)
	}
}

func TestClickWhileLockedFires(t *testing.T) {
	h := newHarness(t, nil)
	h.game.handle(frameInput{click: true, focused: true})
	h.game.handle(frameInput{click: true, focused: true})
	h.game.handle(frameInput{click: true, focused: true})

	fires := 0
	for _, ev := range h.drain() {
		if _, ok := ev.(event.Fire); ok {
			fires++
		}
	}
	if fires != 2 {
		t.Errorf("fires = %d, want 2 (the locking click does not shoot)", fires)
	}
}

func TestFocusLossReleasesLock(t *testing.T) {
	h := newHarness(t, nil)
	h.game.handle(frameInput{click: true, focused: true})
	h.game.handle(frameInput{focused: false})

	got := h.drain()
	if len(got) != 2 || got[1] != (event.LockReleased{}) {
		t.Errorf("events = %#v", got)
	}
	if h.game.locked {
		t.Error("still locked after focus loss")
	}
}

func TestLookIgnoredWhileUnlocked(t *testing.T) {
	h := newHarness(t, nil)
	h.game.handle(frameInput{focused: true, cursorX: 0})
	h.game.handle(frameInput{focused: true, cursorX: 50})
	if got := h.drain(); len(got) != 0 {
		t.Errorf("events = %#v, want none", got)
	}
}

func TestHeldKeysExposed(t *testing.T) {
	h := newHarness(t, nil)
	h.game.handle(frameInput{held: world.KeyState{world.KeyW: true}, focused: true})
	if !h.game.Keys()[world.KeyW] || h.game.Keys()[world.KeyS] {
		t.Errorf("keys = %v", h.game.Keys())
	}
}

func TestLayoutEmitsResizeOnChange(t *testing.T) {
	h := newHarness(t, nil)
	h.game.Layout(800, 600)
	h.game.Layout(1024, 768)
	h.game.Layout(1024, 768)

	got := h.drain()
	if len(got) != 1 || got[0] != (event.Resize{Width: 1024, Height: 768}) {
		t.Errorf("events = %#v", got)
	}
}

func TestShellToggles(t *testing.T) {
	h := newHarness(t, nil)
	if !h.game.menuVisible {
		t.Fatal("menu hidden at start")
	}
	h.game.SetMenuVisible(false)
	h.game.SetCrosshairVisible(true)
	h.game.SetExitHintVisible(true)
	if h.game.menuVisible || !h.game.crosshairVisible || !h.game.exitHintVisible {
		t.Error("shell state not applied")
	}
}

func TestCopyLeaderboard(t *testing.T) {
	board := &handler.Scoreboard{Top: []leaderboard.Score{
		{PlayerName: "ada", Score: 1750},
		{PlayerName: "bob", Score: 900},
	}}
	h := newHarness(t, board)
	h.game.handle(frameInput{copyBoard: true, focused: true})

	if len(h.copied) != 1 {
		t.Fatalf("copied %d times, want 1", len(h.copied))
	}
	lines := strings.Split(h.copied[0], "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "ada") || !strings.Contains(lines[0], "1750") {
		t.Errorf("copied %q", h.copied[0])
	}
	if h.game.notice != "leaderboard copied" {
		t.Errorf("notice = %q", h.game.notice)
	}

	h.copyErr = errors.New("no clipboard")
	h.game.handle(frameInput{}) // release C
	h.game.handle(frameInput{copyBoard: true, focused: true})
	if h.game.notice != "clipboard unavailable" {
		t.Errorf("notice = %q", h.game.notice)
	}
}

func TestMenuLines(t *testing.T) {
	board := &handler.Scoreboard{
		LastRound: &handler.RoundSummary{
			Stats: world.RoundStats{Shots: 4, Hits: 3, Ticks: 120},
			Score: 420,
			Grade: "B",
		},
		Pending: true,
	}
	text := strings.Join(menuLines(board), "\n")
	for _, want := range []string{"Click to play", "420 pts (B)", "3/4 hits", "75% accuracy", "2.0s", "Submitting"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu missing %q:\n%s", want, text)
		}
	}
	if LeaderboardText(nil) != "no scores yet" {
		t.Error("empty leaderboard text")
	}
}
