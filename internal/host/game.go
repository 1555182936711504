package host

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	"github.com/rangeshot/rangeshot/internal/handler"
	"github.com/rangeshot/rangeshot/internal/render"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/world"
)

// Ticker advances the game core by one frame.
type Ticker interface {
	Tick()
}

// movementKeys maps physical keys to the core's key codes.
var movementKeys = map[ebiten.Key]string{
	ebiten.KeyW: world.KeyW,
	ebiten.KeyA: world.KeyA,
	ebiten.KeyS: world.KeyS,
	ebiten.KeyD: world.KeyD,
}

// frameInput is one frame's sampled input.
type frameInput struct {
	held      world.KeyState
	cursorX   int
	cursorY   int
	click     bool // left button went down this frame
	escape    bool // Escape went down this frame
	copyBoard bool // C went down this frame
	focused   bool
}

// Game is the ebiten host: it turns window input into bus events, ticks the
// core and draws the scene with the HUD on top. It is the core's Shell,
// Viewport and KeySource.
type Game struct {
	bus      *event.Bus
	renderer *render.Renderer
	camera   *scene.Camera
	board    *handler.Scoreboard
	loop     Ticker
	log      *zap.Logger

	width, height int
	locked        bool

	menuVisible      bool
	crosshairVisible bool
	exitHintVisible  bool
	notice           string

	keys       world.KeyState
	prevKeys   map[ebiten.Key]bool
	prevLeft   bool
	lastX      int
	lastY      int
	haveCursor bool

	setCursorMode func(ebiten.CursorModeType)
	copyText      func(string) error
}

// New creates the host. The core is attached with Attach once the session
// that needs this Game as its Shell exists.
func New(bus *event.Bus, renderer *render.Renderer, board *handler.Scoreboard, log *zap.Logger) *Game {
	w, h := renderer.Size()
	return &Game{
		bus:           bus,
		renderer:      renderer,
		board:         board,
		log:           log,
		width:         w,
		height:        h,
		menuVisible:   true,
		keys:          world.KeyState{},
		prevKeys:      make(map[ebiten.Key]bool),
		setCursorMode: ebiten.SetCursorMode,
		copyText:      clipboard.WriteAll,
	}
}

// Attach wires the camera to draw from and the per-frame loop.
func (g *Game) Attach(cam *scene.Camera, loop Ticker) {
	g.camera = cam
	g.loop = loop
}

// world.Shell

func (g *Game) SetMenuVisible(visible bool)      { g.menuVisible = visible }
func (g *Game) SetCrosshairVisible(visible bool) { g.crosshairVisible = visible }
func (g *Game) SetExitHintVisible(visible bool)  { g.exitHintVisible = visible }

// system.KeySource

// Keys returns the movement keys held this frame.
func (g *Game) Keys() world.KeyState { return g.keys }

// handler.Viewport

func (g *Game) SetSize(width, height int) { g.renderer.SetSize(width, height) }

// ebiten.Game

func (g *Game) Update() error {
	g.handle(g.sample())
	if g.loop != nil {
		g.loop.Tick()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.camera != nil {
		g.renderer.Draw(screen, g.camera)
	}
	g.drawHUD(screen)
}

// Layout keeps the logical screen equal to the window and reports changes
// to the core.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		event.Emit(g.bus, event.Resize{Width: outsideWidth, Height: outsideHeight})
	}
	return g.width, g.height
}

// sample reads the ebiten input state, edge-detecting presses against the
// previous frame.
func (g *Game) sample() frameInput {
	in := frameInput{held: world.KeyState{}, focused: ebiten.IsFocused()}
	for k, code := range movementKeys {
		if ebiten.IsKeyPressed(k) {
			in.held[code] = true
		}
	}
	in.escape = g.pressed(ebiten.KeyEscape)
	in.copyBoard = g.pressed(ebiten.KeyC)

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.click = left && !g.prevLeft
	g.prevLeft = left

	in.cursorX, in.cursorY = ebiten.CursorPosition()
	return in
}

func (g *Game) pressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	edge := down && !g.prevKeys[k]
	g.prevKeys[k] = down
	return edge
}

// handle turns one frame of input into events. A click while unlocked
// requests the lock; Escape or focus loss releases it.
func (g *Game) handle(in frameInput) {
	g.keys = in.held

	if !g.locked {
		switch {
		case in.click && in.focused:
			g.lock(in)
		case in.copyBoard:
			g.copyLeaderboard()
		}
		return
	}

	if in.escape || !in.focused {
		g.unlock()
		return
	}

	if g.haveCursor {
		dx, dy := in.cursorX-g.lastX, in.cursorY-g.lastY
		if dx != 0 || dy != 0 {
			event.Emit(g.bus, event.Look{DX: float64(dx), DY: float64(dy)})
		}
	}
	g.lastX, g.lastY, g.haveCursor = in.cursorX, in.cursorY, true

	if in.click {
		event.Emit(g.bus, event.Fire{})
	}
}

func (g *Game) lock(in frameInput) {
	g.setCursorMode(ebiten.CursorModeCaptured)
	g.locked = true
	g.lastX, g.lastY, g.haveCursor = in.cursorX, in.cursorY, true
	g.notice = ""
	event.Emit(g.bus, event.LockAcquired{})
}

func (g *Game) unlock() {
	g.setCursorMode(ebiten.CursorModeVisible)
	g.locked = false
	g.haveCursor = false
	event.Emit(g.bus, event.LockReleased{})
}

func (g *Game) copyLeaderboard() {
	text := LeaderboardText(g.board)
	if err := g.copyText(text); err != nil {
		g.log.Warn("clipboard write failed", zap.Error(err))
		g.notice = "clipboard unavailable"
		return
	}
	g.notice = "leaderboard copied"
}
