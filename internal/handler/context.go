package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
	"github.com/rangeshot/rangeshot/internal/scripting"
	"github.com/rangeshot/rangeshot/internal/world"
)

// Viewport is the renderer's output surface.
type Viewport interface {
	SetSize(width, height int)
}

// Scorer turns round stats into a score.
type Scorer interface {
	CalcScore(ctx scripting.ScoreContext) scripting.ScoreResult
}

// ScoreService is the leaderboard as seen from the game.
type ScoreService interface {
	SubmitScore(ctx context.Context, playerName string, score int) (leaderboard.Score, error)
	GetTopScores(ctx context.Context) ([]leaderboard.Score, error)
}

// RoundSummary is what the menu shows about the last round.
type RoundSummary struct {
	Stats world.RoundStats
	Score int
	Grade string
}

// Scoreboard holds the menu's leaderboard state. Game goroutine only.
type Scoreboard struct {
	Top       []leaderboard.Score
	LastRound *RoundSummary
	Pending   bool // submission or fetch in flight
}

// Deps holds shared dependencies injected into all event handlers.
type Deps struct {
	Session  *world.Session
	Bus      *event.Bus
	Viewport Viewport
	Scorer   Scorer
	Scores   ScoreService // nil disables the leaderboard
	Board    *Scoreboard

	PlayerName    string
	ScoresTimeout time.Duration

	Log *zap.Logger
}

// RegisterAll subscribes every game event handler on the bus.
func RegisterAll(bus *event.Bus, deps *Deps) {
	event.Subscribe(bus, func(event.Fire) { HandleFire(deps) })
	event.Subscribe(bus, func(ev event.Look) { HandleLook(ev, deps) })
	event.Subscribe(bus, func(event.LockAcquired) { HandleLockAcquired(deps) })
	event.Subscribe(bus, func(event.LockReleased) { HandleLockReleased(deps) })
	event.Subscribe(bus, func(ev event.Resize) { HandleResize(ev, deps) })
	event.Subscribe(bus, func(ev event.ModelLoaded) { HandleModelLoaded(ev, deps) })
	event.Subscribe(bus, func(ev event.LeaderboardLoaded) { HandleLeaderboardLoaded(ev, deps) })
}
