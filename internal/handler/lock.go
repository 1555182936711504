package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/core/event"
	"github.com/rangeshot/rangeshot/internal/scripting"
)

// HandleLockAcquired starts a round.
func HandleLockAcquired(deps *Deps) {
	if deps.Session.Active() {
		return
	}
	deps.Session.Lock()
	deps.Log.Info("round started")
}

// HandleLockReleased ends the round, scores it and, when a leaderboard is
// configured, submits once and fetches the top list once in the background.
// The result comes back as event.LeaderboardLoaded.
func HandleLockReleased(deps *Deps) {
	stats, ok := deps.Session.Unlock()
	if !ok {
		return
	}
	res := deps.Scorer.CalcScore(scripting.ScoreContext{
		Hits:    stats.Hits,
		Shots:   stats.Shots,
		Seconds: stats.Seconds(),
	})
	deps.Board.LastRound = &RoundSummary{Stats: stats, Score: res.Score, Grade: res.Grade}
	deps.Log.Info("round ended",
		zap.Int("shots", stats.Shots),
		zap.Int("hits", stats.Hits),
		zap.Float64("seconds", stats.Seconds()),
		zap.Int("score", res.Score),
		zap.String("grade", res.Grade))

	if deps.Scores == nil || deps.PlayerName == "" {
		return
	}
	deps.Board.Pending = true
	go submitRound(deps, res.Score)
}

func submitRound(deps *Deps, score int) {
	ctx := context.Background()
	if deps.ScoresTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deps.ScoresTimeout)
		defer cancel()
	}

	if _, err := deps.Scores.SubmitScore(ctx, deps.PlayerName, score); err != nil {
		deps.Log.Warn("score submission failed", zap.Error(err))
	}
	top, err := deps.Scores.GetTopScores(ctx)
	if err != nil {
		deps.Log.Warn("leaderboard fetch failed", zap.Error(err))
	}
	event.Emit(deps.Bus, event.LeaderboardLoaded{Scores: top})
}

// HandleLeaderboardLoaded stores the fetched list for the menu. A failed
// fetch (nil list) keeps the previous one.
func HandleLeaderboardLoaded(ev event.LeaderboardLoaded, deps *Deps) {
	deps.Board.Pending = false
	if ev.Scores != nil {
		deps.Board.Top = ev.Scores
	}
}
