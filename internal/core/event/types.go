package event

import (
	"github.com/rangeshot/rangeshot/internal/data"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
)

// Fire is the primary-fire button press.
type Fire struct{}

// Look carries the mouse movement since the previous frame, in pixels.
type Look struct {
	DX, DY float64
}

// LockAcquired is raised when the pointer lock is granted.
type LockAcquired struct{}

// LockReleased is raised when the pointer lock is lost (Escape, focus loss).
type LockReleased struct{}

// Resize reports a new viewport size in pixels.
type Resize struct {
	Width, Height int
}

// ModelLoaded is the one-shot completion of an asynchronous model load.
type ModelLoaded struct {
	Model data.LoadedModel
}

// LeaderboardLoaded delivers the top scores fetched after a round ends.
type LeaderboardLoaded struct {
	Scores []leaderboard.Score
}
