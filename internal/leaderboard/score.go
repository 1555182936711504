// Package leaderboard stores round scores and serves the top list.
package leaderboard

import (
	"context"
	"sort"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// TopLimit is the size of the top list.
const TopLimit = 10

// Score is one submitted round. Timestamp is unix milliseconds, assigned by
// the service.
type Score struct {
	ID         string `json:"id"`
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Timestamp  int64  `json:"timestamp"`
}

// Store persists scores. Top returns at most limit records ordered by score
// descending, newer first on ties.
type Store interface {
	Insert(ctx context.Context, s Score) error
	Top(ctx context.Context, limit int) ([]Score, error)
}

// SortTop orders scores the way Top must return them.
func SortTop(scores []Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Timestamp > scores[j].Timestamp
	})
}
