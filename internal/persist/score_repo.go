package persist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rangeshot/rangeshot/internal/leaderboard"
)

// ScoreRepo is the PostgreSQL leaderboard.Store.
type ScoreRepo struct {
	db *DB
}

func NewScoreRepo(db *DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

func (r *ScoreRepo) Insert(ctx context.Context, s leaderboard.Score) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO scores (id, player_name, score, timestamp) VALUES ($1, $2, $3, $4)`,
		s.ID, s.PlayerName, s.Score, s.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert score %s: %w", s.ID, err)
	}
	return nil
}

func (r *ScoreRepo) Top(ctx context.Context, limit int) ([]leaderboard.Score, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id::text, player_name, score, timestamp
		 FROM scores
		 ORDER BY score DESC, timestamp DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (leaderboard.Score, error) {
		var s leaderboard.Score
		err := row.Scan(&s.ID, &s.PlayerName, &s.Score, &s.Timestamp)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan top scores: %w", err)
	}
	return out, nil
}

// Count returns the number of stored scores.
func (r *ScoreRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM scores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count scores: %w", err)
	}
	return n, nil
}
