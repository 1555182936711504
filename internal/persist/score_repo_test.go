package persist

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/config"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
)

var _ leaderboard.Store = (*ScoreRepo)(nil)

// Runs against a real database when RANGESHOT_TEST_DSN is set.
func TestScoreRepo(t *testing.T) {
	dsn := os.Getenv("RANGESHOT_TEST_DSN")
	if dsn == "" {
		t.Skip("RANGESHOT_TEST_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := NewDB(ctx, config.DatabaseConfig{DSN: dsn, MaxOpenConns: 2, MaxIdleConns: 1, ConnMaxLifetime: time.Minute}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if v, err := RunMigrations(ctx, db); err != nil {
		t.Fatal(err)
	} else if v < 1 {
		t.Fatalf("schema version = %d after migrating", v)
	}
	if _, err := db.Pool.Exec(ctx, `TRUNCATE scores`); err != nil {
		t.Fatal(err)
	}

	repo := NewScoreRepo(db)
	recs := []leaderboard.Score{
		{ID: "00000000-0000-0000-0000-000000000001", PlayerName: "B", Score: 9, Timestamp: 1},
		{ID: "00000000-0000-0000-0000-000000000002", PlayerName: "A", Score: 5, Timestamp: 2},
		{ID: "00000000-0000-0000-0000-000000000003", PlayerName: "C", Score: 1, Timestamp: 3},
		{ID: "00000000-0000-0000-0000-000000000004", PlayerName: "D", Score: 5, Timestamp: 4},
	}
	for _, s := range recs {
		if err := repo.Insert(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	top, err := repo.Top(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	got := ""
	for _, s := range top {
		got += s.PlayerName
	}
	if got != "BDA" {
		t.Fatalf("order = %s, want BDA", got)
	}
	if n, err := repo.Count(ctx); err != nil || n != 4 {
		t.Fatalf("count = %d, err %v", n, err)
	}
}
