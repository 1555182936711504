package persist

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/config"
)

func TestNewDBWithoutDSN(t *testing.T) {
	if _, err := NewDB(context.Background(), config.DatabaseConfig{}, zap.NewNop()); !errors.Is(err, ErrNoDSN) {
		t.Errorf("err = %v, want ErrNoDSN", err)
	}
}

func TestPoolConfig(t *testing.T) {
	const dsn = "postgres://u:p@db.example:5432/scores"

	cfg, err := poolConfig(config.DatabaseConfig{DSN: dsn, MaxOpenConns: 8, MaxIdleConns: 2, ConnMaxLifetime: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxConns != 8 || cfg.MinConns != 2 || cfg.MaxConnLifetime != time.Minute {
		t.Errorf("limits = %d/%d/%v", cfg.MaxConns, cfg.MinConns, cfg.MaxConnLifetime)
	}
	if cfg.ConnConfig.Host != "db.example" || cfg.ConnConfig.Database != "scores" {
		t.Errorf("host/db = %s/%s", cfg.ConnConfig.Host, cfg.ConnConfig.Database)
	}

	// Idle above max is ignored rather than rejected by pgx later.
	cfg, err = poolConfig(config.DatabaseConfig{DSN: dsn, MaxOpenConns: 2, MaxIdleConns: 5})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinConns != 0 {
		t.Errorf("MinConns = %d, want pgx default", cfg.MinConns)
	}

	if _, err := poolConfig(config.DatabaseConfig{DSN: "::not a dsn"}); err == nil {
		t.Error("bad dsn accepted")
	}
}
