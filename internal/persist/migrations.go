package persist

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// gooseLog routes goose's progress lines into zap at debug level.
type gooseLog struct {
	s *zap.SugaredLogger
}

func (l gooseLog) Printf(format string, v ...interface{}) { l.s.Debugf(format, v...) }
func (l gooseLog) Fatalf(format string, v ...interface{}) { l.s.Fatalf(format, v...) }

// RunMigrations brings the scores schema up to date and returns the schema
// version it ends on.
func RunMigrations(ctx context.Context, db *DB) (int64, error) {
	goose.SetLogger(gooseLog{s: db.log.Named("goose").Sugar()})
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("set dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return 0, fmt.Errorf("run migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("schema version: %w", err)
	}
	db.log.Info("schema ready", zap.Int64("version", version))
	return version, nil
}
