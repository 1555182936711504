package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/rangeshot/rangeshot/internal/config"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
	"github.com/rangeshot/rangeshot/internal/logging"
	gonet "github.com/rangeshot/rangeshot/internal/net"
	"github.com/rangeshot/rangeshot/internal/persist"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Environment and config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	con := logging.NewConsole(os.Stdout)
	con.Banner("RANGESHOT", "leaderboard service")

	// 3. Storage: PostgreSQL when a DSN is configured, else in memory.
	con.Section("Storage")
	var store leaderboard.Store
	if cfg.Database.DSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		con.OK("PostgreSQL connected")

		version, err := persist.RunMigrations(ctx, db)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		con.Stat("Schema version", version)

		repo := persist.NewScoreRepo(db)
		n, err := repo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count scores: %w", err)
		}
		con.Stat("Scores", n)
		store = repo
	} else {
		store = leaderboard.NewMemoryStore()
		con.OK("in-memory store (scores are lost on exit)")
	}

	// 4. Service and HTTP
	con.Section("Network")
	svc := leaderboard.NewService(store, log)
	hub := gonet.NewHub(cfg.Server.FeedQueueSize, cfg.Server.WriteTimeout, log)
	api := leaderboard.NewAPI(svc, hub, log)

	srv, err := gonet.NewServer(cfg.Server.BindAddress, api.Routes(), log)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.BindAddress, err)
	}
	con.Stat("Listening", srv.Addr().String())
	con.Ready("leaderboard ready")
	fmt.Println()

	// 5. Serve until a signal arrives or the listener fails.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Serve)
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		hub.CloseAll()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	log.Info("leaderboard stopped")
	return nil
}
