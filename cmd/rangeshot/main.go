package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rangeshot/rangeshot/internal/config"
	"github.com/rangeshot/rangeshot/internal/core/event"
	"github.com/rangeshot/rangeshot/internal/data"
	"github.com/rangeshot/rangeshot/internal/handler"
	"github.com/rangeshot/rangeshot/internal/host"
	"github.com/rangeshot/rangeshot/internal/leaderboard"
	"github.com/rangeshot/rangeshot/internal/logging"
	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/render"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/scripting"
	"github.com/rangeshot/rangeshot/internal/system"
	"github.com/rangeshot/rangeshot/internal/world"
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
	con.Banner("RANGESHOT", "target range")

	// 3. Scoring rules
	con.Section("Scripts")
	scorer, err := scripting.NewEngine(cfg.Game.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer scorer.Close()
	con.OK("score rules loaded")

	// 4. World
	con.Section("World")
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bus := event.NewBus()
	graph := scene.NewGraph()
	phys := physics.NewWorld(physics.DefaultGravity)
	renderer := render.NewRenderer(graph, cfg.Window.Width, cfg.Window.Height)
	board := &handler.Scoreboard{}
	game := host.New(bus, renderer, board, log)

	cam := scene.NewCamera(float64(cfg.Window.Width) / float64(cfg.Window.Height))
	wcfg := world.DefaultConfig()
	wcfg.Targets.Count = cfg.Game.TargetCount
	wcfg.Targets.Extent = cfg.Game.SpawnExtent
	wcfg.Player.MoveSpeed = cfg.Player.MoveSpeed
	wcfg.Player.Sensitivity = cfg.Player.MouseSensitivity
	session := world.NewSession(wcfg, phys, graph, game, &cam, rng, log)
	con.Stat("Targets", session.Targets.Len())
	con.Stat("Seed", seed)

	// 5. Leaderboard
	con.Section("Leaderboard")
	var scores handler.ScoreService
	if cfg.Leaderboard.URL != "" {
		scores = leaderboard.NewClient(cfg.Leaderboard.URL, cfg.Leaderboard.Timeout)
		con.Stat("Service", cfg.Leaderboard.URL)
		if cfg.Player.Name == "" {
			con.Stat("Submissions", "off (no player name)")
		} else {
			con.Stat("Player", cfg.Player.Name)
		}
	} else {
		con.Stat("Service", "off")
	}

	deps := &handler.Deps{
		Session:       session,
		Bus:           bus,
		Viewport:      game,
		Scorer:        scorer,
		Scores:        scores,
		Board:         board,
		PlayerName:    cfg.Player.Name,
		ScoresTimeout: cfg.Leaderboard.Timeout,
		Log:           log,
	}
	handler.RegisterAll(bus, deps)

	if scores != nil {
		board.Pending = true
		go fetchTop(scores, bus, cfg.Leaderboard.Timeout, log)
	}

	// 6. Models load in the background and join the world as they finish.
	con.Section("Models")
	entries, err := data.LoadModelList(cfg.Game.ModelList)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		con.Stat("Models", 0)
	case err != nil:
		return fmt.Errorf("load model list: %w", err)
	default:
		loader := data.NewLoader(cfg.Game.AssetRoot, rng, log)
		loader.LoadAll(entries, func(m data.LoadedModel) {
			event.Emit(bus, event.ModelLoaded{Model: m})
		})
		con.Stat("Models", len(entries))
	}

	// 7. Run
	loop := system.NewLoop(session, bus, game, graph, log)
	game.Attach(&cam, loop)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	con.Ready("click the window to start")
	fmt.Println()

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("game closed")
	return nil
}

// fetchTop loads the leaderboard once for the start menu.
func fetchTop(scores handler.ScoreService, bus *event.Bus, timeout time.Duration, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	top, err := scores.GetTopScores(ctx)
	if err != nil {
		log.Warn("leaderboard fetch failed", zap.Error(err))
	}
	event.Emit(bus, event.LeaderboardLoaded{Scores: top})
}
