package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when RANGESHOT_CONFIG is unset.
const DefaultPath = "config/rangeshot.toml"

type Config struct {
	Game        GameConfig        `toml:"game"`
	Window      WindowConfig      `toml:"window"`
	Player      PlayerConfig      `toml:"player"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logging     LoggingConfig     `toml:"logging"`
}

type GameConfig struct {
	TargetCount int     `toml:"target_count"`
	SpawnExtent float64 `toml:"spawn_extent"` // side of the square targets spawn in
	Seed        int64   `toml:"seed"`         // 0 = seed from the clock
	ModelList   string  `toml:"model_list"`
	AssetRoot   string  `toml:"asset_root"`
	ScriptsDir  string  `toml:"scripts_dir"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type PlayerConfig struct {
	Name             string  `toml:"name"` // leaderboard name; empty disables submission
	MoveSpeed        float64 `toml:"move_speed"`
	MouseSensitivity float64 `toml:"mouse_sensitivity"`
}

// LeaderboardConfig is the game's view of the score service.
type LeaderboardConfig struct {
	URL     string        `toml:"url"` // empty disables the leaderboard
	Timeout time.Duration `toml:"timeout"`
}

// ServerConfig is the score service's listener.
type ServerConfig struct {
	BindAddress     string        `toml:"bind_address"`
	FeedQueueSize   int           `toml:"feed_queue_size"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	DSN             string        `toml:"dsn"` // empty = in-memory store
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Path returns the config file location, honouring RANGESHOT_CONFIG.
func Path() string {
	if p := os.Getenv("RANGESHOT_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets the environment (usually a .env file) override the
// per-machine settings.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RANGESHOT_PLAYER_NAME"); v != "" {
		cfg.Player.Name = v
	}
	if v := os.Getenv("RANGESHOT_LEADERBOARD_URL"); v != "" {
		cfg.Leaderboard.URL = v
	}
	if v := os.Getenv("RANGESHOT_DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("RANGESHOT_BIND_ADDRESS"); v != "" {
		cfg.Server.BindAddress = v
	}
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			TargetCount: 20,
			SpawnExtent: 80,
			ModelList:   "data/yaml/model_list.yaml",
			AssetRoot:   ".",
			ScriptsDir:  "scripts",
		},
		Window: WindowConfig{
			Title:  "rangeshot",
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			MoveSpeed:        5,
			MouseSensitivity: 0.002,
		},
		Leaderboard: LeaderboardConfig{
			Timeout: 5 * time.Second,
		},
		Server: ServerConfig{
			BindAddress:     "0.0.0.0:8080",
			FeedQueueSize:   16,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
