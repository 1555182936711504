package world

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
	"go.uber.org/zap"
)

var groundColor = color.RGBA{R: 0x4c, G: 0x8c, B: 0x4c, A: 0xff}

type Config struct {
	Targets    TargetConfig
	Player     PlayerConfig
	GroundSize float64
}

func DefaultConfig() Config {
	return Config{
		Targets:    DefaultTargetConfig(),
		Player:     DefaultPlayerConfig(),
		GroundSize: 100,
	}
}

// Session is one running game: it owns the targets, the effects, the player
// and the obstacles. Body memory stays with the physics world.
type Session struct {
	Physics   Physics
	Scene     Scene
	Camera    *scene.Camera
	Effects   *EffectPool
	Targets   *TargetRegistry
	Player    *PlayerController
	Shooter   *Shooter
	Obstacles *Obstacles
	Stats     RoundStats

	Ground     scene.Handle
	GroundBody physics.BodyID

	log *zap.Logger
}

// NewSession builds the ground, the player and the initial target field.
// The session starts Unlocked.
func NewSession(cfg Config, ph Physics, sc Scene, shell Shell, cam *scene.Camera, rng *rand.Rand, log *zap.Logger) *Session {
	s := &Session{
		Physics: ph,
		Scene:   sc,
		Camera:  cam,
		log:     log,
	}

	// The plane's normal is its local +Z; tip it onto the floor.
	floor := vmath.QuatFromAxisAngle(vmath.Vec3{X: 1}, -math.Pi/2)
	s.Ground = sc.Add(scene.Visual{
		Kind:    scene.KindPlane,
		Size:    vmath.Vec3{X: cfg.GroundSize, Y: cfg.GroundSize},
		Color:   groundColor,
		Opacity: 1,
	}, scene.Transform{Orientation: floor})
	s.GroundBody = ph.AddBody(physics.BodyDesc{
		Mass:        0,
		Shape:       physics.Plane(),
		Orientation: floor,
	})

	s.Effects = NewEffectPool(sc, rng)
	s.Targets = NewTargetRegistry(ph, sc, rng, cfg.Targets)
	s.Targets.Fill()
	s.Player = NewPlayerController(ph, sc, shell, cam, cfg.Player)
	s.Obstacles = NewObstacles(ph, sc)
	s.Shooter = NewShooter(s.Player, s.Targets, s.Effects, sc, &s.Stats, log)

	log.Info("session ready",
		zap.Int("targets", s.Targets.Len()),
		zap.Float64("ground", cfg.GroundSize))
	return s
}

func (s *Session) Active() bool { return s.Player.Active() }

// Lock starts a round.
func (s *Session) Lock() {
	if s.Player.Active() {
		return
	}
	s.Stats.Reset()
	s.Player.Lock()
}

// Unlock ends the round and returns its stats. ok is false if no round was
// running.
func (s *Session) Unlock() (stats RoundStats, ok bool) {
	if !s.Player.Active() {
		return RoundStats{}, false
	}
	s.Player.Unlock()
	return s.Stats, true
}
