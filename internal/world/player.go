package world

import (
	"image/color"
	"math"

	"github.com/rangeshot/rangeshot/internal/physics"
	"github.com/rangeshot/rangeshot/internal/scene"
	"github.com/rangeshot/rangeshot/internal/vmath"
)

// Movement key codes, named after the browser KeyboardEvent.code values.
const (
	KeyW = "KeyW"
	KeyA = "KeyA"
	KeyS = "KeyS"
	KeyD = "KeyD"
)

// KeyState is a snapshot of held keys.
type KeyState map[string]bool

var (
	// Weapon placement in camera space, and the muzzle tip in weapon space.
	weaponOffset = vmath.Vec3{X: 0.2, Y: -0.2, Z: -0.5}
	muzzleOffset = vmath.Vec3{X: 0.2, Y: -0.2, Z: -1}
	weaponSize   = vmath.Vec3{X: 0.1, Y: 0.1, Z: 0.5}
	weaponColor  = color.RGBA{A: 0xff}
)

type PlayerConfig struct {
	MoveSpeed     float64
	Radius        float64
	Mass          float64
	LinearDamping float64
	Spawn         vmath.Vec3
	Sensitivity   float64 // radians per pixel of mouse movement
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MoveSpeed:     5,
		Radius:        0.5,
		Mass:          1,
		LinearDamping: 0.9,
		Spawn:         vmath.Vec3{Y: 1.6, Z: 5},
		Sensitivity:   0.002,
	}
}

// PlayerController turns key state into body velocity, keeps the camera on
// the body, and owns the Unlocked/Active state. The game is active exactly
// while the pointer is locked.
type PlayerController struct {
	physics Physics
	scene   Scene
	shell   Shell
	camera  *scene.Camera
	cfg     PlayerConfig

	Body   physics.BodyID
	weapon scene.Handle
	anchor vmath.Vec3 // look-controller origin, follows the body

	moveIntent vmath.Vec3
	locked     bool
}

// NewPlayerController adds the player body and weapon visual and enters the
// Unlocked state.
func NewPlayerController(ph Physics, sc Scene, shell Shell, cam *scene.Camera, cfg PlayerConfig) *PlayerController {
	p := &PlayerController{
		physics: ph,
		scene:   sc,
		shell:   shell,
		camera:  cam,
		cfg:     cfg,
		anchor:  cfg.Spawn,
	}
	cam.Position = cfg.Spawn
	p.Body = ph.AddBody(physics.BodyDesc{
		Mass:          cfg.Mass,
		Shape:         physics.Sphere(cfg.Radius),
		Position:      cfg.Spawn,
		LinearDamping: cfg.LinearDamping,
	})
	p.weapon = sc.Add(scene.Visual{
		Kind:    scene.KindBox,
		Size:    weaponSize,
		Color:   weaponColor,
		Opacity: 1,
	}, scene.Transform{})
	p.placeWeapon()
	p.enterUnlocked()
	return p
}

// Lock handles "pointer lock acquired". Repeated locks are ignored.
func (p *PlayerController) Lock() {
	if p.locked {
		return
	}
	p.locked = true
	p.shell.SetMenuVisible(false)
	p.shell.SetCrosshairVisible(true)
	p.shell.SetExitHintVisible(true)
}

// Unlock handles "pointer lock released". Repeated unlocks are ignored.
func (p *PlayerController) Unlock() {
	if !p.locked {
		return
	}
	p.locked = false
	p.enterUnlocked()
}

func (p *PlayerController) enterUnlocked() {
	p.shell.SetMenuVisible(true)
	p.shell.SetCrosshairVisible(false)
	p.shell.SetExitHintVisible(false)
}

// Active reports whether gameplay is running.
func (p *PlayerController) Active() bool { return p.locked }

// MoveIntent maps held keys to a velocity. Axes are independent and the
// result is not normalized, so diagonals are faster than straight moves.
func (p *PlayerController) MoveIntent(keys KeyState) vmath.Vec3 {
	var v vmath.Vec3
	if keys[KeyW] {
		v.Z -= p.cfg.MoveSpeed
	}
	if keys[KeyS] {
		v.Z += p.cfg.MoveSpeed
	}
	if keys[KeyA] {
		v.X -= p.cfg.MoveSpeed
	}
	if keys[KeyD] {
		v.X += p.cfg.MoveSpeed
	}
	return v
}

// ApplyMovement writes the intent to the body, keeping its vertical
// velocity so gravity keeps integrating.
func (p *PlayerController) ApplyMovement(keys KeyState) {
	p.moveIntent = p.MoveIntent(keys)
	vy := p.physics.Velocity(p.Body).Y
	p.physics.SetVelocity(p.Body, vmath.Vec3{X: p.moveIntent.X, Y: vy, Z: p.moveIntent.Z})
}

// SyncCamera copies the body position onto the camera and the look anchor.
// Called after the physics step.
func (p *PlayerController) SyncCamera() {
	pos := p.physics.Position(p.Body)
	p.camera.Position = pos
	p.anchor = pos
	p.placeWeapon()
}

// Look turns the camera by a mouse movement in pixels. Pitch is clamped so
// the view never flips over the vertical.
func (p *PlayerController) Look(dx, dy float64) {
	p.camera.Yaw -= dx * p.cfg.Sensitivity
	p.camera.Pitch -= dy * p.cfg.Sensitivity
	p.camera.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, p.camera.Pitch))
	p.placeWeapon()
}

// MuzzleTip returns the weapon tip in world space.
func (p *PlayerController) MuzzleTip() vmath.Vec3 {
	local := weaponOffset.Add(muzzleOffset)
	return p.camera.Position.Add(p.camera.Orientation().Rotate(local))
}

func (p *PlayerController) placeWeapon() {
	rot := p.camera.Orientation()
	p.scene.SetTransform(p.weapon, p.camera.Position.Add(rot.Rotate(weaponOffset)), rot)
}

func (p *PlayerController) Camera() *scene.Camera { return p.camera }

func (p *PlayerController) Anchor() vmath.Vec3 { return p.anchor }

func (p *PlayerController) Intent() vmath.Vec3 { return p.moveIntent }
