package config

import (
	"errors"
	"fmt"
	"math"
)

// MovementProfile selects how forward/back input turns into player speed.
type MovementProfile string

const (
	// MovementAccelerate ramps speed by Acceleration per tick and relaxes it by
	// Deceleration when no direction is held.
	MovementAccelerate MovementProfile = "accelerate"
	// MovementConstant snaps speed to ±MaxSpeed while a direction is held and to
	// zero otherwise.
	MovementConstant MovementProfile = "constant"
)

var (
	ErrEmptyMap        = errors.New("map has no tiles")
	ErrNotRectangular  = errors.New("map rows differ in length")
	ErrSpawnBlocked    = errors.New("spawn is not on a passable tile")
	ErrBadScreen       = errors.New("screen size must be positive")
	ErrBadFOV          = errors.New("fov must be within (0, 180) degrees")
	ErrBadSpeed        = errors.New("player speeds must satisfy 0 <= min <= max")
	ErrBadRayStep      = errors.New("ray step must be positive")
	ErrBadLOSTolerance = errors.New("los tolerance must be at least the ray step")
	ErrBadTickRate     = errors.New("tick rate must be positive")
	ErrBadRoster       = errors.New("roster enemy is invalid")
	ErrBadMovement     = errors.New("unknown movement profile")
	ErrBadHealth       = errors.New("player health must be positive")
	ErrBadDamage       = errors.New("damage must not be negative")
	ErrBadBulletSpeed  = errors.New("bullet speed must be positive")
)

// Config is one complete session setup: tunables plus the static world.
type Config struct {
	TickRate int          `yaml:"tick_rate"`
	Screen   ScreenConfig `yaml:"screen"`
	Player   PlayerConfig `yaml:"player"`
	Enemy    EnemyConfig  `yaml:"enemy"`
	Bullet   BulletConfig `yaml:"bullet"`
	Ray      RayConfig    `yaml:"ray"`
	Spawn    Spawn        `yaml:"spawn"`
	Roster   []EnemySpawn `yaml:"roster"`
	Map      [][]int      `yaml:"map"`
}

type ScreenConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	FOVDegrees     float64 `yaml:"fov_degrees"`
	WallEpsilon    float64 `yaml:"wall_epsilon"`
	EnemyWidth     int     `yaml:"enemy_width"`
	BulletSize     int     `yaml:"bullet_size"`
	BulletScale    float64 `yaml:"bullet_scale"` // pixels per world unit
	HealthBarScale int     `yaml:"health_bar_scale"`
}

// FOV returns the horizontal field of view in radians.
func (s ScreenConfig) FOV() float64 {
	return s.FOVDegrees * math.Pi / 180.0
}

type PlayerConfig struct {
	Movement      MovementProfile `yaml:"movement"`
	MinSpeed      float64         `yaml:"min_speed"` // speed kept after bumping a wall
	MaxSpeed      float64         `yaml:"max_speed"`
	Acceleration  float64         `yaml:"acceleration"`
	Deceleration  float64         `yaml:"deceleration"`
	RotationSpeed float64         `yaml:"rotation_speed"` // radians per tick
	Health        int             `yaml:"health"`
}

type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	Damage        int     `yaml:"damage"`
	ContactRadius float64 `yaml:"contact_radius"`
}

// BulletConfig tunes projectiles. Damage 0 disables bullet hits entirely.
type BulletConfig struct {
	Speed     float64 `yaml:"speed"`
	Damage    int     `yaml:"damage"`
	HitRadius float64 `yaml:"hit_radius"`
}

type RayConfig struct {
	Step         float64 `yaml:"step"`
	LOSTolerance float64 `yaml:"los_tolerance"`
}

type Spawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

type EnemySpawn struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Health int     `yaml:"health"`
}

// Validate reports the first problem that would make a session unplayable.
func (c *Config) Validate() error {
	if len(c.Map) == 0 || len(c.Map[0]) == 0 {
		return ErrEmptyMap
	}
	cols := len(c.Map[0])
	for i, row := range c.Map {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d tiles, want %d: %w", i, len(row), cols, ErrNotRectangular)
		}
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return ErrBadScreen
	}
	if c.Screen.FOVDegrees <= 0 || c.Screen.FOVDegrees >= 180 {
		return ErrBadFOV
	}
	p := c.Player
	if p.MinSpeed < 0 || p.MinSpeed > p.MaxSpeed {
		return ErrBadSpeed
	}
	if p.Health <= 0 {
		return ErrBadHealth
	}
	if c.Enemy.Damage < 0 || c.Bullet.Damage < 0 {
		return ErrBadDamage
	}
	if c.Bullet.Speed <= 0 {
		return ErrBadBulletSpeed
	}
	switch p.Movement {
	case MovementAccelerate, MovementConstant:
	default:
		return fmt.Errorf("%q: %w", p.Movement, ErrBadMovement)
	}
	if c.Ray.Step <= 0 {
		return ErrBadRayStep
	}
	if c.Ray.LOSTolerance < c.Ray.Step {
		return ErrBadLOSTolerance
	}
	if c.TickRate <= 0 {
		return ErrBadTickRate
	}
	if !c.passable(c.Spawn.X, c.Spawn.Y) {
		return fmt.Errorf("spawn (%.2f, %.2f): %w", c.Spawn.X, c.Spawn.Y, ErrSpawnBlocked)
	}
	for i, e := range c.Roster {
		if e.Health <= 0 {
			return fmt.Errorf("enemy %d health %d: %w", i, e.Health, ErrBadRoster)
		}
		if !c.passable(e.X, e.Y) {
			return fmt.Errorf("enemy %d at (%.2f, %.2f) is inside a wall: %w", i, e.X, e.Y, ErrBadRoster)
		}
	}
	return nil
}

func (c *Config) passable(x, y float64) bool {
	col, row := int(math.Floor(x)), int(math.Floor(y))
	if row < 0 || row >= len(c.Map) || col < 0 || col >= len(c.Map[row]) {
		return false
	}
	return c.Map[row][col] == 0
}
