package game

import (
	"math"

	"github.com/Garsondee/Raycaster/internal/config"
)

// Player is the camera and avatar. Angle accumulates without wrapping; every
// consumer goes through sin/cos or normalizeAngle.
type Player struct {
	Pos    Vec2
	Angle  float64 // radians
	Speed  float64 // signed, world units per tick along Angle
	Health int
}

// Update applies one tick of movement and rotation. It reports whether the
// move was rejected by a wall, in which case the speed has been cut to
// ±MinSpeed.
func (p *Player) Update(in Input, grid *GridMap, cfg config.PlayerConfig) (bumped bool) {
	switch cfg.Movement {
	case config.MovementConstant:
		p.Speed = constantSpeed(in, cfg)
	default:
		p.Speed = accelerate(p.Speed, in, cfg)
	}

	if p.Speed != 0 {
		next := p.Pos.Add(Heading(p.Angle).Scale(p.Speed))
		if grid.IsPassable(next) {
			p.Pos = next
		} else {
			bumped = true
			p.Speed = math.Copysign(cfg.MinSpeed, p.Speed)
		}
	}

	if in.TurnLeft {
		p.Angle -= cfg.RotationSpeed
	}
	if in.TurnRight {
		p.Angle += cfg.RotationSpeed
	}
	return bumped
}

// accelerate ramps speed while a direction is held (forward wins over back)
// and relaxes it toward zero, without overshooting, when neither is.
func accelerate(speed float64, in Input, cfg config.PlayerConfig) float64 {
	switch {
	case in.Forward:
		speed += cfg.Acceleration
	case in.Backward:
		speed -= cfg.Acceleration
	case speed > 0:
		speed = math.Max(0, speed-cfg.Deceleration)
	case speed < 0:
		speed = math.Min(0, speed+cfg.Deceleration)
	}
	return clampSpeed(speed, cfg.MaxSpeed)
}

func constantSpeed(in Input, cfg config.PlayerConfig) float64 {
	switch {
	case in.Forward:
		return cfg.MaxSpeed
	case in.Backward:
		return -cfg.MaxSpeed
	default:
		return 0
	}
}

func clampSpeed(speed, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, speed))
}
