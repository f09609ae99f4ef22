package game

import "fmt"

// EnemyState is the lifecycle tag of an enemy. Dead enemies stay in the
// roster so indices remain stable, but nothing reads them again.
type EnemyState int

const (
	EnemyAlive EnemyState = iota
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy is a pursuer. Its identity is its index in State.Enemies.
type Enemy struct {
	Pos    Vec2
	Health int
	State  EnemyState
}

// Alive is the single liveness predicate used by movement, contact damage,
// bullet hits and rendering.
func (e *Enemy) Alive() bool {
	return e.State == EnemyAlive && e.Health > 0
}

// Damage lowers health. The session retires a depleted enemy and counts the
// kill.
func (e *Enemy) Damage(n int) {
	if !e.Alive() {
		return
	}
	e.Health -= n
}

// settle tags a depleted enemy as dead. It returns true only on the call that
// performs the transition, so a kill is counted once.
func (e *Enemy) settle() bool {
	if e.State == EnemyAlive && e.Health <= 0 {
		e.State = EnemyDead
		return true
	}
	return false
}

// retire settles enemy i and counts the kill if it just died. Bullet hits
// call it at once so a kill is never lost when the session ends mid-tick.
func (s *Session) retire(i int) {
	e := &s.Enemies[i]
	if !e.settle() {
		return
	}
	s.Kills++
	s.simLog.Add(s.Tick, enemyLabel(i), "enemy", "killed", e.Pos.String(), float64(s.Kills))
}

func enemyLabel(i int) string {
	return fmt.Sprintf("E%d", i)
}

// updateEnemies runs the pursuit step for every enemy: retire the depleted,
// advance on the player when in line of sight, then apply contact damage.
// It returns true as soon as the player's health reaches zero; enemies later
// in the roster do not act on that tick.
func (s *Session) updateEnemies() (defeated bool) {
	cfg := s.cfg.Enemy
	p := &s.Player
	for i := range s.Enemies {
		e := &s.Enemies[i]
		s.retire(i)
		if !e.Alive() {
			continue
		}

		toPlayer := p.Pos.Sub(e.Pos)
		if dist := toPlayer.Len(); dist > 0 && s.tracer.HasLineOfSight(e.Pos, p.Pos) {
			next := e.Pos.Add(toPlayer.Scale(cfg.Speed / dist))
			if s.Grid.IsPassable(next) {
				e.Pos = next
				s.simLog.AddVerbose(s.Tick, enemyLabel(i), "enemy", "advance", e.Pos.String(), dist)
			}
		}

		if e.Pos.Dist(p.Pos) < cfg.ContactRadius {
			p.Health -= cfg.Damage
			if p.Health < 0 {
				p.Health = 0
			}
			s.simLog.Add(s.Tick, enemyLabel(i), "enemy", "contact", fmt.Sprintf("player hp %d", p.Health), float64(cfg.Damage))
			if p.Health <= 0 {
				return true
			}
		}
	}
	return false
}
