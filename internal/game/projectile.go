package game

import "math"

// Bullet is a projectile in world space. It has no heading of its own: every
// tick it travels along the player's current facing.
type Bullet struct {
	Pos Vec2
}

func (s *Session) fire() {
	s.Bullets = append(s.Bullets, Bullet{Pos: s.Player.Pos})
	s.simLog.Add(s.Tick, "P", "player", "fire", s.Player.Pos.String(), float64(len(s.Bullets)))
}

// updateBullets advances every bullet and drops those that left the grid or,
// when bullet damage is enabled, struck a living enemy.
func (s *Session) updateBullets() {
	cfg := s.cfg.Bullet
	step := Heading(s.Player.Angle).Scale(cfg.Speed)
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		from := b.Pos
		b.Pos = b.Pos.Add(step)
		if cfg.Damage > 0 && s.bulletHit(from, b.Pos) {
			continue
		}
		if !s.Grid.Contains(b.Pos) {
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

// bulletHit damages the first living enemy the swept segment from-to passes
// within HitRadius of.
func (s *Session) bulletHit(from, to Vec2) bool {
	cfg := s.cfg.Bullet
	best := -1
	bestDist := math.Inf(1)
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive() || distToSegment(e.Pos, from, to) >= cfg.HitRadius {
			continue
		}
		if d := from.Dist(e.Pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return false
	}
	s.Enemies[best].Damage(cfg.Damage)
	s.simLog.Add(s.Tick, enemyLabel(best), "enemy", "hit", s.Enemies[best].Pos.String(), float64(s.Enemies[best].Health))
	s.retire(best)
	return true
}
