package game

import (
	"math"
	"testing"

	"github.com/Garsondee/Raycaster/internal/config"
)

func TestBullet_SpawnsAtPlayerAndTravels(t *testing.T) {
	ts := NewTestSim(WithPlayer(1.5, 1.5, 0))
	ts.Step(Input{Fire: true})
	if len(ts.Session.Bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(ts.Session.Bullets))
	}
	if got := ts.Session.Bullets[0].Pos; got != (Vec2{6.5, 1.5}) {
		t.Fatalf("bullet after one tick at %s, want (6.50, 1.50)", got)
	}
	ts.Step(Input{})
	if got := ts.Session.Bullets[0].Pos; got != (Vec2{11.5, 1.5}) {
		t.Fatalf("bullet after two ticks at %s, want (11.50, 1.50)", got)
	}
	if n := ts.SimLog.CountCategory("player", "fire"); n != 1 {
		t.Fatalf("expected one fire event, got %d", n)
	}
}

func TestBullet_RemovedOutsideGrid(t *testing.T) {
	ts := NewTestSim(WithPlayer(1.5, 1.5, 0))
	ts.Step(Input{Fire: true})
	ts.RunTicks(2, Input{})
	if len(ts.Session.Bullets) != 0 {
		t.Fatalf("bullet past the east edge should be dropped, have %v", ts.Session.Bullets)
	}
}

func TestBullet_PassesThroughWalls(t *testing.T) {
	// Only the grid edge removes bullets; interior walls do not.
	ts := NewTestSim(WithPlayer(1.5, 1.5, math.Pi/2))
	ts.Step(Input{Fire: true})
	if len(ts.Session.Bullets) != 1 {
		t.Fatalf("bullet inside the grid should survive, have %d", len(ts.Session.Bullets))
	}
	if got := ts.Session.Bullets[0].Pos; math.Abs(got.Y-6.5) > 1e-9 {
		t.Fatalf("bullet at %s, want y=6.5", got)
	}
}

func TestBullet_FollowsCurrentFacing(t *testing.T) {
	ts := NewTestSim(WithPlayer(1.5, 1.5, 0))
	ts.Step(Input{Fire: true})
	ts.Player().Angle = math.Pi / 2
	ts.Step(Input{})
	got := ts.Session.Bullets[0].Pos
	if math.Abs(got.X-6.5) > 1e-9 || math.Abs(got.Y-6.5) > 1e-9 {
		t.Fatalf("bullet should turn with the player, at %s want (6.50, 6.50)", got)
	}
}

func TestBullet_NoDamageByDefault(t *testing.T) {
	ts := NewTestSim(WithPlayer(1.5, 1.5, 0), WithEnemy(4.5, 1.5, 100))
	ts.Step(Input{Fire: true})
	ts.Step(Input{})
	if hp := ts.Enemy(0).Health; hp != 100 {
		t.Fatalf("bullets should be cosmetic by default, enemy health %d", hp)
	}
}

func TestBullet_DamageKillsAndCounts(t *testing.T) {
	ts := NewTestSim(
		WithTunables(func(c *config.Config) { c.Bullet.Damage = 100 }),
		WithPlayer(1.5, 1.5, 0),
		WithEnemy(4.5, 1.5, 100),
	)
	ts.Step(Input{Fire: true})
	if len(ts.Session.Bullets) != 0 {
		t.Fatal("a bullet that hits should be consumed")
	}
	if hp := ts.Enemy(0).Health; hp != 0 {
		t.Fatalf("enemy health after hit = %d, want 0", hp)
	}
	ts.Step(Input{})
	if ts.Session.Kills != 1 {
		t.Fatalf("kills = %d, want 1", ts.Session.Kills)
	}
	if !ts.SimLog.HasEntry("enemy", "hit", "") {
		t.Fatal("expected a hit event in the sim log")
	}
}

func TestBullet_HitsNearestEnemy(t *testing.T) {
	ts := NewTestSim(
		WithTunables(func(c *config.Config) { c.Bullet.Damage = 50 }),
		WithPlayer(1.5, 1.5, 0),
		WithEnemy(5.5, 1.5, 100),
		WithEnemy(3.5, 1.5, 100),
	)
	ts.Step(Input{Fire: true})
	if ts.Enemy(1).Health != 50 || ts.Enemy(0).Health != 100 {
		t.Fatalf("expected only the nearer enemy hit, health %d / %d",
			ts.Enemy(0).Health, ts.Enemy(1).Health)
	}
}
