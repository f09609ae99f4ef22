package game

import (
	"testing"

	"github.com/Garsondee/Raycaster/internal/config"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// --- Scenario: Pursuit Down A Corridor ---

func TestScenario_PursuitDownCorridor(t *testing.T) {
	t.Log("=== TestScenario_PursuitDownCorridor ===")
	t.Log("--- Setup: player at the west end of the top corridor, one enemy 8 tiles east ---")

	ts := NewTestSim(
		WithVerbose(true),
		WithPlayer(1.5, 1.5, 0),
		WithEnemy(9.5, 1.5, 100),
	)

	// 8 units at 0.02 per tick closes to contact range in under 400 ticks.
	tick := ts.RunUntil(func(ts *TestSim) bool {
		return ts.SimLog.CountCategory("enemy", "contact") > 0
	}, Input{}, 500)
	dumpLog(t, ts)

	if tick < 0 {
		t.Fatal("enemy never reached the player")
	}
	if tick < 370 || tick > 380 {
		t.Fatalf("first contact at tick %d, expected around 375", tick)
	}
	if n := ts.SimLog.CountCategory("enemy", "advance"); n != tick {
		t.Fatalf("expected one advance per tick, got %d over %d ticks", n, tick)
	}
}

// --- Scenario: Wall Shields The Player ---

func TestScenario_WallShieldsPlayer(t *testing.T) {
	t.Log("=== TestScenario_WallShieldsPlayer ===")
	t.Log("--- Setup: enemy inside the inner ring, player outside it ---")

	ts := NewTestSim(
		WithPlayer(1.5, 1.5, 0),
		WithEnemy(3.5, 3.5, 100),
	)
	ts.RunTicks(300, Input{})

	if got := ts.Enemy(0).Pos; got != (Vec2{3.5, 3.5}) {
		t.Fatalf("enemy without line of sight moved to %s", got)
	}
	if ts.Player().Health != 100 {
		t.Fatalf("player took damage through a wall: %d", ts.Player().Health)
	}
}

// --- Scenario: Overrun ---

func TestScenario_Overrun(t *testing.T) {
	t.Log("=== TestScenario_Overrun ===")
	t.Log("--- Setup: player pinned between two enemies in contact range ---")

	ts := NewTestSim(
		WithPlayer(5.5, 1.5, 0),
		WithEnemy(5.2, 1.5, 100),
		WithEnemy(5.8, 1.5, 100),
	)
	out := ts.RunTicks(100, Input{})
	dumpLog(t, ts)

	if out != OutcomeDefeated {
		t.Fatalf("outcome = %s, want defeated", out)
	}
	// Two contacts per tick at 10 damage each: five ticks to empty 100 health.
	if ts.Session.Tick != 5 {
		t.Fatalf("defeated at tick %d, want 5", ts.Session.Tick)
	}
	if ts.Player().Health != 0 {
		t.Fatalf("health = %d, want 0", ts.Player().Health)
	}
	last, ok := ts.SimLog.LastOf("session", "defeated")
	if !ok || last.Tick != 5 {
		t.Fatalf("missing or misplaced defeated event: %+v", last)
	}
}

// --- Scenario: Scripted Run Invariants ---

func TestScenario_ScriptedRunInvariants(t *testing.T) {
	t.Log("=== TestScenario_ScriptedRunInvariants ===")
	t.Log("--- Setup: default map and roster, bullets armed, scripted pseudo-player ---")

	cfg := config.Default()
	cfg.Bullet.Damage = 25
	for seed := int64(1); seed <= 5; seed++ {
		ts := NewTestSim(WithConfig(cfg))
		src := NewScriptedInput(seed, 0.1)
		prevKills := 0
		for i := 0; i < 900 && !ts.Session.Outcome.Terminal(); i++ {
			ts.Step(src.Poll())

			p := ts.Player()
			if !ts.Session.Grid.IsPassable(p.Pos) {
				t.Fatalf("seed %d tick %d: player inside a wall at %s", seed, ts.Session.Tick, p.Pos)
			}
			if p.Health < 0 || p.Health > cfg.Player.Health {
				t.Fatalf("seed %d tick %d: health %d out of range", seed, ts.Session.Tick, p.Health)
			}
			if ts.Session.Kills < prevKills || ts.Session.Kills > len(ts.Session.Enemies) {
				t.Fatalf("seed %d tick %d: kills %d inconsistent", seed, ts.Session.Tick, ts.Session.Kills)
			}
			prevKills = ts.Session.Kills
			for _, b := range ts.Session.Bullets {
				if !ts.Session.Grid.Contains(b.Pos) {
					t.Fatalf("seed %d tick %d: bullet kept outside the grid at %s", seed, ts.Session.Tick, b.Pos)
				}
			}
		}
		dead := 0
		for _, e := range ts.Session.Enemies {
			if e.State == EnemyDead {
				dead++
			}
		}
		if dead != ts.Session.Kills {
			t.Fatalf("seed %d: %d dead enemies but %d kills", seed, dead, ts.Session.Kills)
		}
		t.Logf("seed %d: %s", seed, ts.Session.Summary())
	}
}
