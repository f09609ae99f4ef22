package game

import (
	"context"
	"fmt"
	"time"

	"github.com/Garsondee/Raycaster/internal/config"
)

// TestSim is a headless harness around a Session used by tests and the
// headless report. It runs on a fixed clock (one tick = 1/TickRate seconds)
// and records every event in SimLog.
type TestSim struct {
	Session *Session
	SimLog  *SimLog

	cfg     config.Config
	verbose bool
	now     time.Time
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptWorld simOptionKind = iota // config, map, tunables, verbose; applied first
	simOptActor                      // player pose and enemies, applied to the resulting world
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithConfig starts from cfg instead of the defaults. The roster in cfg is
// kept.
func WithConfig(cfg config.Config) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.cfg = cfg
	}}
}

// WithMap replaces the grid. Rows are indexed [y][x].
func WithMap(rows [][]int) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.cfg.Map = rows
	}}
}

// WithTunables lets a test adjust any config value.
func WithTunables(fn func(*config.Config)) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		fn(&ts.cfg)
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.verbose = v
	}}
}

// WithPlayer places the player at (x, y) facing angle.
func WithPlayer(x, y, angle float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.cfg.Spawn = config.Spawn{X: x, Y: y, Angle: angle}
	}}
}

// WithEnemy adds an enemy to the roster.
func WithEnemy(x, y float64, health int) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.cfg.Roster = append(ts.cfg.Roster, config.EnemySpawn{X: x, Y: y, Health: health})
	}}
}

// NewTestSim builds a session from the default config with an empty roster,
// applying world options first and actor options second. It panics if the
// resulting config is invalid.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{cfg: config.Default(), now: time.Unix(0, 0)}
	ts.cfg.Roster = nil
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	ts.SimLog = NewSimLog(ts.verbose)
	s, err := NewSession(ts.cfg, WithSimLog(ts.SimLog), WithClock(ts.clock))
	if err != nil {
		panic(fmt.Sprintf("NewTestSim: %v", err))
	}
	ts.Session = s
	return ts
}

// clock advances exactly one tick period per call after the first, so
// Elapsed tracks ticks rather than wall time.
func (ts *TestSim) clock() time.Time {
	t := ts.now
	ts.now = ts.now.Add(time.Second / time.Duration(ts.cfg.TickRate))
	return t
}

// Step runs one tick with the given input.
func (ts *TestSim) Step(in Input) Outcome {
	return ts.Session.Step(in)
}

// RunTicks runs n ticks holding the same input, stopping early if the
// session ends.
func (ts *TestSim) RunTicks(n int, in Input) Outcome {
	return ts.RunWith(Hold(in), n)
}

// RunWith drives the session from src through the game loop for up to n
// ticks without sleeping.
func (ts *TestSim) RunWith(src InputSource, n int) Outcome {
	l := &Loop{Session: ts.Session, Input: src, MaxTicks: n}
	outcome, _ := l.Run(context.Background())
	return outcome
}

// RunUntil steps with in until predicate returns true or maxTicks elapse.
// It returns the tick at which the predicate fired, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, in Input, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Session.Step(in)
		if predicate(ts) {
			return ts.Session.Tick
		}
		if ts.Session.Outcome.Terminal() {
			break
		}
	}
	return -1
}

// Player returns the live player state.
func (ts *TestSim) Player() *Player { return &ts.Session.Player }

// Enemy returns the live enemy at index i.
func (ts *TestSim) Enemy(i int) *Enemy { return &ts.Session.Enemies[i] }

// Frame renders the current state.
func (ts *TestSim) Frame() Frame { return Render(&ts.Session.State, ts.Session.Config()) }
