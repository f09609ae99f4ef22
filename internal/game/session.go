package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Garsondee/Raycaster/internal/config"
)

// State is everything one play session owns. Each subsystem mutates it only
// from Session.Step, in a fixed order.
type State struct {
	ID      uuid.UUID
	Grid    *GridMap
	Player  Player
	Enemies []Enemy
	Bullets []Bullet
	Kills   int
	Tick    int
	Elapsed time.Duration
	Outcome Outcome
}

// Session drives a State one fixed-rate tick at a time.
type Session struct {
	State

	cfg    config.Config
	tracer Tracer
	simLog *SimLog
	logger *slog.Logger
	clock  func() time.Time
	start  time.Time
}

// SessionOption customises a Session at construction.
type SessionOption func(*Session)

// WithClock replaces time.Now for elapsed-time accounting.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.clock = now }
}

// WithSimLog records simulation events into l.
func WithSimLog(l *SimLog) SessionOption {
	return func(s *Session) { s.simLog = l }
}

// WithLogger sets the structured logger for session lifecycle messages.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// NewSession validates cfg and builds a fresh session from its map, spawn
// point and enemy roster.
func NewSession(cfg config.Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: invalid config: %w", err)
	}
	grid, err := NewGridMap(cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("game: build map: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		simLog: NewSimLog(false),
		logger: slog.Default(),
		clock:  time.Now,
	}
	for _, o := range opts {
		o(s)
	}

	s.State = State{
		ID:   uuid.New(),
		Grid: grid,
		Player: Player{
			Pos:    Vec2{cfg.Spawn.X, cfg.Spawn.Y},
			Angle:  cfg.Spawn.Angle,
			Health: cfg.Player.Health,
		},
		Enemies: make([]Enemy, 0, len(cfg.Roster)),
	}
	for _, r := range cfg.Roster {
		s.Enemies = append(s.Enemies, Enemy{Pos: Vec2{r.X, r.Y}, Health: r.Health})
	}
	s.tracer = Tracer{Grid: grid, Step: cfg.Ray.Step, ArrivalTolerance: cfg.Ray.LOSTolerance}
	s.start = s.clock()

	s.simLog.Add(0, "--", "session", "start", s.ID.String(), float64(len(s.Enemies)))
	s.logger.Debug("session started",
		"session_id", s.ID,
		"map", fmt.Sprintf("%dx%d", grid.Cols, grid.Rows),
		"enemies", len(s.Enemies))
	return s, nil
}

// Config returns the configuration the session is currently running with.
func (s *Session) Config() config.Config { return s.cfg }

// Tracer returns the ray tracer bound to the session's grid.
func (s *Session) Tracer() Tracer { return s.tracer }

// SimLog returns the session's event log.
func (s *Session) SimLog() *SimLog { return s.simLog }

// Step runs one tick: quit check, fire, player, projectiles, enemies. Once
// the session has ended, Step does nothing and returns the final outcome.
func (s *Session) Step(in Input) Outcome {
	if s.Outcome.Terminal() {
		return s.Outcome
	}
	s.Tick++
	s.Elapsed = s.clock().Sub(s.start)

	if in.Quit {
		s.finish(OutcomeQuit)
		return s.Outcome
	}
	if in.Fire {
		s.fire()
	}
	if s.Player.Update(in, s.Grid, s.cfg.Player) {
		s.simLog.Add(s.Tick, "P", "player", "bump", s.Player.Pos.String(), s.Player.Speed)
	}
	s.updateBullets()
	if s.updateEnemies() {
		s.finish(OutcomeDefeated)
	}
	return s.Outcome
}

func (s *Session) finish(o Outcome) {
	s.Outcome = o
	s.simLog.Add(s.Tick, "--", "session", o.String(), fmt.Sprintf("kills %d", s.Kills), float64(s.Tick))
	s.logger.Info("session ended",
		"session_id", s.ID,
		"outcome", o.String(),
		"ticks", s.Tick,
		"kills", s.Kills,
		"health", s.Player.Health)
}

// Reconfigure swaps in new tunables between ticks. The map, spawn point,
// roster and tick rate of the running session are kept; the frontend has
// already fixed its cadence from the tick rate.
func (s *Session) Reconfigure(ctx context.Context, next config.Config) error {
	next.TickRate = s.cfg.TickRate
	next.Map = s.cfg.Map
	next.Spawn = s.cfg.Spawn
	next.Roster = s.cfg.Roster
	if err := next.Validate(); err != nil {
		return fmt.Errorf("game: reconfigure: %w", err)
	}
	s.cfg = next
	s.tracer.Step = next.Ray.Step
	s.tracer.ArrivalTolerance = next.Ray.LOSTolerance
	s.logger.InfoContext(ctx, "tunables reloaded", "session_id", s.ID, "tick", s.Tick)
	return nil
}

// Summary is a one-line human-readable status.
func (s *Session) Summary() string {
	return fmt.Sprintf("session %s tick=%d time=%ds kills=%d health=%d pos=%s outcome=%s",
		s.ID, s.Tick, int(s.Elapsed.Seconds()), s.Kills, s.Player.Health, s.Player.Pos, s.Outcome)
}
