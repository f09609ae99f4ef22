// Package screen is the ebiten window frontend: it turns keyboard state into
// game.Input, steps the session once per ebiten tick and paints the frame the
// renderer produces.
package screen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Raycaster/internal/config"
	"github.com/Garsondee/Raycaster/internal/game"
)

// Game implements ebiten.Game around one session. ebiten's TPS must be set
// to the session's tick rate so that one Update is one simulation tick.
type Game struct {
	session  *game.Session
	reloads  <-chan config.Config
	copyText func(string) error
	logger   *slog.Logger

	frame game.Frame
	face  text.Face
}

// Option customises a Game.
type Option func(*Game)

// WithReloads applies every config received on ch to the running session
// between ticks.
func WithReloads(ch <-chan config.Config) Option {
	return func(g *Game) { g.reloads = ch }
}

// WithLogger sets the logger for frontend messages.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(g *Game) { g.copyText = fn }
}

// New wraps s for ebiten.RunGame.
func New(s *game.Session, opts ...Option) *Game {
	g := &Game{
		session:  s,
		copyText: clipboard.WriteAll,
		logger:   slog.Default(),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	for _, o := range opts {
		o(g)
	}
	g.frame = game.Render(&s.State, s.Config())
	return g
}

// Update runs one simulation tick. It returns ebiten.Termination once the
// session has ended so RunGame returns cleanly.
func (g *Game) Update() error {
	g.applyReloads()

	in := inputFor(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if inpututil.IsKeyJustPressed(copyKey) {
		g.copySummary()
	}

	if g.session.Step(in).Terminal() {
		return ebiten.Termination
	}
	return g.Present(game.Render(&g.session.State, g.session.Config()))
}

// Present stores fr for the next Draw.
func (g *Game) Present(fr game.Frame) error {
	g.frame = fr
	return nil
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			if err := g.session.Reconfigure(context.Background(), cfg); err != nil {
				g.logger.Warn("config reload rejected", "error", err)
			}
		default:
			return
		}
	}
}

func (g *Game) copySummary() {
	sum := g.session.Summary()
	if err := g.copyText(sum); err != nil {
		g.logger.Warn("clipboard copy failed", "error", err)
		return
	}
	g.logger.Info("summary copied to clipboard", "session_id", g.session.ID)
}

// Draw paints the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, r := range g.frame.Rects {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
	}
	for _, line := range g.frame.Text {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(line.X), float64(line.Y))
		op.ColorScale.ScaleWithColor(line.Color)
		text.Draw(screen, line.Text, g.face, op)
	}
}

// Layout pins the logical screen to the configured resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	sc := g.session.Config().Screen
	return sc.Width, sc.Height
}

// Title is the window title for the session.
func Title(s *game.Session) string {
	return fmt.Sprintf("Raycaster [%s]", s.ID.String()[:8])
}
