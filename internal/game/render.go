package game

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/Garsondee/Raycaster/internal/config"
)

var (
	backgroundColour = colornames.Black
	wallColour       = colornames.White
	enemyColour      = colornames.Red
	bulletColour     = colornames.Red
	healthColour     = colornames.Red
	hudTextColour    = colornames.White
	weaponColour     = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Weapon sprite and HUD placement, in pixels.
const (
	weaponX      = 50
	weaponBottom = 100 // distance of the sprite's top edge from the screen bottom
	weaponSize   = 50
	healthBarX   = 10
	healthBarY   = 10
	healthBarH   = 20
	hudTextX     = 10
	hudTimeY     = 40
	hudKillsY    = 58
)

// Rect is a filled screen-space rectangle.
type Rect struct {
	X, Y, W, H int
	Color      color.RGBA
}

// TextLine is HUD text for the frontend's font renderer; (X, Y) is the top
// left of the line.
type TextLine struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

// Frame is one tick's draw intents, in paint order.
type Frame struct {
	Width, Height int
	Rects         []Rect
	Text          []TextLine
}

// Render projects the state onto the screen described by cfg. It reads the
// state and never modifies it. Paint order: background, wall columns,
// enemies, weapon, bullets, health bar, HUD text. Enemies are not depth
// tested against walls and always draw over them.
func Render(st *State, cfg config.Config) Frame {
	sc := cfg.Screen
	w, h := sc.Width, sc.Height
	f := Frame{
		Width:  w,
		Height: h,
		Rects:  make([]Rect, 0, w+len(st.Enemies)+len(st.Bullets)+4),
	}
	f.Rects = append(f.Rects, Rect{0, 0, w, h, backgroundColour})

	view := View{Eye: st.Player.Pos, Heading: st.Player.Angle, FOV: sc.FOV(), Width: w, Height: h}
	tracer := Tracer{Grid: st.Grid, Step: cfg.Ray.Step, ArrivalTolerance: cfg.Ray.LOSTolerance}

	for x := 0; x < w; x++ {
		dist, _ := tracer.Cast(view.Eye, view.ColumnAngle(x))
		colH := projectHeight(h, dist, sc.WallEpsilon)
		if colH == 0 {
			continue
		}
		f.Rects = append(f.Rects, Rect{x, h/2 - colH/2, 1, colH, wallColour})
	}

	for i := range st.Enemies {
		e := &st.Enemies[i]
		if !e.Alive() {
			continue
		}
		size := projectHeight(h, view.Eye.Dist(e.Pos), sc.WallEpsilon)
		sx := view.ScreenX(view.RelativeAngle(e.Pos))
		f.Rects = append(f.Rects, Rect{sx, h/2 - size/2, sc.EnemyWidth, size, enemyColour})
	}

	f.Rects = append(f.Rects, Rect{weaponX, h - weaponBottom, weaponSize, weaponSize, weaponColour})

	for _, b := range st.Bullets {
		rel := b.Pos.Sub(view.Eye)
		sx := int(rel.X*sc.BulletScale + float64(w)/2)
		sy := int(rel.Y*sc.BulletScale + float64(h)/2)
		f.Rects = append(f.Rects, Rect{sx, sy, sc.BulletSize, sc.BulletSize, bulletColour})
	}

	if barW := st.Player.Health * sc.HealthBarScale; barW > 0 {
		f.Rects = append(f.Rects, Rect{healthBarX, healthBarY, barW, healthBarH, healthColour})
	}

	f.Text = []TextLine{
		{hudTextX, hudTimeY, fmt.Sprintf("Time: %ds", int(st.Elapsed.Seconds())), hudTextColour},
		{hudTextX, hudKillsY, fmt.Sprintf("Kills: %d", st.Kills), hudTextColour},
	}
	return f
}

// projectHeight is the on-screen height of something dist units away:
// screenH / (dist + eps), clamped to the screen. Anything taller than the
// screen would be cropped to it anyway.
func projectHeight(screenH int, dist, eps float64) int {
	if math.IsInf(dist, 1) || math.IsNaN(dist) {
		return 0
	}
	v := float64(screenH) / (dist + eps)
	if v >= float64(screenH) {
		return screenH
	}
	return int(v)
}
