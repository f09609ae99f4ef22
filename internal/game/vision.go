package game

import "math"

// View is the camera the renderer projects through: the player's eye with a
// horizontal field of view spread across a screen of Width x Height pixels.
type View struct {
	Eye     Vec2
	Heading float64 // radians, 0 = +x, pi/2 = +y
	FOV     float64 // radians, total arc width
	Width   int
	Height  int
}

// ColumnAngle returns the ray angle for screen column x, interpolated
// linearly across the field of view.
func (v View) ColumnAngle(x int) float64 {
	return v.Heading - v.FOV/2 + float64(x)/float64(v.Width)*v.FOV
}

// RelativeAngle returns the angle of p off the view heading, wrapped to
// [-pi, pi].
func (v View) RelativeAngle(p Vec2) float64 {
	return normalizeAngle(HeadingTo(v.Eye, p) - v.Heading)
}

// ScreenX maps an angle off the heading to a screen column. Angles outside
// the field of view land off screen.
func (v View) ScreenX(rel float64) int {
	return int(rel/v.FOV*float64(v.Width) + float64(v.Width)/2)
}

// HeadingTo returns the angle in radians from o toward t.
func HeadingTo(o, t Vec2) float64 {
	return math.Atan2(t.Y-o.Y, t.X-o.X)
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
