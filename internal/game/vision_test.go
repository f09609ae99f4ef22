package game

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func testView() View {
	return View{Eye: Vec2{5, 5}, Heading: 0, FOV: math.Pi / 3, Width: 800, Height: 600}
}

func TestView_ColumnAngleSpansFOV(t *testing.T) {
	v := testView()
	if got := v.ColumnAngle(0); math.Abs(got+v.FOV/2) > 1e-12 {
		t.Fatalf("column 0 angle = %f, want %f", got, -v.FOV/2)
	}
	if got := v.ColumnAngle(v.Width / 2); math.Abs(got) > 1e-12 {
		t.Fatalf("center column angle = %f, want 0", got)
	}
	last := v.ColumnAngle(v.Width - 1)
	if last >= v.FOV/2 || last <= 0 {
		t.Fatalf("last column angle %f should be just under %f", last, v.FOV/2)
	}
}

func TestView_ScreenXCentersStraightAhead(t *testing.T) {
	v := testView()
	if x := v.ScreenX(v.RelativeAngle(Vec2{9, 5})); x != v.Width/2 {
		t.Fatalf("straight ahead should map to column %d, got %d", v.Width/2, x)
	}
}

func TestView_RelativeAngleWrapsBehind(t *testing.T) {
	v := testView()
	v.Heading = 101 * math.Pi // many full turns, facing -x
	rel := v.RelativeAngle(Vec2{1, 5})
	if math.Abs(rel) > 1e-9 {
		t.Fatalf("target straight ahead after many turns: rel = %f", rel)
	}
	if behind := v.RelativeAngle(Vec2{9, 5}); math.Abs(math.Abs(behind)-math.Pi) > 1e-9 {
		t.Fatalf("target directly behind: rel = %f, want ±pi", behind)
	}
}

func TestNormalizeAngle_Range(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(-1e6, 1e6).Draw(rt, "a")
		n := normalizeAngle(a)
		if n < -math.Pi-1e-9 || n > math.Pi+1e-9 {
			rt.Fatalf("normalizeAngle(%f) = %f outside [-pi, pi]", a, n)
		}
		if d := math.Abs(math.Sin(n) - math.Sin(a)); d > 1e-6 {
			rt.Fatalf("normalizeAngle(%f) changed direction (sin diff %g)", a, d)
		}
	})
}
