package game

import (
	"testing"

	"pgregory.net/rapid"
)

func TestLOS_ClearCorridor(t *testing.T) {
	tr := defaultTracer(t)
	if !tr.HasLineOfSight(Vec2{1.5, 1.5}, Vec2{12.5, 1.5}) {
		t.Fatal("expected clear LOS along the open top corridor")
	}
}

func TestLOS_BlockedByWall(t *testing.T) {
	tr := defaultTracer(t)
	// The diagonal passes through the wall column at x=2.
	if tr.HasLineOfSight(Vec2{3.5, 3.5}, Vec2{1.5, 1.5}) {
		t.Fatal("expected LOS blocked between (3.5,3.5) and (1.5,1.5)")
	}
}

func TestLOS_Symmetric_OnOpenLines(t *testing.T) {
	tr := defaultTracer(t)
	a, b := Vec2{1.5, 5.5}, Vec2{13.5, 5.5}
	if tr.HasLineOfSight(a, b) != tr.HasLineOfSight(b, a) {
		t.Fatal("LOS along a straight corridor should not depend on direction")
	}
}

func TestLOS_TargetOutsideGrid(t *testing.T) {
	tr := defaultTracer(t)
	if tr.HasLineOfSight(Vec2{1.5, 1.5}, Vec2{-5, 1.5}) {
		t.Fatal("a target beyond the border wall cannot be seen")
	}
}

func TestLOS_WithinToleranceIsVisible(t *testing.T) {
	tr := defaultTracer(t)
	if !tr.HasLineOfSight(Vec2{1.5, 1.5}, Vec2{1.55, 1.5}) {
		t.Fatal("points closer than the tolerance always see each other")
	}
}

func TestLOS_Reflexive(t *testing.T) {
	tr := defaultTracer(t)
	rapid.Check(t, func(rt *rapid.T) {
		p := Vec2{
			rapid.Float64Range(-2, float64(tr.Grid.Cols)+2).Draw(rt, "x"),
			rapid.Float64Range(-2, float64(tr.Grid.Rows)+2).Draw(rt, "y"),
		}
		if !tr.HasLineOfSight(p, p) {
			rt.Fatalf("HasLineOfSight(%s, %s) = false", p, p)
		}
	})
}
