package game

import "math"

// MarchOutcome says why a ray march stopped.
type MarchOutcome int

const (
	MarchHitWall  MarchOutcome = iota // entered a solid tile
	MarchLeftGrid                     // stepped outside the grid
	MarchArrived                      // came within tolerance of the target
)

func (o MarchOutcome) String() string {
	switch o {
	case MarchHitWall:
		return "hit_wall"
	case MarchLeftGrid:
		return "left_grid"
	case MarchArrived:
		return "arrived"
	default:
		return "unknown"
	}
}

// MarchResult describes where and why a march ended.
type MarchResult struct {
	Outcome  MarchOutcome
	Distance float64  // origin to End; +Inf when the ray left the grid
	Tile     TileCode // the wall hit, TileEmpty otherwise
	End      Vec2
}

// Tracer marches rays through a grid in fixed increments of Step world
// units. It backs both wall casting and line-of-sight so the two can never
// disagree about what blocks a ray.
type Tracer struct {
	Grid             *GridMap
	Step             float64
	ArrivalTolerance float64
}

// March advances from origin along the unit vector dir until it hits a
// wall, leaves the grid or, when target is non-nil, arrives at the target.
// Only destination points are tested; the origin cell itself never blocks.
func (tr Tracer) March(origin, dir Vec2, target *Vec2) MarchResult {
	if !origin.IsFinite() || !dir.IsFinite() || tr.Step <= 0 {
		return MarchResult{Outcome: MarchLeftGrid, Distance: math.Inf(1), End: origin}
	}
	if target != nil && origin.Dist(*target) < tr.ArrivalTolerance {
		return MarchResult{Outcome: MarchArrived, End: origin}
	}
	step := dir.Scale(tr.Step)
	for i := 1; ; i++ {
		// Scale from the origin rather than accumulating, so long rays do not
		// drift.
		p := origin.Add(step.Scale(float64(i)))
		tile, ok := tr.Grid.TileAt(p)
		if !ok {
			return MarchResult{Outcome: MarchLeftGrid, Distance: math.Inf(1), End: p}
		}
		if tile.IsSolid() {
			return MarchResult{Outcome: MarchHitWall, Distance: p.Dist(origin), Tile: tile, End: p}
		}
		if target != nil && p.Dist(*target) < tr.ArrivalTolerance {
			return MarchResult{Outcome: MarchArrived, Distance: p.Dist(origin), End: p}
		}
	}
}

// Cast fires a ray at angle from origin and returns the distance to the
// first wall and its tile code. A ray that leaves the grid reports
// (+Inf, TileEmpty).
func (tr Tracer) Cast(origin Vec2, angle float64) (float64, TileCode) {
	r := tr.March(origin, Heading(angle), nil)
	if r.Outcome != MarchHitWall {
		return math.Inf(1), TileEmpty
	}
	return r.Distance, r.Tile
}
