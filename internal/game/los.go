package game

// HasLineOfSight returns true if a straight march from `from` reaches within
// ArrivalTolerance of `to` before hitting a wall or leaving the grid.
func (tr Tracer) HasLineOfSight(from, to Vec2) bool {
	d := to.Sub(from)
	l := d.Len()
	if l < tr.ArrivalTolerance {
		return true
	}
	return tr.March(from, d.Scale(1/l), &to).Outcome == MarchArrived
}
