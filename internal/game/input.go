package game

import "math/rand"

// Input is one tick's worth of player intent. Directions are level-triggered
// (held); Fire and Quit are edge-triggered and should be true for one tick
// per press.
type Input struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
	Fire      bool
	Quit      bool
}

// InputSource yields the input snapshot for the next tick.
type InputSource interface {
	Poll() Input
}

// Hold replays the same input every tick.
type Hold Input

func (h Hold) Poll() Input { return Input(h) }

// ScriptedInput is a seeded pseudo-player for headless runs. It holds a
// random movement/turn combination for a random number of ticks, then picks
// another, and pulls the trigger with probability FireRate each tick.
type ScriptedInput struct {
	FireRate float64
	rng      *rand.Rand
	current  Input
	hold     int
}

func NewScriptedInput(seed int64, fireRate float64) *ScriptedInput {
	return &ScriptedInput{
		FireRate: fireRate,
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- scripted play only
	}
}

func (s *ScriptedInput) Poll() Input {
	if s.hold <= 0 {
		s.current = Input{}
		switch s.rng.Intn(4) {
		case 0, 1:
			s.current.Forward = true
		case 2:
			s.current.Backward = true
		}
		switch s.rng.Intn(3) {
		case 0:
			s.current.TurnLeft = true
		case 1:
			s.current.TurnRight = true
		}
		s.hold = 5 + s.rng.Intn(40)
	}
	s.hold--
	in := s.current
	in.Fire = s.rng.Float64() < s.FireRate
	return in
}
