package game

// Outcome is the session's terminal state, or OutcomeRunning while it plays.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeQuit
	OutcomeDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeQuit:
		return "quit"
	case OutcomeDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool {
	return o != OutcomeRunning
}
