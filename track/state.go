package track

// State is the simulation lifecycle state
type State uint8

const (
	StatePaused State = iota
	StateRunning
	StateCrashed
)

var stateNames = [...]string{
	StatePaused:  "paused",
	StateRunning: "running",
	StateCrashed: "crashed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
