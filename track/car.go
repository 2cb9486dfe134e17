package track

// Direction is the steering input held by the player
type Direction int8

const (
	DirLeft    Direction = -1
	DirNeutral Direction = 0
	DirRight   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "neutral"
	}
}

// updateCar checks the near row for an off-track car, then moves one cell
// Returns false and enters Crashed when the car has left the lane
func (s *Simulator) updateCar() bool {
	if !s.track.At(s.cfg.NearRow).Contains(s.column) {
		s.state = StateCrashed
		return false
	}

	switch {
	case s.direction == DirLeft && s.column > 0:
		s.column--
	case s.direction == DirRight && s.column < s.cfg.Columns-1:
		s.column++
	}

	return true
}
