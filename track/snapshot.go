package track

import "time"

// Snapshot is a read-only copy of the simulator for renderers
// Segments does not alias simulator memory
type Snapshot struct {
	Segments  []Segment // Nearest first
	Column    int
	Direction Direction
	State     State
	Speed     float64 // Steps per second, one step is one metre
	Distance  int     // Steps since reset
	Elapsed   time.Duration
	KerbPhase int // 0 or 1, flips each time the track scrolls

	Columns int
	Rows    int
	NearRow int
}

// SpeedKMH converts speed to km/h
func (s Snapshot) SpeedKMH() float64 {
	return s.Speed * 3.6
}

// DistanceKM converts distance to kilometres
func (s Snapshot) DistanceKM() float64 {
	return float64(s.Distance) / 1000.0
}

// NearSegment returns the segment the car is checked against
func (s Snapshot) NearSegment() Segment {
	return s.Segments[s.NearRow]
}
