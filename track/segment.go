package track

// Segment is the drivable span of one track row, Left inclusive and Right exclusive
type Segment struct {
	Left  int
	Right int
}

// Width returns the number of drivable columns in the segment
func (s Segment) Width() int {
	return s.Right - s.Left
}

// Contains reports whether column lies on the drivable span
func (s Segment) Contains(column int) bool {
	return column >= s.Left && column < s.Right
}

// Track is a fixed-capacity ring of segments ordered nearest (index 0) to farthest
// Pushing onto a full track evicts the nearest segment, scrolling the road toward the car
type Track struct {
	buf   []Segment
	head  int
	count int
}

// NewTrack creates an empty track holding at most capacity segments
func NewTrack(capacity int) *Track {
	return &Track{
		buf: make([]Segment, capacity),
	}
}

// Len returns the number of segments currently held
func (t *Track) Len() int {
	return t.count
}

// Cap returns the visible-row capacity
func (t *Track) Cap() int {
	return len(t.buf)
}

// At returns the segment i rows away from the car row origin
// Panics if i is out of range, same as slice indexing
func (t *Track) At(i int) Segment {
	if i < 0 || i >= t.count {
		panic("track: segment index out of range")
	}
	return t.buf[(t.head+i)%len(t.buf)]
}

// Push appends s at the far end and reports whether the nearest segment was evicted
func (t *Track) Push(s Segment) bool {
	if t.count < len(t.buf) {
		t.buf[(t.head+t.count)%len(t.buf)] = s
		t.count++
		return false
	}

	// Full: the oldest slot becomes the newest
	t.buf[t.head] = s
	t.head = (t.head + 1) % len(t.buf)
	return true
}

// Reset drops all segments without releasing the buffer
func (t *Track) Reset() {
	t.head = 0
	t.count = 0
}

// AppendTo appends the segments nearest-first to dst and returns the extended slice
func (t *Track) AppendTo(dst []Segment) []Segment {
	for i := 0; i < t.count; i++ {
		dst = append(dst, t.buf[(t.head+i)%len(t.buf)])
	}
	return dst
}
