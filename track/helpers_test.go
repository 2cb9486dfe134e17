package track

import (
	"testing"
	"time"

	"github.com/lixenwraith/lane-racer/engine"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// constRand always yields v, clamped into range
// v=1 keeps the track straight, v=0 drifts left, v=2 drifts right
type constRand int

func (c constRand) IntN(n int) int {
	return min(int(c), n-1)
}

// scriptedRand replays values in order and fails the test when exhausted
type scriptedRand struct {
	t      *testing.T
	values []int
	pos    int
}

func (r *scriptedRand) IntN(n int) int {
	if r.pos >= len(r.values) {
		r.t.Fatalf("scriptedRand exhausted after %d draws", r.pos)
	}
	v := r.values[r.pos]
	r.pos++
	if v < 0 || v >= n {
		r.t.Fatalf("scripted value %d outside [0, %d)", v, n)
	}
	return v
}

func newTestSimulator(t *testing.T, cfg Config, rng RandomSource) (*Simulator, *engine.MockTimeProvider) {
	t.Helper()
	clock := engine.NewMockTimeProvider(testEpoch)
	sim, err := NewSimulator(cfg, rng, clock)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return sim, clock
}

// step runs exactly the next due step
func step(sim *Simulator) int {
	return sim.Tick(sim.NextDue())
}
