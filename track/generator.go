package track

// Drift is the generator state carried between advances
type Drift struct {
	Offset    int // Left bound of the most recent segment
	Bias      int // Per-step offset change: -1, 0 or +1
	Remaining int // Steps left before a new bias is drawn
}

// Generator produces lane segments that wander left and right in runs
type Generator struct {
	columns  int
	width    int
	minSteps int
	maxSteps int
	rng      RandomSource
}

// NewGenerator creates a generator for the geometry in cfg
// cfg is assumed valid
func NewGenerator(cfg Config, rng RandomSource) *Generator {
	return &Generator{
		columns:  cfg.Columns,
		width:    cfg.TrackWidth,
		minSteps: cfg.BiasMinSteps,
		maxSteps: cfg.BiasMaxSteps,
		rng:      rng,
	}
}

// Advance computes the next segment from d and returns the updated drift
func (g *Generator) Advance(d Drift) (Drift, Segment) {
	if d.Remaining <= 0 {
		d.Bias = g.rng.IntN(3) - 1
		d.Remaining = g.minSteps + g.rng.IntN(g.maxSteps-g.minSteps+1)
	}

	d.Offset = max(1, min(g.columns-g.width-1, d.Offset+d.Bias))
	d.Remaining--

	return d, Segment{Left: d.Offset, Right: d.Offset + g.width}
}
