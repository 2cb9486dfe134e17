package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lane-racer/track"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func straightSnapshot(rows int) track.Snapshot {
	segs := make([]track.Segment, rows)
	for i := range segs {
		segs[i] = track.Segment{Left: 30, Right: 50}
	}
	return track.Snapshot{
		Segments:  segs,
		Column:    40,
		Direction: track.DirNeutral,
		State:     track.StateRunning,
		Speed:     20,
		Columns:   80,
		Rows:      rows,
		NearRow:   1,
	}
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestDrawTrackLayout(t *testing.T) {
	screen := newScreen(t, 80, 25)
	NewRenderer(screen).Draw(straightSnapshot(24), HUD{})

	// Bottom line is the nearest segment
	y := 24
	cases := []struct {
		x    int
		want tcell.Color
	}{
		{0, RgbGrass},
		{29, RgbGrass},
		{30, RgbKerbA},
		{31, RgbAsphalt},
		{48, RgbAsphalt},
		{49, RgbKerbB},
		{50, RgbGrass},
		{79, RgbGrass},
	}
	for _, c := range cases {
		if got := background(screen, c.x, y); got != c.want {
			t.Errorf("bg at (%d,%d) = %v, want %v", c.x, y, got, c.want)
		}
	}

	// Kerbs alternate row by row
	if background(screen, 30, y-1) != RgbKerbB {
		t.Error("left kerb does not alternate on the next row")
	}
}

func TestDrawKerbPhaseShifts(t *testing.T) {
	screen := newScreen(t, 80, 25)
	snap := straightSnapshot(24)
	snap.KerbPhase = 1
	NewRenderer(screen).Draw(snap, HUD{})

	if background(screen, 30, 24) != RgbKerbB {
		t.Error("kerb phase 1 should start the nearest left kerb on the second color")
	}
}

func TestDrawCarOnNearRow(t *testing.T) {
	screen := newScreen(t, 80, 25)
	snap := straightSnapshot(24)
	snap.Direction = track.DirRight
	NewRenderer(screen).Draw(snap, HUD{})

	ch, _, style, _ := screen.GetContent(40, 23)
	if ch != carGlyphs[track.DirRight] {
		t.Errorf("car glyph = %q, want %q", ch, carGlyphs[track.DirRight])
	}
	if fg, _, _ := style.Decompose(); fg != RgbCar {
		t.Errorf("car color = %v, want %v", fg, RgbCar)
	}
}

func TestDrawCentersNarrowPlayfieldOnWideScreen(t *testing.T) {
	screen := newScreen(t, 100, 25)
	NewRenderer(screen).Draw(straightSnapshot(24), HUD{})

	// 10 column margin on each side
	if background(screen, 40, 24) != RgbKerbA {
		t.Errorf("left kerb not shifted to x=40: %v", background(screen, 40, 24))
	}
	if ch, _, _, _ := screen.GetContent(50, 23); ch != carGlyphs[track.DirNeutral] {
		t.Errorf("car not at x=50, got %q", ch)
	}
}

func TestDrawClipsRowsAboveHUD(t *testing.T) {
	screen := newScreen(t, 80, 10)
	NewRenderer(screen).Draw(straightSnapshot(60), HUD{})

	// Row 0 is the HUD, never grass
	if background(screen, 0, 0) != RgbHudBackground {
		t.Error("track overwrote the HUD row")
	}
	if background(screen, 0, 9) != RgbGrass {
		t.Error("nearest row missing")
	}
}

func TestDrawHUDText(t *testing.T) {
	screen := newScreen(t, 80, 25)
	snap := straightSnapshot(24)
	snap.Distance = 1234
	NewRenderer(screen).Draw(snap, HUD{Muted: true})

	line := rowText(screen, 0, 80)
	for _, want := range []string{"Speed: 72.0 km/h", "Distance: 1.234 km", "[muted]"} {
		if !strings.Contains(line, want) {
			t.Errorf("HUD %q missing %q", line, want)
		}
	}
}

func TestDrawCrashBanner(t *testing.T) {
	screen := newScreen(t, 80, 25)
	snap := straightSnapshot(24)
	snap.State = track.StateCrashed
	NewRenderer(screen).Draw(snap, HUD{})

	if line := rowText(screen, 12, 80); !strings.Contains(line, "you crashed!") {
		t.Errorf("banner row = %q", line)
	}
	_, _, style, _ := screen.GetContent(40, 23)
	if fg, _, _ := style.Decompose(); fg != RgbCarWreck {
		t.Errorf("wrecked car color = %v", fg)
	}
	if !strings.Contains(rowText(screen, 0, 80), "space to restart") {
		t.Error("crash hint missing")
	}
}

func TestDrawPausedHint(t *testing.T) {
	screen := newScreen(t, 80, 25)
	snap := straightSnapshot(24)
	snap.State = track.StatePaused
	NewRenderer(screen).Draw(snap, HUD{})

	if !strings.Contains(rowText(screen, 0, 80), "PAUSED") {
		t.Error("paused hint missing")
	}
}

func TestDrawDebugOverlay(t *testing.T) {
	screen := newScreen(t, 80, 25)
	NewRenderer(screen).Draw(straightSnapshot(24), HUD{Debug: []string{"loop.frames=3", "race.distance=9"}})

	if got := rowText(screen, 1, 13); got != "loop.frames=3" {
		t.Errorf("overlay row 1 = %q", got)
	}
	if got := rowText(screen, 2, 15); got != "race.distance=9" {
		t.Errorf("overlay row 2 = %q", got)
	}
}

func TestSpeedColorEndpoints(t *testing.T) {
	slow := SpeedColor(0)
	fast := SpeedColor(1)
	if slow == fast {
		t.Fatal("gauge endpoints should differ")
	}
	if SpeedColor(-1) != slow || SpeedColor(2) != fast {
		t.Error("ratio not clamped")
	}
	r, g, _ := fast.RGB()
	if r < g {
		t.Errorf("fast color should lean red/orange, got r=%d g=%d", r, g)
	}
}

func TestStatusHintElapsed(t *testing.T) {
	snap := straightSnapshot(2)
	snap.Elapsed = 75_500_000_000 // 1m15.5s
	if got := statusHint(snap); got != "1:15.5" {
		t.Errorf("hint = %q, want 1:15.5", got)
	}
}
