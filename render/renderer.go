package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lane-racer/track"
)

// HudRows is the number of screen rows above the playfield
const HudRows = 1

// Car glyphs by steering direction, leaning into the turn
var carGlyphs = map[track.Direction]rune{
	track.DirLeft:    '◤',
	track.DirNeutral: '▲',
	track.DirRight:   '◥',
}

// HUD carries shell state drawn alongside the snapshot
type HUD struct {
	SpeedRatio float64  // 0 at start speed, 1 at max speed
	Muted      bool     // Audio muted or unavailable
	Debug      []string // Metric lines; nil hides the overlay
}

// Renderer draws track snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one complete frame
func (r *Renderer) Draw(snap track.Snapshot, hud HUD) {
	r.screen.Clear()
	width, height := r.screen.Size()
	originX := max(0, (width-snap.Columns)/2)

	r.drawTrack(snap, originX, height)
	r.drawCar(snap, originX, height)
	r.drawHUD(snap, hud, width)

	if snap.State == track.StateCrashed {
		r.drawBanner("you crashed!", width, height)
	}
	if hud.Debug != nil {
		r.drawDebug(hud.Debug, height)
	}

	r.screen.Show()
}

// rowY maps a track index to a screen row; the nearest segment sits on the bottom line
func rowY(i, height int) int {
	return height - 1 - i
}

// cellStyle returns the background for column x of segment seg at track index row
func cellStyle(seg track.Segment, x, row, kerbPhase int) tcell.Style {
	var bg tcell.Color
	switch {
	case x < seg.Left || x >= seg.Right:
		bg = RgbGrass
	case x == seg.Left:
		bg = kerbColor(row, kerbPhase)
	case x == seg.Right-1:
		bg = kerbColor(row+1, kerbPhase)
	default:
		bg = RgbAsphalt
	}
	return tcell.StyleDefault.Background(bg)
}

func (r *Renderer) drawTrack(snap track.Snapshot, originX, height int) {
	for i, seg := range snap.Segments {
		y := rowY(i, height)
		if y < HudRows {
			break
		}
		for x := 0; x < snap.Columns; x++ {
			r.screen.SetContent(originX+x, y, ' ', nil, cellStyle(seg, x, i, snap.KerbPhase))
		}
	}
}

func (r *Renderer) drawCar(snap track.Snapshot, originX, height int) {
	if snap.NearRow >= len(snap.Segments) {
		return
	}
	y := rowY(snap.NearRow, height)
	if y < HudRows {
		return
	}

	style := cellStyle(snap.NearSegment(), snap.Column, snap.NearRow, snap.KerbPhase)
	if snap.State == track.StateCrashed {
		style = style.Foreground(RgbCarWreck).Bold(true)
	} else {
		style = style.Foreground(RgbCar)
	}
	r.screen.SetContent(originX+snap.Column, y, carGlyphs[snap.Direction], nil, style)
}

func (r *Renderer) drawHUD(snap track.Snapshot, hud HUD, width int) {
	base := tcell.StyleDefault.Background(RgbHudBackground)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, base)
	}

	speed := fmt.Sprintf("Speed: %.1f km/h", snap.SpeedKMH())
	r.drawText(1, 0, speed, base.Foreground(SpeedColor(hud.SpeedRatio)).Bold(true))

	dist := fmt.Sprintf("Distance: %.3f km", snap.DistanceKM())
	r.drawText(width-1-runewidth.StringWidth(dist), 0, dist, base.Foreground(RgbDistance).Bold(true))

	hint := statusHint(snap)
	if hud.Muted {
		hint += "  [muted]"
	}
	r.drawText((width-runewidth.StringWidth(hint))/2, 0, hint, base.Foreground(RgbHint))
}

// statusHint is the centre HUD text for the current state
func statusHint(snap track.Snapshot) string {
	switch snap.State {
	case track.StatePaused:
		return "PAUSED  arrows or space to drive"
	case track.StateCrashed:
		return "space to restart"
	default:
		secs := snap.Elapsed.Seconds()
		return fmt.Sprintf("%d:%04.1f", int(secs)/60, secs-float64(int(secs)/60*60))
	}
}

func (r *Renderer) drawBanner(text string, width, height int) {
	padded := "  " + text + "  "
	x := (width - runewidth.StringWidth(padded)) / 2
	style := tcell.StyleDefault.Background(RgbHudBackground).Foreground(RgbBanner).Bold(true)
	r.drawText(x, height/2, padded, style)
}

func (r *Renderer) drawDebug(lines []string, height int) {
	style := tcell.StyleDefault.Background(RgbHudBackground).Foreground(RgbDebug)
	for i, line := range lines {
		y := HudRows + i
		if y >= height {
			return
		}
		r.drawText(0, y, line, style)
	}
}

// drawText writes s starting at x, advancing by display width and clipping at the left edge
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
}

// Sync redraws the whole screen after a resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}
