package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Playfield colors
var (
	RgbGrass    = tcell.NewRGBColor(50, 205, 50)   // Lime green
	RgbAsphalt  = tcell.NewRGBColor(128, 128, 128) // Gray
	RgbKerbA    = tcell.NewRGBColor(255, 255, 255) // White
	RgbKerbB    = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbCar      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCarWreck = tcell.NewRGBColor(255, 0, 0)     // Red

	RgbHudBackground = tcell.NewRGBColor(0, 0, 0)
	RgbDistance      = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbHint          = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBanner        = tcell.NewRGBColor(0, 255, 255)   // Cyan
	RgbDebug         = tcell.NewRGBColor(200, 200, 200)
)

// Speed gauge endpoints, blended in HCL so the midpoint stays saturated
var (
	speedSlow = colorful.Color{R: 0.2, G: 0.8, B: 0.2}
	speedFast = colorful.Color{R: 1.0, G: 0.55, B: 0.0}
)

// SpeedColor returns the gauge color for ratio in [0, 1], 0 at start speed and 1 at max speed
func SpeedColor(ratio float64) tcell.Color {
	ratio = max(0, min(1, ratio))
	r, g, b := speedSlow.BlendHcl(speedFast, ratio).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// kerbColor alternates along the track; phase shifts it by one row each scroll
func kerbColor(row, phase int) tcell.Color {
	if (row+phase)&1 == 0 {
		return RgbKerbA
	}
	return RgbKerbB
}
