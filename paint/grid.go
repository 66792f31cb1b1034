package paint

import (
	"image/color"
	"time"

	"github.com/fogleman/gg"
)

const (
	// GridInterval is how often the grid advances one phase.
	GridInterval = 50 * time.Millisecond
	// GridStep is the spacing between grid lines in pixels.
	GridStep = 30
	// GridPhases is where the phase counter wraps.
	GridPhases = 360
)

var (
	gridEdge = color.NRGBA{R: 10, G: 12, B: 16, A: 0xff}
	gridMid  = color.NRGBA{R: 15, G: 18, B: 24, A: 0xff}
	gridLine = color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 10}
)

// Grid is the window background: a dark diagonal gradient crossed by two
// families of slanted lines that drift with the phase.
type Grid struct {
	phase int
}

// Advance moves the grid one phase forward.
func (g *Grid) Advance() {
	g.phase = (g.phase + 1) % GridPhases
}

// Phase returns the current phase, in [0, GridPhases).
func (g *Grid) Phase() int {
	return g.phase
}

func (g *Grid) Draw(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())

	bg := gg.NewLinearGradient(0, 0, w, h)
	bg.AddColorStop(0, gridEdge)
	bg.AddColorStop(0.5, gridMid)
	bg.AddColorStop(1, gridEdge)
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// lines repeat every step, so shifting by phase mod step scrolls forever
	// without a seam; the extra two steps on each side cover the slant.
	const step = float64(GridStep)
	off := float64(g.phase % GridStep)

	dc.SetColor(gridLine)
	dc.SetLineWidth(1)
	for x := -2 * step; x <= w+2*step; x += step {
		dc.DrawLine(x+off, 0, x+off-2*step, h)
	}
	for y := -2 * step; y <= h+2*step; y += step {
		dc.DrawLine(0, y+off, w, y+off-2*step)
	}
	dc.Stroke()
}
