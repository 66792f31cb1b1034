package paint

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	// GlitchInterval is how often the title rolls for a glitch.
	GlitchInterval = 100 * time.Millisecond
	// GlitchChance is the per-tick probability of a glitch frame.
	GlitchChance = 0.05
)

var (
	ghostRed  = color.NRGBA{R: 255, G: 50, B: 50, A: 0xff}
	ghostBlue = color.NRGBA{R: 50, G: 50, B: 255, A: 0xff}
)

// Glitch is the title: gradient text with a soft glow that, now and then,
// splits into red and blue copies shifted sideways.
type Glitch struct {
	Text string

	face font.Face
	rnd  *rand.Rand

	offset int
	alpha  uint8
}

// NewGlitch creates a title of size points. rnd drives the glitch; nil
// seeds one from the clock.
func NewGlitch(text string, size float64, rnd *rand.Rand) *Glitch {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Glitch{
		Text: text,
		face: newFace(size),
		rnd:  rnd,
	}
}

// Tick rolls the next frame: with GlitchChance the copies get an offset in
// {-1, 0, 1} and an alpha in [50, 100], otherwise both reset to zero. It
// reports whether the frame differs from the previous one.
func (g *Glitch) Tick() bool {
	prevOffset, prevAlpha := g.offset, g.alpha

	if g.rnd.Float64() < GlitchChance {
		g.offset = g.rnd.Intn(3) - 1
		g.alpha = uint8(50 + g.rnd.Intn(51))
	} else {
		g.offset, g.alpha = 0, 0
	}

	return g.offset != prevOffset || g.alpha != prevAlpha
}

// Offset is the current sideways shift of the red copy.
func (g *Glitch) Offset() int {
	return g.offset
}

// Alpha is the current opacity of both copies.
func (g *Glitch) Alpha() uint8 {
	return g.alpha
}

func (g *Glitch) Draw(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	cx, cy := w/2, h/2
	dc.SetFontFace(g.face)

	g.glow(dc, cx, cy, 4, 30)
	g.glow(dc, cx, cy, 2, 50)
	g.fill(dc, cx, cy)

	if g.offset == 0 {
		return
	}

	dx := float64(g.offset)
	dc.SetColor(withAlpha(ghostRed, g.alpha))
	dc.DrawStringAnchored(g.Text, cx+dx, cy, 0.5, 0.5)
	dc.SetColor(withAlpha(ghostBlue, g.alpha))
	dc.DrawStringAnchored(g.Text, cx-dx, cy, 0.5, 0.5)
}

// glow stamps the text around a ring of the given radius.
func (g *Glitch) glow(dc *gg.Context, cx, cy, radius float64, alpha uint8) {
	dc.SetColor(withAlpha(Accent, alpha))
	for _, d := range [][2]float64{
		{-radius, 0}, {radius, 0}, {0, -radius}, {0, radius},
		{-radius, -radius}, {radius, radius}, {-radius, radius}, {radius, -radius},
	} {
		dc.DrawStringAnchored(g.Text, cx+d[0], cy+d[1], 0.5, 0.5)
	}
}

// fill paints the text with the accent-cyan-accent gradient by using the
// glyphs as a mask.
func (g *Glitch) fill(dc *gg.Context, cx, cy float64) {
	w, h := float64(dc.Width()), float64(dc.Height())

	glyphs := gg.NewContext(dc.Width(), dc.Height())
	glyphs.SetFontFace(g.face)
	glyphs.SetColor(color.White)
	glyphs.DrawStringAnchored(g.Text, cx, cy, 0.5, 0.5)

	if err := dc.SetMask(glyphs.AsMask()); err != nil {
		dc.SetColor(Accent)
		dc.DrawStringAnchored(g.Text, cx, cy, 0.5, 0.5)
		return
	}
	defer dc.ResetClip()

	grad := gg.NewLinearGradient(0, 0, w, 0)
	grad.AddColorStop(0, Accent)
	grad.AddColorStop(0.5, Cyan)
	grad.AddColorStop(1, Accent)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}
