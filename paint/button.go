package paint

import (
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	ButtonHeight       = 50
	ButtonGlowIdle     = 15.0
	ButtonGlowHover    = 25.0
	ButtonGlowDuration = 200 * time.Millisecond

	// buttonInset is the margin kept around the pill for the glow.
	buttonInset = 6
)

// Button is the face of a pill shaped gradient button. The gradient runs
// From -> To and flips while hovered; Glow sets the halo strength.
type Button struct {
	Label    string
	From, To color.Color
	Hovered  bool
	Glow     float64

	face font.Face
}

// NewButton creates an idle button face with a 14 point bold label.
func NewButton(label string, from, to color.Color) *Button {
	return &Button{
		Label: label,
		From:  from,
		To:    to,
		Glow:  ButtonGlowIdle,
		face:  newFace(14),
	}
}

func (b *Button) Draw(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	x, y := float64(buttonInset), float64(buttonInset)
	pw, ph := w-2*x, h-2*y
	if pw <= 0 || ph <= 0 {
		return
	}
	radius := ph / 2

	// halo: concentric pills, strongest next to the face
	for i := buttonInset; i > 0; i-- {
		d := float64(i)
		a := b.Glow * float64(buttonInset-i+1) / float64(buttonInset) * 0.6
		dc.SetColor(withAlpha(b.From, uint8(a)))
		dc.DrawRoundedRectangle(x-d, y-d, pw+2*d, ph+2*d, radius+d)
		dc.Fill()
	}

	from, to := b.From, b.To
	if b.Hovered {
		from, to = to, from
	}
	grad := gg.NewLinearGradient(x, 0, x+pw, 0)
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(x, y, pw, ph, radius)
	dc.Fill()

	dc.SetFontFace(b.face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(b.Label, w/2, h/2, 0.5, 0.5)
}
