package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/Mictilt/qrstudio/paint"
)

var (
	_ fyne.Tappable      = (*GradientButton)(nil)
	_ desktop.Hoverable  = (*GradientButton)(nil)
	_ desktop.Cursorable = (*GradientButton)(nil)
)

// GradientButton is a pill button painted by paint.Button. Hovering flips the
// gradient and swells the glow.
type GradientButton struct {
	widget.BaseWidget

	OnTapped func()

	face   *paint.Button
	raster *canvas.Raster
	glow   *fyne.Animation
}

// NewGradientButton creates a button whose gradient runs from -> to.
func NewGradientButton(label string, from, to color.Color, tapped func()) *GradientButton {
	b := &GradientButton{
		OnTapped: tapped,
		face:     paint.NewButton(label, from, to),
	}
	b.raster = canvas.NewRaster(func(w, h int) image.Image {
		return paint.Render(b.face, w, h)
	})
	b.ExtendBaseWidget(b)

	return b
}

func (b *GradientButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.raster)
}

func (b *GradientButton) MinSize() fyne.Size {
	return fyne.NewSize(160, paint.ButtonHeight)
}

func (b *GradientButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *GradientButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *GradientButton) MouseIn(*desktop.MouseEvent) {
	b.face.Hovered = true
	b.animateGlow(paint.ButtonGlowHover)
}

func (b *GradientButton) MouseMoved(*desktop.MouseEvent) {}

func (b *GradientButton) MouseOut() {
	b.face.Hovered = false
	b.animateGlow(paint.ButtonGlowIdle)
}

// animateGlow tweens the glow from wherever it is now to target.
func (b *GradientButton) animateGlow(target float64) {
	if b.glow != nil {
		b.glow.Stop()
	}

	start := b.face.Glow
	b.glow = fyne.NewAnimation(paint.ButtonGlowDuration, func(p float32) {
		b.face.Glow = start + (target-start)*float64(p)
		b.raster.Refresh()
	})
	b.glow.Start()
	b.raster.Refresh()
}
