// Package paint draws the decorative parts of the window: the scrolling
// background grid, the glitching title and the gradient buttons. Everything
// renders into plain images so the UI toolkit only has to blit frames.
package paint

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Drawable paints itself over the whole of dc.
type Drawable interface {
	Draw(dc *gg.Context)
}

// Render draws d on a transparent w x h canvas. Non-positive sizes yield a
// 1x1 frame so callers never have to special-case a collapsed widget.
func Render(d Drawable, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	dc := gg.NewContext(w, h)
	d.Draw(dc)
	return dc.Image().(*image.RGBA)
}

var (
	Accent    = color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 0xff}
	AccentAlt = color.NRGBA{R: 0x00, G: 0xff, B: 0xcc, A: 0xff}
	Cyan      = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}

	Background = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	Foreground = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	Muted      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
	Error      = color.NRGBA{R: 0xff, G: 0x64, B: 0x64, A: 0xcc}

	InputFill   = color.NRGBA{R: 20, G: 20, B: 20, A: 204}
	InputBorder = color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 77}
	FrameFill   = color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 13}
	FrameBorder = color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 26}
)

// newFace returns Go Bold at size points, or the fixed basic face if the
// embedded font cannot be loaded.
func newFace(size float64) font.Face {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}

	return face
}

// withAlpha returns c with its alpha replaced.
func withAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}
