package paint

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

const (
	// GlowRadius is how far the preview glow spreads past the modules.
	GlowRadius = 30
	glowPasses = 3
)

// GlowColor tints the preview glow.
var GlowColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 150}

// Glow paints a soft halo following the opaque pixels of Source, centred in
// the frame. Source itself is not drawn.
type Glow struct {
	Source image.Image
	Color  color.NRGBA
	Radius int

	cache   *image.NRGBA
	cacheOf image.Image
}

// NewGlow returns a glow with the default colour and radius.
func NewGlow() *Glow {
	return &Glow{Color: GlowColor, Radius: GlowRadius}
}

func (g *Glow) Draw(dc *gg.Context) {
	if g.Source == nil || g.Source.Bounds().Empty() {
		return
	}

	halo := g.halo()
	dc.DrawImageAnchored(halo, dc.Width()/2, dc.Height()/2, 0.5, 0.5)
}

// halo is rebuilt only when Source changes.
func (g *Glow) halo() *image.NRGBA {
	if g.cache != nil && g.cacheOf == g.Source {
		return g.cache
	}

	src := g.Source.Bounds()
	pad := max(g.Radius, 0)
	w, h := src.Dx()+2*pad, src.Dy()+2*pad

	mask := make([]int, w*h)
	for y := src.Min.Y; y < src.Max.Y; y++ {
		for x := src.Min.X; x < src.Max.X; x++ {
			_, _, _, a := g.Source.At(x, y).RGBA()
			mask[(y-src.Min.Y+pad)*w+(x-src.Min.X+pad)] = int(a >> 8)
		}
	}

	// three box passes approximate a gaussian of about Radius/3 sigma
	r := pad / 3
	for i := 0; i < glowPasses && r > 0; i++ {
		boxBlur(mask, w, h, r)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, a := range mask {
		out.Pix[i*4+0] = g.Color.R
		out.Pix[i*4+1] = g.Color.G
		out.Pix[i*4+2] = g.Color.B
		out.Pix[i*4+3] = uint8(a * int(g.Color.A) / 0xff)
	}

	g.cache, g.cacheOf = out, g.Source
	return out
}

// boxBlur averages every value over a (2r+1) window, rows then columns.
// Samples outside the buffer count as zero.
func boxBlur(v []int, w, h, r int) {
	tmp := make([]int, len(v))
	n := 2*r + 1

	for y := 0; y < h; y++ {
		row := v[y*w : (y+1)*w]
		sum := 0
		for x := 0; x <= r && x < w; x++ {
			sum += row[x]
		}
		for x := 0; x < w; x++ {
			tmp[y*w+x] = sum / n
			if in := x + r + 1; in < w {
				sum += row[in]
			}
			if out := x - r; out >= 0 {
				sum -= row[out]
			}
		}
	}

	for x := 0; x < w; x++ {
		sum := 0
		for y := 0; y <= r && y < h; y++ {
			sum += tmp[y*w+x]
		}
		for y := 0; y < h; y++ {
			v[y*w+x] = sum / n
			if in := y + r + 1; in < h {
				sum += tmp[in*w+x]
			}
			if out := y - r; out >= 0 {
				sum -= tmp[out*w+x]
			}
		}
	}
}
