package paint

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func countWhere(img image.Image, keep func(c color.NRGBA) bool) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if keep(nrgba(img, x, y)) {
				n++
			}
		}
	}
	return n
}

func TestRender_Collapsed(t *testing.T) {
	img := Render(&Grid{}, 0, -3)
	assert.Equal(t, image.Rect(0, 0, 1, 1), img.Bounds())
}

func TestGrid_Advance(t *testing.T) {
	g := &Grid{}
	for i := 0; i < GridPhases-1; i++ {
		g.Advance()
	}
	assert.Equal(t, GridPhases-1, g.Phase())

	g.Advance()
	assert.Zero(t, g.Phase())
}

func TestGrid_Draw(t *testing.T) {
	g := &Grid{}
	img := Render(g, 200, 120)

	// opaque everywhere, dark
	assert.Zero(t, countWhere(img, func(c color.NRGBA) bool { return c.A != 0xff }))
	assert.Zero(t, countWhere(img, func(c color.NRGBA) bool { return c.R > 40 || c.B > 60 }))

	// faint green lines lift some pixels above the gradient
	assert.NotZero(t, countWhere(img, func(c color.NRGBA) bool { return c.G >= c.R+5 }))
}

func TestGrid_Scrolls(t *testing.T) {
	g := &Grid{}
	first := Render(g, 120, 120)

	g.Advance()
	second := Render(g, 120, 120)
	assert.NotEqual(t, first.Pix, second.Pix)

	// a full step later the pattern lines up again
	for i := 1; i < GridStep; i++ {
		g.Advance()
	}
	assert.Equal(t, first.Pix, Render(g, 120, 120).Pix)
}

func TestGlitch_Tick(t *testing.T) {
	g := NewGlitch("QR", 32, rand.New(rand.NewSource(7)))

	const ticks = 20000
	active := 0
	for i := 0; i < ticks; i++ {
		g.Tick()
		if g.Alpha() == 0 {
			assert.Zero(t, g.Offset())
			continue
		}

		active++
		assert.GreaterOrEqual(t, g.Offset(), -1)
		assert.LessOrEqual(t, g.Offset(), 1)
		assert.GreaterOrEqual(t, g.Alpha(), uint8(50))
		assert.LessOrEqual(t, g.Alpha(), uint8(100))
	}

	ratio := float64(active) / ticks
	assert.InDelta(t, GlitchChance, ratio, 0.02)
}

func TestGlitch_TickReportsChange(t *testing.T) {
	g := NewGlitch("QR", 32, rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		prevOffset, prevAlpha := g.Offset(), g.Alpha()
		changed := g.Tick()
		assert.Equal(t, prevOffset != g.Offset() || prevAlpha != g.Alpha(), changed)
	}
}

func TestGlitch_Draw(t *testing.T) {
	g := NewGlitch("QR CODE", 32, rand.New(rand.NewSource(1)))
	plain := Render(g, 300, 80)
	require.NotZero(t, countWhere(plain, func(c color.NRGBA) bool { return c.A > 0 }))

	redish := func(c color.NRGBA) bool { return c.A > 0 && c.R > 100 }
	assert.Zero(t, countWhere(plain, redish))

	g.offset, g.alpha = 1, 100
	glitched := Render(g, 300, 80)
	assert.NotZero(t, countWhere(glitched, redish))
}

func TestButton_Draw(t *testing.T) {
	b := NewButton("GENERATE", Accent, color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff})
	img := Render(b, 200, ButtonHeight)

	mid := ButtonHeight / 2
	left := nrgba(img, buttonInset+mid, mid)
	right := nrgba(img, 200-buttonInset-mid, mid)
	assert.Greater(t, left.G, right.G)

	b.Hovered = true
	img = Render(b, 200, ButtonHeight)
	left = nrgba(img, buttonInset+mid, mid)
	right = nrgba(img, 200-buttonInset-mid, mid)
	assert.Less(t, left.G, right.G)
}

func TestButton_Glow(t *testing.T) {
	b := NewButton("", Accent, AccentAlt)
	idle := Render(b, 200, ButtonHeight)

	b.Glow = ButtonGlowHover
	hover := Render(b, 200, ButtonHeight)

	// halo pixel just outside the pill
	assert.Greater(t, nrgba(hover, 100, 2).A, nrgba(idle, 100, 2).A)
}

func TestButton_TooSmall(t *testing.T) {
	img := Render(NewButton("x", Accent, AccentAlt), 8, 8)
	assert.Zero(t, countWhere(img, func(c color.NRGBA) bool { return c.A > 0 }))
}

func squareSource() *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			src.SetNRGBA(x, y, color.NRGBA{G: 0xff, B: 0x9f, A: 0xff})
		}
	}
	return src
}

func TestGlow_Draw(t *testing.T) {
	g := NewGlow()
	g.Source = squareSource()

	img := Render(g, 100, 100)

	center := nrgba(img, 50, 50)
	assert.NotZero(t, center.A)
	assert.LessOrEqual(t, center.A, GlowColor.A)
	assert.Zero(t, center.R)
	assert.Greater(t, center.G, uint8(200))

	// spreads past the square edge at y=40
	assert.NotZero(t, nrgba(img, 50, 35).A)
	assert.Zero(t, nrgba(img, 0, 0).A)
	assert.Greater(t, center.A, nrgba(img, 50, 35).A)
}

func TestGlow_Empty(t *testing.T) {
	g := NewGlow()
	img := Render(g, 50, 50)
	assert.Zero(t, countWhere(img, func(c color.NRGBA) bool { return c.A != 0 }))

	g.Source = image.NewNRGBA(image.Rect(0, 0, 0, 0))
	img = Render(g, 50, 50)
	assert.Zero(t, countWhere(img, func(c color.NRGBA) bool { return c.A != 0 }))
}

func TestGlow_Cache(t *testing.T) {
	g := NewGlow()
	g.Source = squareSource()
	first := g.halo()
	assert.Same(t, first, g.halo())
	assert.Equal(t, image.Rect(0, 0, 40+2*GlowRadius, 40+2*GlowRadius), first.Bounds())

	g.Source = squareSource()
	assert.NotSame(t, first, g.halo())
}

func TestBoxBlur(t *testing.T) {
	// a single row still gets the column pass, which divides by three again
	v := []int{0, 0, 90, 0, 0}
	boxBlur(v, 5, 1, 1)
	assert.Equal(t, []int{0, 10, 10, 10, 0}, v)

	v = []int{
		0, 0, 0,
		0, 90, 0,
		0, 0, 0,
	}
	boxBlur(v, 3, 3, 1)
	assert.Equal(t, []int{10, 10, 10, 10, 10, 10, 10, 10, 10}, v)
}
