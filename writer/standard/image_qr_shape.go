package standard

import (
	"image/color"

	"github.com/fogleman/gg"
)

var (
	_shapeRectangle IShape = rectangle{}
	_shapeCircle    IShape = circle{}
)

type IShape interface {
	// Draw the shape of one dark module in IShape implemented way.
	Draw(ctx *DrawContext)
}

// GraphicsContext is the subset of a 2D canvas the shapes need.
type GraphicsContext interface {
	DrawCircle(cx, cy, radius float64)
	DrawRectangle(x, y, w, h float64)
	SetColor(c color.Color)
	Fill()
}

// GGContextWrapper wraps gg.Context to implement GraphicsContext
type GGContextWrapper struct {
	*gg.Context
}

func (wrapper *GGContextWrapper) DrawCircle(cx, cy, radius float64) {
	wrapper.Context.DrawCircle(cx, cy, radius)
}

func (wrapper *GGContextWrapper) DrawRectangle(x, y, width, height float64) {
	wrapper.Context.DrawRectangle(x, y, width, height)
}

func (wrapper *GGContextWrapper) SetColor(c color.Color) {
	wrapper.Context.SetColor(c)
}

func (wrapper *GGContextWrapper) Fill() {
	wrapper.Context.Fill()
}

// DrawContext is a rectangle area
type DrawContext struct {
	GraphicsContext

	x, y float64
	w, h int

	color color.Color
}

// rectangle IShape
type rectangle struct{}

func (r rectangle) Draw(c *DrawContext) {
	c.DrawRectangle(c.x, c.y, float64(c.w), float64(c.h))
	c.SetColor(c.color)
	c.Fill()
}

// circle IShape
type circle struct{}

func (r circle) Draw(c *DrawContext) {
	cx, cy := c.x+float64(c.w)/2.0, c.y+float64(c.h)/2.0
	c.DrawCircle(cx, cy, circleRadius(c.w, c.h))
	c.SetColor(c.color)
	c.Fill()
}

// circleRadius picks the radius that fits a w x h block.
func circleRadius(w, h int) float64 {
	radius := w / 2
	if r2 := h / 2; r2 <= radius {
		radius = r2
	}

	return float64(radius)
}
