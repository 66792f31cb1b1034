package standard

import (
	"image/color"
	"strconv"
	"strings"
)

const (
	_defaultBlockWidth = 20
	_defaultPadding    = 40
)

// ImageOption configures how a matrix is rendered and encoded.
type ImageOption interface {
	apply(oo *outputImageOptions)
}

type outputImageOptions struct {
	// bgColor is ignored when bgTransparent is set.
	bgColor       color.RGBA
	bgTransparent bool

	// qrColor fills every dark module.
	qrColor color.RGBA

	// qrWidth is the pixel edge of one module.
	qrWidth int

	shape        IShape
	imageEncoder ImageEncoder

	// borderWidths in pixels: top, right, bottom, left.
	borderWidths [4]int
}

func defaultOutputImageOption() *outputImageOptions {
	return &outputImageOptions{
		bgColor:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		qrColor:      color.RGBA{A: 0xff},
		qrWidth:      _defaultBlockWidth,
		shape:        _shapeRectangle,
		imageEncoder: pngEncoder{},
		borderWidths: [4]int{_defaultPadding, _defaultPadding, _defaultPadding, _defaultPadding},
	}
}

func newOutputImageOptions(opts ...ImageOption) *outputImageOptions {
	oo := defaultOutputImageOption()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(oo)
	}

	return oo
}

func (oo *outputImageOptions) qrBlockWidth() int {
	if oo.qrWidth <= 0 {
		return _defaultBlockWidth
	}

	return oo.qrWidth
}

func (oo *outputImageOptions) getShape() IShape {
	if oo.shape == nil {
		return _shapeRectangle
	}

	return oo.shape
}

// canvasSize returns the full pixel size for a rows x cols matrix.
func (oo *outputImageOptions) canvasSize(rows, cols int) (width, height int) {
	block := oo.qrBlockWidth()
	width = oo.borderWidths[3] + cols*block + oo.borderWidths[1]
	height = oo.borderWidths[0] + rows*block + oo.borderWidths[2]
	return width, height
}

func parseFromColor(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// parseFromHex accepts "#rgb", "#rrggbb" and "#rrggbbaa", with or without
// the leading '#'. Malformed input yields opaque black.
func parseFromHex(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) == 6 {
		s += "ff"
	}

	black := color.RGBA{A: 0xff}
	if len(s) != 8 {
		return black
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return black
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
