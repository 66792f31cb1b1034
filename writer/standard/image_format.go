package standard

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

type formatTyp uint8

const (
	// PNG_FORMAT as default output file format, lossless and keeps alpha.
	PNG_FORMAT formatTyp = iota
	// SVG_FORMAT .
	SVG_FORMAT
)

// ImageEncoder is an interface which describes the rule how to encode image.Image into io.Writer
type ImageEncoder interface {
	// Encode specify which format to encode image into io.Writer.
	Encode(w io.Writer, img image.Image) error
}

// MatrixEncoder is implemented by encoders that work from the module grid
// rather than from the rasterized bitmap.
type MatrixEncoder interface {
	ImageEncoder
	// EncodeMatrix writes bitmap (true = dark module) with the render options.
	EncodeMatrix(w io.Writer, bitmap [][]bool, opts *outputImageOptions) error
}

// ErrUnsupportedShape is returned by the svg encoder for shapes it has no
// vector form for.
var ErrUnsupportedShape = errors.New("standard: shape has no svg form")

type pngEncoder struct{}

func (j pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// svgEncoder emits one svg element per dark module.
type svgEncoder struct{}

// Encode has no module grid to work with, so it embeds nothing and fails.
func (s svgEncoder) Encode(w io.Writer, img image.Image) error {
	return errors.New("svg encoder needs the module matrix")
}

func (s svgEncoder) EncodeMatrix(w io.Writer, bitmap [][]bool, opts *outputImageOptions) error {
	if len(bitmap) == 0 || len(bitmap[0]) == 0 {
		return ErrEmptyMatrix
	}

	var round bool
	switch opts.getShape().(type) {
	case rectangle:
	case circle:
		round = true
	default:
		return ErrUnsupportedShape
	}

	ew := &errWriter{w: w}
	width, height := opts.canvasSize(len(bitmap), len(bitmap[0]))
	block := opts.qrBlockWidth()
	top, left := opts.borderWidths[0], opts.borderWidths[3]

	canvas := svgo.New(ew)
	canvas.Start(width, height)
	if !opts.bgTransparent {
		canvas.Rect(0, 0, width, height, fillStyle(opts.bgColor))
	}

	canvas.Gstyle(fillStyle(opts.qrColor))
	for y, row := range bitmap {
		for x, set := range row {
			if !set {
				continue
			}

			px, py := left+x*block, top+y*block
			if round {
				canvas.Circle(px+block/2, py+block/2, int(circleRadius(block, block)))
				continue
			}
			canvas.Rect(px, py, block, block)
		}
	}
	canvas.Gend()
	canvas.End()

	return errors.Wrap(ew.err, "write svg")
}

func fillStyle(c color.RGBA) string {
	style := fmt.Sprintf("fill:#%02x%02x%02x", c.R, c.G, c.B)
	if c.A != 0xff {
		style += fmt.Sprintf(";fill-opacity:%.3f", float64(c.A)/255)
	}

	return style
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}

	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Export encodes an already rendered symbol with the encoder selected by opts.
// img must be the rasterization of bitmap under the same options.
func Export(w io.Writer, img image.Image, bitmap [][]bool, opts ...ImageOption) error {
	return newOutputImageOptions(opts...).encode(w, img, bitmap)
}

func (oo *outputImageOptions) encode(w io.Writer, img image.Image, bitmap [][]bool) error {
	if me, ok := oo.imageEncoder.(MatrixEncoder); ok {
		return me.EncodeMatrix(w, bitmap, oo)
	}

	if img == nil {
		return ErrEmptyMatrix
	}

	return errors.Wrap(oo.imageEncoder.Encode(w, img), "encode image")
}
