// Package standard rasterizes a QR module matrix into an image and, optionally,
// encodes the result into an io.Writer. Writer implements qrcode.Writer, so it
// can be passed straight to (*qrcode.QRCode).Save.
package standard

import (
	"image"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"
)

var _ qrcode.Writer = (*Writer)(nil)

// ErrEmptyMatrix is returned when there is no module to render.
var ErrEmptyMatrix = errors.New("standard: empty matrix")

// Writer renders the matrix it receives. The rendered image stays available
// after Close.
type Writer struct {
	option *outputImageOptions

	// closer is optional; when nil the writer only keeps the image in memory.
	closer io.WriteCloser
	closed bool

	img    *image.RGBA
	bitmap [][]bool
}

// New creates an in-memory Writer.
func New(opts ...ImageOption) *Writer {
	return &Writer{option: newOutputImageOptions(opts...)}
}

// NewWithWriter creates a Writer that also encodes into writeCloser.
func NewWithWriter(writeCloser io.WriteCloser, opts ...ImageOption) *Writer {
	w := New(opts...)
	w.closer = writeCloser
	return w
}

// NewFile creates (or truncates) filename and encodes into it.
func NewFile(filename string, opts ...ImageOption) (*Writer, error) {
	fd, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrap(err, "create file failed")
	}

	return NewWithWriter(fd, opts...), nil
}

// Write implements qrcode.Writer.
func (w *Writer) Write(mat qrcode.Matrix) error {
	bitmap := make([][]bool, mat.Height())
	for i := range bitmap {
		bitmap[i] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		bitmap[y][x] = v.IsSet()
	})

	return w.WriteBitmap(bitmap)
}

// WriteBitmap renders a module grid given as rows of dark flags.
func (w *Writer) WriteBitmap(bitmap [][]bool) error {
	if len(bitmap) == 0 || len(bitmap[0]) == 0 {
		return ErrEmptyMatrix
	}

	w.bitmap = bitmap
	w.img = draw(bitmap, w.option)

	if w.closer == nil {
		return nil
	}

	return w.option.encode(w.closer, w.img, w.bitmap)
}

// Image returns the last rendered image, nil before the first Write.
func (w *Writer) Image() *image.RGBA {
	return w.img
}

// Bitmap returns the module grid of the last Write.
func (w *Writer) Bitmap() [][]bool {
	return w.bitmap
}

// Close closes the underlying writer if there is one. It is safe to call
// more than once.
func (w *Writer) Close() error {
	if w.closer == nil || w.closed {
		return nil
	}

	w.closed = true
	return w.closer.Close()
}

// draw paints every dark module of bitmap with the configured shape. Light
// modules and the border are left transparent unless a background is set.
func draw(bitmap [][]bool, oo *outputImageOptions) *image.RGBA {
	width, height := oo.canvasSize(len(bitmap), len(bitmap[0]))
	dc := gg.NewContext(width, height)
	if !oo.bgTransparent {
		dc.SetColor(oo.bgColor)
		dc.Clear()
	}

	block := oo.qrBlockWidth()
	top, left := oo.borderWidths[0], oo.borderWidths[3]
	ctx := &DrawContext{
		GraphicsContext: &GGContextWrapper{dc},
		w:               block,
		h:               block,
		color:           oo.qrColor,
	}

	shape := oo.getShape()
	for y, row := range bitmap {
		for x, set := range row {
			if !set {
				continue
			}

			ctx.x = float64(left + x*block)
			ctx.y = float64(top + y*block)
			shape.Draw(ctx)
		}
	}

	return dc.Image().(*image.RGBA)
}
