// Package qrstudio turns user text into a QR code image and keeps the latest
// one around until it is saved. Symbol construction is left to
// github.com/yeqown/go-qrcode/v2; rasterization to writer/standard.
package qrstudio

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"github.com/yeqown/go-qrcode/v2"

	"github.com/Mictilt/qrstudio/writer/standard"
)

const (
	// ModulePixels is the edge of one module in the rendered image.
	ModulePixels = 10
	// BorderModules is the quiet zone width on every side.
	BorderModules = 4
	// DisplayBox bounds the on-screen preview.
	DisplayBox = 300
)

// Accent is the foreground of every generated symbol.
var Accent = color.RGBA{R: 0x00, G: 0xff, B: 0x9f, A: 0xff}

// Matrix is a square grid of modules, true meaning dark. Rows first.
type Matrix [][]bool

// Size is the number of modules along one side.
func (m Matrix) Size() int {
	return len(m)
}

// IsSet reports whether the module at column x, row y is dark.
func (m Matrix) IsSet(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}

	return m[y][x]
}

// Symbol is one generated QR code: the text, its modules and the bitmap.
// A Symbol is never modified after Encode returns it.
type Symbol struct {
	Text    string
	Modules Matrix
	Image   *image.RGBA
}

// RenderOptions are the fixed renderer settings: accent foreground,
// transparent background, ModulePixels per module, BorderModules quiet zone.
func RenderOptions() []standard.ImageOption {
	return []standard.ImageOption{
		standard.WithFgColor(Accent),
		standard.WithBgTransparent(),
		standard.WithQRWidth(ModulePixels),
		standard.WithBorderWidth(BorderModules * ModulePixels),
	}
}

// Encode builds the symbol for text at the lowest error correction level,
// letting the encoder grow the version until the text fits. extra options
// are applied after RenderOptions.
func Encode(text string, extra ...standard.ImageOption) (*Symbol, error) {
	if text == "" {
		return nil, &Error{Kind: KindEmptyInput}
	}

	qrc, err := qrcode.NewWith(text,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow),
	)
	if err != nil {
		return nil, &Error{Kind: KindEncoding, Err: errors.Wrap(err, "encode text")}
	}

	w := standard.New(append(RenderOptions(), extra...)...)
	if err = qrc.Save(w); err != nil {
		return nil, &Error{Kind: KindEncoding, Err: errors.Wrap(err, "render symbol")}
	}
	if w.Image() == nil {
		return nil, &Error{Kind: KindEncoding, Err: standard.ErrEmptyMatrix}
	}

	return &Symbol{
		Text:    text,
		Modules: Matrix(w.Bitmap()),
		Image:   w.Image(),
	}, nil
}
