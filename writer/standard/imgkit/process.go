package imgkit

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Scale draws src into a new RGBA image of size rect, over a transparent
// canvas, with the given scaler. nil means draw.ApproxBiLinear.
func Scale(src image.Image, rect image.Rectangle, scale draw.Scaler) image.Image {
	if scale == nil {
		scale = draw.ApproxBiLinear
	}

	dst := image.NewRGBA(rect)
	scale.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
	return dst
}

// Fit scales src so it fits in a box x box square with its aspect ratio
// kept, using Catmull-Rom resampling. The result is not padded to the box.
func Fit(src image.Image, box int) image.Image {
	b := src.Bounds()
	if b.Empty() || box <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = max(1, h*box/w)
		w = box
	} else {
		w = max(1, w*box/h)
		h = box
	}

	return Scale(src, image.Rect(0, 0, w, h), draw.CatmullRom)
}

// Read decodes a PNG file.
func Read(filename string) (image.Image, error) {
	fd, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open image")
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", filename)
	}

	return img, nil
}

// Save writes img to filename as PNG.
func Save(img image.Image, filename string) (err error) {
	fd, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create image")
	}
	defer func() {
		if cerr := fd.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close image")
		}
	}()

	return errors.Wrap(png.Encode(fd, img), "encode png")
}
