package imgkit_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/qrstudio/writer/standard/imgkit"
)

func filled(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFit(t *testing.T) {
	cases := []struct {
		name         string
		w, h, box    int
		wantW, wantH int
	}{
		{"square down", 290, 290, 100, 100, 100},
		{"square up", 50, 50, 300, 300, 300},
		{"landscape", 400, 200, 300, 300, 150},
		{"portrait", 200, 400, 300, 150, 300},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := imgkit.Fit(filled(c.w, c.h, color.Black), c.box)
			assert.Equal(t, image.Rect(0, 0, c.wantW, c.wantH), out.Bounds())
		})
	}
}

func TestFit_Empty(t *testing.T) {
	out := imgkit.Fit(image.NewRGBA(image.Rect(0, 0, 0, 0)), 300)
	assert.True(t, out.Bounds().Empty())

	out = imgkit.Fit(filled(10, 10, color.Black), 0)
	assert.True(t, out.Bounds().Empty())
}

func TestFit_KeepsTransparency(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	out := imgkit.Fit(src, 20)

	_, _, _, a := out.At(10, 10).RGBA()
	assert.Zero(t, a)
}

func TestScale(t *testing.T) {
	out := imgkit.Scale(filled(10, 10, color.White), image.Rect(0, 0, 100, 100), nil)
	assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

	_, _, _, a := out.At(50, 50).RGBA()
	assert.Greater(t, a, uint32(0xf000))
}

func TestSaveRead(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "img.png")
	src := filled(8, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})

	require.NoError(t, imgkit.Save(src, filename))
	img, err := imgkit.Read(filename)
	require.NoError(t, err)

	assert.Equal(t, src.Bounds(), img.Bounds())
	assert.Equal(t, color.RGBAModel.Convert(src.At(3, 3)), color.RGBAModel.Convert(img.At(3, 3)))
}

func TestRead_Missing(t *testing.T) {
	_, err := imgkit.Read(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
