package ui

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/qrstudio"
	"github.com/Mictilt/qrstudio/paint"
)

type stubPrompter struct {
	path  string
	calls int
}

func (p *stubPrompter) PromptSave(_ string, done func(string, bool)) {
	p.calls++
	done(p.path, p.path != "")
}

func newStudio(t *testing.T) *Studio {
	t.Helper()
	return New(test.NewTempApp(t), nil)
}

func TestStudio_Initial(t *testing.T) {
	s := newStudio(t)

	assert.Equal(t, windowTitle, s.Window().Title())
	assert.False(t, s.preview.Visible())
	assert.False(t, s.glowView.Visible())
	assert.True(t, s.status.Visible())
	assert.Equal(t, qrstudio.StateIdle, s.Shell().State())
	assert.Equal(t, placeholder, s.entry.PlaceHolder)
}

func TestStudio_Generate(t *testing.T) {
	s := newStudio(t)

	s.entry.SetText("https://example.com")
	s.generate.Tapped(&fyne.PointEvent{})

	assert.Equal(t, qrstudio.StateGenerated, s.Shell().State())
	assert.True(t, s.preview.Visible())
	assert.Same(t, s.Shell().Display(), s.preview.Image)
	assert.False(t, s.status.Visible())
	assert.True(t, s.glowView.Visible())
	assert.Same(t, s.Shell().Display(), s.glow.Source)

	s.entry.SetText("")
	s.generate.Tapped(&fyne.PointEvent{})
	assert.False(t, s.glowView.Visible())
	assert.Nil(t, s.glow.Source)
}

func TestStudio_GenerateEmpty(t *testing.T) {
	s := newStudio(t)

	s.generate.Tapped(&fyne.PointEvent{})

	assert.Equal(t, qrstudio.StateIdle, s.Shell().State())
	assert.False(t, s.preview.Visible())
	assert.True(t, s.status.Visible())
	assert.Equal(t, paint.Error, s.status.Color)
	assert.NotEmpty(t, s.status.Text)
}

func TestStudio_Submit(t *testing.T) {
	s := newStudio(t)

	s.entry.SetText("enter")
	s.entry.OnSubmitted(s.entry.Text)
	assert.Equal(t, "enter", s.Shell().Held().Text)
}

func TestStudio_Save(t *testing.T) {
	s := newStudio(t)
	dir := t.TempDir()
	p := &stubPrompter{path: filepath.Join(dir, "out")}
	s.prompter = p

	s.save.Tapped(&fyne.PointEvent{})
	assert.Zero(t, p.calls)

	s.entry.SetText("save me")
	s.generate.Tapped(&fyne.PointEvent{})
	s.save.Tapped(&fyne.PointEvent{})
	assert.Equal(t, 1, p.calls)

	_, err := os.Stat(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	assert.Equal(t, paint.Accent, s.status.Color)
}

func TestStudio_SaveError(t *testing.T) {
	s := newStudio(t)
	s.prompter = &stubPrompter{path: filepath.Join(t.TempDir(), "missing", "out")}

	s.entry.SetText("nowhere")
	s.generate.Tapped(&fyne.PointEvent{})
	s.save.Tapped(&fyne.PointEvent{})

	assert.Equal(t, paint.Error, s.status.Color)
	assert.True(t, s.preview.Visible())
}

func TestStudio_StartStop(t *testing.T) {
	s := newStudio(t)

	s.Start()
	assert.Len(t, s.stops, 2)
	s.Start()
	assert.Len(t, s.stops, 2)

	s.Stop()
	assert.Empty(t, s.stops)
	s.Stop()
}

func TestGradientButton_Hover(t *testing.T) {
	test.NewTempApp(t)

	tapped := 0
	b := NewGradientButton("GO", paint.Accent, paint.AccentAlt, func() { tapped++ })
	assert.Equal(t, float32(paint.ButtonHeight), b.MinSize().Height)
	assert.Equal(t, desktop.PointerCursor, b.Cursor())

	b.MouseIn(&desktop.MouseEvent{})
	assert.True(t, b.face.Hovered)
	b.MouseOut()
	assert.False(t, b.face.Hovered)

	b.Tapped(&fyne.PointEvent{})
	assert.Equal(t, 1, tapped)
}
