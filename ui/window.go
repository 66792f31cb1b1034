// Package ui puts the Shell behind a fyne window.
package ui

import (
	"image"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/Mictilt/qrstudio"
	"github.com/Mictilt/qrstudio/paint"
)

const (
	windowTitle = "QR Code Generator"
	titleText   = "QR CODE GENERATOR"
	placeholder = "Enter text or a link..."

	windowWidth  = 800
	windowHeight = 700
	titleHeight  = 100
	margin       = 40
	spacing      = 30
)

// Studio is the main window.
type Studio struct {
	win   fyne.Window
	shell *qrstudio.Shell
	log   *logrus.Entry

	grid  *paint.Grid
	title *paint.Glitch
	glow  *paint.Glow

	background *canvas.Raster
	titleView  *canvas.Raster
	glowView   *canvas.Raster
	entry      *widget.Entry
	preview    *canvas.Image
	status     *canvas.Text

	generate *GradientButton
	save     *GradientButton

	prompter qrstudio.Prompter
	stops    []func()
}

// New builds the window on a. A nil log discards output.
func New(a fyne.App, log *logrus.Entry) *Studio {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = logrus.NewEntry(discard)
	}
	log = log.WithField("component", "ui")

	a.Settings().SetTheme(newTheme())

	s := &Studio{
		win:   a.NewWindow(windowTitle),
		shell: qrstudio.NewShell(qrstudio.WithLogger(log.WithField("component", "shell"))),
		log:   log,
		grid:  &paint.Grid{},
		title: paint.NewGlitch(titleText, 32, nil),
		glow:  paint.NewGlow(),
	}
	s.prompter = &dialogPrompter{win: s.win, log: log}

	s.win.Resize(fyne.NewSize(windowWidth, windowHeight))
	s.win.SetContent(s.layout())
	s.win.SetOnClosed(s.Stop)
	s.shell.OnChange(s.refresh)
	s.refresh()

	return s
}

// Window returns the underlying fyne window.
func (s *Studio) Window() fyne.Window {
	return s.win
}

// Shell returns the state the window displays.
func (s *Studio) Shell() *qrstudio.Shell {
	return s.shell
}

// ShowAndRun starts the animations and blocks until the window is closed.
func (s *Studio) ShowAndRun() {
	s.Start()
	s.win.ShowAndRun()
}

// Start launches the title glitch and background scroll loops.
func (s *Studio) Start() {
	if len(s.stops) > 0 {
		return
	}

	s.stops = append(s.stops,
		every(paint.GlitchInterval, func() {
			if s.title.Tick() {
				s.titleView.Refresh()
			}
		}),
		every(paint.GridInterval, func() {
			s.grid.Advance()
			s.background.Refresh()
		}),
	)
	s.log.Debug("animations started")
}

// Stop ends the animation loops; the window stays usable.
func (s *Studio) Stop() {
	for _, stop := range s.stops {
		stop()
	}
	s.stops = nil
}

func (s *Studio) layout() fyne.CanvasObject {
	s.background = canvas.NewRaster(func(w, h int) image.Image {
		return paint.Render(s.grid, w, h)
	})

	s.titleView = canvas.NewRaster(func(w, h int) image.Image {
		return paint.Render(s.title, w, h)
	})
	s.titleView.SetMinSize(fyne.NewSize(0, titleHeight))

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder(placeholder)
	s.entry.OnSubmitted = func(string) { s.onGenerate() }

	s.preview = canvas.NewImageFromImage(nil)
	s.preview.FillMode = canvas.ImageFillContain
	s.preview.ScaleMode = canvas.ImageScaleSmooth
	s.preview.SetMinSize(fyne.NewSize(qrstudio.DisplayBox, qrstudio.DisplayBox))

	s.glowView = canvas.NewRaster(func(w, h int) image.Image {
		return paint.Render(s.glow, w, h)
	})
	glowBox := float32(qrstudio.DisplayBox + 2*paint.GlowRadius)
	s.glowView.SetMinSize(fyne.NewSize(glowBox, glowBox))

	s.status = canvas.NewText("", paint.Muted)
	s.status.Alignment = fyne.TextAlignCenter
	s.status.TextSize = 16

	frame := canvas.NewRectangle(paint.FrameFill)
	frame.StrokeColor = paint.FrameBorder
	frame.StrokeWidth = 1
	frame.CornerRadius = 15

	s.generate = NewGradientButton("GENERATE", paint.Accent, paint.AccentAlt, s.onGenerate)
	s.save = NewGradientButton("SAVE", paint.AccentAlt, paint.Accent, s.onSave)

	top := container.New(layout.NewCustomPaddedVBoxLayout(spacing), s.titleView, s.entry)
	center := container.NewStack(frame, container.NewCenter(container.NewVBox(
		container.NewStack(s.glowView, container.NewCenter(s.preview)),
		s.status,
	)))
	buttons := container.NewGridWithColumns(2, s.generate, s.save)

	body := container.NewBorder(
		container.New(layout.NewCustomPaddedLayout(0, spacing, 0, 0), top),
		container.New(layout.NewCustomPaddedLayout(spacing, 0, 0, 0), buttons),
		nil, nil,
		center,
	)

	return container.NewStack(
		s.background,
		container.New(layout.NewCustomPaddedLayout(margin, margin, margin, margin), body),
	)
}

func (s *Studio) onGenerate() {
	// the outcome lands in the status line through refresh
	_ = s.shell.Generate(s.entry.Text)
}

func (s *Studio) onSave() {
	s.shell.Save(s.prompter)
}

// refresh mirrors the Shell into the widgets.
func (s *Studio) refresh() {
	if img := s.shell.Display(); img != nil {
		s.preview.Image = img
		s.preview.Show()
		s.glow.Source = img
		s.glowView.Show()
	} else {
		s.preview.Image = nil
		s.preview.Hide()
		s.glow.Source = nil
		s.glowView.Hide()
	}
	s.preview.Refresh()
	s.glowView.Refresh()

	st := s.shell.Status()
	s.status.Text = st.Message
	s.status.Color = statusColor(st.Kind)
	if st.Message == "" {
		s.status.Hide()
	} else {
		s.status.Show()
	}
	s.status.Refresh()
}

func statusColor(kind qrstudio.StatusKind) color.Color {
	switch kind {
	case qrstudio.StatusError:
		return paint.Error
	case qrstudio.StatusSaved:
		return paint.Accent
	}

	return paint.Muted
}

// dialogPrompter asks for a path with the toolkit's save dialog.
type dialogPrompter struct {
	win fyne.Window
	log *logrus.Entry
}

func (p *dialogPrompter) PromptSave(suggested string, done func(path string, ok bool)) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			p.log.WithError(err).Warn("save dialog failed")
			dialog.ShowError(err, p.win)
			done("", false)
			return
		}
		if wc == nil {
			done("", false)
			return
		}

		// The dialog hands over an open, empty file. The Shell writes its own,
		// possibly under a name with an extension added.
		uri := wc.URI()
		_ = wc.Close()
		path := uri.Path()
		if qrstudio.NormalizePath(path) != path {
			if err := storage.Delete(uri); err != nil {
				p.log.WithError(err).WithField("path", path).Debug("remove placeholder file")
			}
		}

		done(path, true)
	}, p.win)

	d.SetFileName(suggested)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".svg"}))
	d.Show()
}
