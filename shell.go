package qrstudio

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Mictilt/qrstudio/writer/standard"
	"github.com/Mictilt/qrstudio/writer/standard/imgkit"
)

// State of the Shell.
type State uint8

const (
	// StateIdle means nothing has been generated yet.
	StateIdle State = iota
	// StateGenerated means a Symbol is held and can be saved.
	StateGenerated
)

func (s State) String() string {
	if s == StateGenerated {
		return "generated"
	}
	return "idle"
}

// StatusKind tells the UI how to style the status line.
type StatusKind uint8

const (
	StatusHint StatusKind = iota
	StatusReady
	StatusSaved
	StatusError
)

// Status is the single line of feedback shown under the preview.
type Status struct {
	Kind    StatusKind
	Message string
}

const (
	DefaultExtension = ".png"
	SuggestedName    = "qrcode" + DefaultExtension

	hintMessage  = "QR code will appear here"
	emptyMessage = "Enter text to generate a QR code"
)

// Prompter asks the user where to save. Implementations call done exactly
// once, with ok false when the user cancels.
type Prompter interface {
	PromptSave(suggested string, done func(path string, ok bool))
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(suggested string, done func(path string, ok bool))

func (f PrompterFunc) PromptSave(suggested string, done func(path string, ok bool)) {
	f(suggested, done)
}

// ShellOption configures a Shell.
type ShellOption func(s *Shell)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *logrus.Entry) ShellOption {
	return func(s *Shell) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRenderOptions appends renderer options to RenderOptions, for both
// generation and vector export.
func WithRenderOptions(opts ...standard.ImageOption) ShellOption {
	return func(s *Shell) {
		s.extra = append(s.extra, opts...)
	}
}

// Shell holds the application state behind the window: the latest symbol,
// what is on display and the status line. It is meant to be driven from a
// single goroutine.
type Shell struct {
	log   *logrus.Entry
	extra []standard.ImageOption

	held    *Symbol
	display image.Image
	status  Status

	onChange func()
}

// NewShell returns an idle Shell.
func NewShell(opts ...ShellOption) *Shell {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Shell{
		log:    logrus.NewEntry(discard),
		status: Status{Kind: StatusHint, Message: hintMessage},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OnChange registers fn to run after every change of state or status.
func (s *Shell) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Shell) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// State reports whether a symbol is held.
func (s *Shell) State() State {
	if s.held == nil {
		return StateIdle
	}
	return StateGenerated
}

// Held returns the symbol a save would write, nil when idle.
func (s *Shell) Held() *Symbol {
	return s.held
}

// Display returns the preview image, nil when the display is cleared.
func (s *Shell) Display() image.Image {
	return s.display
}

// Status returns the current status line.
func (s *Shell) Status() Status {
	return s.status
}

// Generate encodes text and, on success, replaces the held symbol and the
// preview. On failure the preview is cleared and the held symbol is kept.
func (s *Shell) Generate(text string) error {
	defer s.changed()

	sym, err := Encode(text, s.extra...)
	if err != nil {
		s.display = nil
		if IsKind(err, KindEmptyInput) {
			s.status = Status{Kind: StatusError, Message: emptyMessage}
			s.log.Debug("generate rejected: empty input")
			return err
		}

		s.status = Status{Kind: StatusError, Message: "Generation error: " + Cause(err)}
		s.log.WithError(err).WithField("length", len(text)).Warn("generate failed")
		return err
	}

	s.held = sym
	s.display = imgkit.Fit(sym.Image, DisplayBox)
	s.status = Status{Kind: StatusReady}
	s.log.WithFields(logrus.Fields{
		"length":  len(text),
		"modules": sym.Modules.Size(),
	}).Debug("generated")

	return nil
}

// Save asks p for a destination and writes the held symbol there. It does
// nothing when no symbol is held or the user cancels. The symbol written is
// the one held when p answers, so a regeneration while the prompt is open
// is what gets saved. The outcome is reported through Status.
func (s *Shell) Save(p Prompter) {
	if s.held == nil {
		return
	}

	p.PromptSave(SuggestedName, func(path string, ok bool) {
		if !ok || path == "" {
			s.log.Debug("save cancelled")
			return
		}

		defer s.changed()
		written, err := s.write(s.held, path)
		if err != nil {
			s.status = Status{Kind: StatusError, Message: "Save error: " + Cause(err)}
			return
		}
		s.status = Status{Kind: StatusSaved, Message: "Saved to " + written}
	})
}

// SaveTo writes the held symbol to path, appending DefaultExtension unless
// path already ends in a supported one. It returns the path written, or ""
// and no error when nothing is held.
func (s *Shell) SaveTo(path string) (string, error) {
	if s.held == nil {
		return "", nil
	}

	return s.write(s.held, path)
}

func (s *Shell) write(sym *Symbol, path string) (string, error) {
	path = NormalizePath(path)
	log := s.log.WithField("path", path)

	opts := append(RenderOptions(), s.extra...)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		opts = append(opts, standard.WithBuiltinImageEncoder(standard.SVG_FORMAT))
	} else {
		opts = append(opts, standard.WithBuiltinImageEncoder(standard.PNG_FORMAT))
	}

	if err := writeFile(path, sym, opts); err != nil {
		log.WithError(err).Warn("save failed")
		return "", &Error{Kind: KindSaveWrite, Err: err}
	}

	log.Info("saved")
	return path, nil
}

// writeFile encodes into a temporary file next to path and renames it into
// place, so a failed write leaves neither a partial file nor a damaged
// previous one.
func writeFile(path string, sym *Symbol, opts []standard.ImageOption) (err error) {
	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create file")
	}
	tmp := fd.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = standard.Export(fd, sym.Image, sym.Modules, opts...); err != nil {
		_ = fd.Close()
		return errors.Wrap(err, "write image")
	}
	if err = fd.Close(); err != nil {
		return errors.Wrap(err, "close file")
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return errors.Wrap(err, "set file mode")
	}

	return errors.Wrap(os.Rename(tmp, path), "replace file")
}

// NormalizePath appends DefaultExtension unless path ends in .png or .svg,
// compared case-insensitively.
func NormalizePath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg":
		return path
	}

	return path + DefaultExtension
}
