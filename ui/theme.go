package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/Mictilt/qrstudio/paint"
)

// studioTheme is the dark theme with the accent palette; anything it does
// not override comes from the default dark variant.
type studioTheme struct {
	fyne.Theme
}

func newTheme() fyne.Theme {
	return &studioTheme{Theme: theme.DefaultTheme()}
}

func (t *studioTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return paint.Background
	case theme.ColorNameForeground:
		return paint.Foreground
	case theme.ColorNameInputBackground:
		return paint.InputFill
	case theme.ColorNameInputBorder:
		return paint.InputBorder
	case theme.ColorNamePlaceHolder:
		return paint.Muted
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return paint.Accent
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x00, G: 0xff, B: 0x9f, A: 0x60}
	case theme.ColorNameError:
		return paint.Error
	}

	return t.Theme.Color(name, theme.VariantDark)
}

func (t *studioTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameInputRadius:
		return 10
	case theme.SizeNameInnerPadding:
		return 15
	}

	return t.Theme.Size(name)
}
