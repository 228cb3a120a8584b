package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme enlarges the default theme's text for the draw window.
type CustomTheme struct {
	fyne.Theme
	textSize float32
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(textSize float32) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), textSize: textSize}
}

// Size returns the configured text size and defers everything else.
func (t *CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.textSize
	}
	return t.Theme.Size(name)
}
