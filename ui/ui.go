package ui

import (
	"image/color"
	"strconv"

	"NumberDraw/draw"
	"NumberDraw/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is what the window needs from the application: its configuration,
// the actions behind the widgets and setters that hand the widgets back.
type App interface {
	Config() *draw.Config
	StartDraw()
	RefreshDrawButton()
	HandleKeyRune(rune)
	ShowHelpDialog()
	SetInputs(maxEntry, quantityEntry *widget.Entry)
	SetDrawButton(*widget.Button)
	SetResultDisplay(result *canvas.Text, revealed *widget.Label)
}

// BuildControls lays out the two labelled entry fields in one row.
func BuildControls(a App) (*widget.Entry, *widget.Entry, fyne.CanvasObject) {
	cfg := a.Config()

	maxEntry := widget.NewEntry()
	maxEntry.SetText(strconv.Itoa(cfg.DefaultMaxNumber))
	quantityEntry := widget.NewEntry()
	quantityEntry.SetText(strconv.Itoa(cfg.DefaultQuantity))

	for _, e := range []*widget.Entry{maxEntry, quantityEntry} {
		e.OnChanged = func(string) { a.RefreshDrawButton() }
		e.OnSubmitted = func(string) { a.StartDraw() }
	}

	row := container.NewHBox(
		layout.NewSpacer(),
		widget.NewLabel(i18n.T("Max number:")),
		fixedWidth(maxEntry, draw.EntryWidthMax),
		widget.NewLabel(i18n.T("Quantity:")),
		fixedWidth(quantityEntry, draw.EntryWidthQuantity),
		layout.NewSpacer(),
	)
	return maxEntry, quantityEntry, row
}

// BuildDrawButton returns the draw button, disabled until the inputs are checked.
func BuildDrawButton(a App) (*widget.Button, fyne.CanvasObject) {
	btn := widget.NewButton(i18n.T("Draw"), a.StartDraw)
	btn.Importance = widget.HighImportance
	btn.Disable()

	sized := container.NewGridWrap(fyne.NewSize(draw.ButtonWidth, draw.ButtonHeight), btn)
	return btn, container.NewCenter(sized)
}

// BuildResultArea returns the large result text inside a bordered frame and
// the caption listing values already revealed.
func BuildResultArea(a App) (*canvas.Text, *widget.Label, fyne.CanvasObject) {
	result := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	result.TextSize = a.Config().ResultTextSize
	result.TextStyle.Bold = true
	result.Alignment = fyne.TextAlignCenter

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = draw.BorderColor
	border.StrokeWidth = draw.BorderWidth

	revealed := widget.NewLabel("")
	revealed.Alignment = fyne.TextAlignCenter
	revealed.Wrapping = fyne.TextWrapWord

	frame := container.NewStack(border, container.NewCenter(result))
	area := container.NewBorder(nil, revealed, nil, nil, frame)
	return result, revealed, area
}

// CreateMainWindow builds the draw window, registers its widgets with a and
// lets a set the initial state of the draw button.
func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	cfg := a.Config()
	title := fyneApp.Metadata().Name
	if title == "" {
		title = i18n.T("Number Draw")
	}
	w := fyneApp.NewWindow(title)

	maxEntry, quantityEntry, controls := BuildControls(a)
	drawButton, buttonRow := BuildDrawButton(a)
	result, revealed, resultArea := BuildResultArea(a)

	a.SetInputs(maxEntry, quantityEntry)
	a.SetDrawButton(drawButton)
	a.SetResultDisplay(result, revealed)

	helpButton := NewTappableContainer(widget.NewIcon(theme.QuestionIcon()), a.ShowHelpDialog)
	footer := container.NewHBox(helpButton, layout.NewSpacer())

	top := container.NewVBox(controls, buttonRow)
	content := container.NewBorder(top, footer, nil, nil, container.NewPadded(resultArea))

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	a.RefreshDrawButton()

	w.SetContent(container.NewPadded(content))
	w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	return w
}

// FormatRevealed renders revealed values as a caption, or "" when there are none.
func FormatRevealed(values []int) string {
	if len(values) == 0 {
		return ""
	}
	s := i18n.T("Drawn:")
	for i, v := range values {
		if i > 0 {
			s += ","
		}
		s += " " + strconv.Itoa(v)
	}
	return s
}

// TappableContainer makes any canvas object respond to a primary tap.
type TappableContainer struct {
	widget.BaseWidget
	Content  fyne.CanvasObject
	OnTapped func()
}

// NewTappableContainer wraps c so that tapping it calls onTapped.
func NewTappableContainer(c fyne.CanvasObject, onTapped func()) *TappableContainer {
	t := &TappableContainer{
		Content:  c,
		OnTapped: onTapped,
	}
	t.ExtendBaseWidget(t)
	return t
}

func (t *TappableContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.Content)
}

func (t *TappableContainer) Tapped(_ *fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

func fixedWidth(obj fyne.CanvasObject, width float32) fyne.CanvasObject {
	sizeEnforcer := canvas.NewRectangle(color.Transparent)
	sizeEnforcer.SetMinSize(fyne.NewSize(width, 0))
	return container.New(layout.NewStackLayout(), sizeEnforcer, obj)
}
