// Package main contains the application wiring and the AppManager which
// owns the draw controller, the widgets it drives, dialogs and audio.
//
// Maintenance notes / tips:
//   - Threading model: every AppManager method that touches widgets runs on
//     the Fyne main thread. Widget callbacks already do; animation ticks get
//     there because control.UIScheduler wraps them in fyne.Do. Do not call
//     the controller from another goroutine.
//   - Widget fields are set by ui.CreateMainWindow through the Set* methods
//     and are nil before that. The view methods tolerate nil so the
//     controller can be exercised without a window.
//   - Audio is optional. If the speaker cannot be initialized, PlaySound
//     logs nothing and returns.
package main

import (
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"NumberDraw/control"
	"NumberDraw/draw"
	"NumberDraw/i18n"
	"NumberDraw/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"gopkg.in/yaml.v3"
)

const helpPath = "assets/help.yaml"

// cueTone describes the generated tone played for a cue.
type cueTone struct {
	freq   float64
	length time.Duration
}

var cueTones = map[draw.Cue]cueTone{
	draw.CueTick:   {freq: 880, length: 15 * time.Millisecond},
	draw.CueReveal: {freq: 660, length: 120 * time.Millisecond},
	draw.CueFinal:  {freq: 1320, length: 250 * time.Millisecond},
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	cfg        *draw.Config
	controller *draw.Controller
	content    draw.AppContentReader

	maxEntry      *widget.Entry
	quantityEntry *widget.Entry
	drawButton    *widget.Button
	resultText    *canvas.Text
	revealedLabel *widget.Label

	audioBuffers map[draw.Cue]*beep.Buffer
	audioReady   bool
	speakerLock  sync.Mutex
}

// NewAppManager loads the embedded configuration and creates the application
// manager with the real event-loop scheduler, clock and audio.
func NewAppManager(content draw.AppContentReader) (*AppManager, error) {
	cfg, err := draw.LoadConfig(content)
	if err != nil {
		return nil, err
	}
	a := newAppManager(content, cfg, control.UIScheduler{}, control.SystemClock{}, draw.NewSampler())
	a.loadAudioCues()
	return a, nil
}

func newAppManager(content draw.AppContentReader, cfg *draw.Config, sched control.Scheduler, clock control.Clock, sampler *draw.Sampler) *AppManager {
	a := &AppManager{
		cfg:          cfg,
		content:      content,
		audioBuffers: make(map[draw.Cue]*beep.Buffer),
	}
	a.controller = draw.NewController(cfg, a, a, sampler, sched, clock)
	return a
}

func (a *AppManager) loadAudioCues() {
	sr := beep.SampleRate(44100)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return
	}

	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	for cue, tone := range cueTones {
		sine, err := generators.SineTone(sr, tone.freq)
		if err != nil {
			log.Printf("Failed to generate tone %v Hz: %v", tone.freq, err)
			continue
		}
		quiet := &effects.Volume{Streamer: beep.Take(sr.N(tone.length), sine), Base: 2, Volume: -3}

		buffer := beep.NewBuffer(format)
		buffer.Append(quiet)
		a.audioBuffers[cue] = buffer
	}
	a.audioReady = true
	log.Printf("Generated %d audio cues.", len(a.audioBuffers))
}

// Config returns the loaded draw configuration.
func (a *AppManager) Config() *draw.Config {
	return a.cfg
}

// Controller returns the draw controller.
func (a *AppManager) Controller() *draw.Controller {
	return a.controller
}

// StartDraw runs the draw action and turns user errors into a warning.
func (a *AppManager) StartDraw() {
	err := a.controller.Draw()
	switch {
	case err == nil:
	case errors.Is(err, draw.ErrDrawInProgress):
	default:
		a.ShowWarning(err)
		a.RefreshDrawButton()
	}
}

// RefreshDrawButton re-evaluates whether the draw button should be enabled.
func (a *AppManager) RefreshDrawButton() {
	a.controller.RefreshDrawEnabled()
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		if a.drawButton != nil && !a.drawButton.Disabled() {
			a.drawButton.Tapped(&fyne.PointEvent{})
		}
	case '?':
		a.ShowHelpDialog()
	}
}

// warningMessage maps a rejected draw to the text shown to the user.
func warningMessage(err error) string {
	if errors.Is(err, draw.ErrQuantityLimit) {
		return i18n.T("Too many numbers for one draw, please lower the quantity!")
	}
	if errors.Is(err, draw.ErrInsufficientRange) {
		return i18n.T("Not enough numbers available, please adjust the parameters!")
	}
	return i18n.T("Please enter valid positive integers!")
}

// ShowWarning shows a modal warning for a rejected draw.
func (a *AppManager) ShowWarning(err error) {
	if a.mainWindow == nil {
		log.Printf("Warning without window: %v", err)
		return
	}
	dialog.ShowInformation(i18n.T("Error"), warningMessage(err), a.mainWindow)
}

// helpText returns the help for the current language, falling back to English.
func (a *AppManager) helpText() (string, error) {
	data, err := a.content.ReadFile(helpPath)
	if err != nil {
		return "", err
	}

	var texts map[string]string
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return "", err
	}
	if text, ok := texts[i18n.GetLang()]; ok {
		return text, nil
	}
	return texts["en"], nil
}

// ShowHelpDialog shows the usage help.
func (a *AppManager) ShowHelpDialog() {
	if a.mainWindow == nil {
		return
	}
	contentText, err := a.helpText()
	if err != nil {
		dialog.ShowError(err, a.mainWindow)
		return
	}

	text := widget.NewLabel(contentText)
	text.Wrapping = fyne.TextWrapWord

	scrollableContent := container.NewVScroll(text)
	scrollableContent.SetMinSize(fyne.NewSize(460, 260))

	dialog.ShowCustom(i18n.T("Help"), i18n.T("Close"), scrollableContent, a.mainWindow)
}

// ShowValue puts a frame on the result label.
func (a *AppManager) ShowValue(value int) {
	if a.resultText == nil {
		return
	}
	a.resultText.Text = strconv.Itoa(value)
	a.resultText.Refresh()
}

// ShowRevealed updates the caption listing values already revealed.
func (a *AppManager) ShowRevealed(values []int) {
	if a.revealedLabel == nil {
		return
	}
	a.revealedLabel.SetText(ui.FormatRevealed(values))
}

// SetDrawEnabled enables or disables the draw button.
func (a *AppManager) SetDrawEnabled(enabled bool) {
	if a.drawButton == nil {
		return
	}
	if enabled {
		a.drawButton.Enable()
	} else {
		a.drawButton.Disable()
	}
}

// PlaySound plays the tone for a cue.
func (a *AppManager) PlaySound(cue draw.Cue) {
	b, ok := a.audioBuffers[cue]
	if !ok {
		return
	}

	a.speakerLock.Lock()
	defer a.speakerLock.Unlock()

	speaker.Play(b.Streamer(0, b.Len()))
}

// MaxNumberText returns the max number field's text.
func (a *AppManager) MaxNumberText() string {
	if a.maxEntry == nil {
		return ""
	}
	return a.maxEntry.Text
}

// QuantityText returns the quantity field's text.
func (a *AppManager) QuantityText() string {
	if a.quantityEntry == nil {
		return ""
	}
	return a.quantityEntry.Text
}

// SetInputs sets the two entry widgets.
func (a *AppManager) SetInputs(maxEntry, quantityEntry *widget.Entry) {
	a.maxEntry = maxEntry
	a.quantityEntry = quantityEntry
}

// SetDrawButton sets the draw button widget.
func (a *AppManager) SetDrawButton(btn *widget.Button) {
	a.drawButton = btn
}

// SetResultDisplay sets the result label and the revealed-values caption.
func (a *AppManager) SetResultDisplay(result *canvas.Text, revealed *widget.Label) {
	a.resultText = result
	a.revealedLabel = revealed
}

// Shutdown releases the audio device.
func (a *AppManager) Shutdown() {
	if a.audioReady {
		speaker.Close()
		a.audioReady = false
	}
}
