package main

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"NumberDraw/draw"
	"NumberDraw/i18n"
	"NumberDraw/ui"

	"fyne.io/fyne/v2/test"
	"github.com/ncruces/zenity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queuedTick struct {
	at time.Time
	fn func()
}

// manualLoop stands in for the Fyne event loop and the wall clock.
type manualLoop struct {
	now   time.Time
	queue []queuedTick
}

func (l *manualLoop) Now() time.Time { return l.now }

func (l *manualLoop) After(d time.Duration, fn func()) {
	l.queue = append(l.queue, queuedTick{at: l.now.Add(d), fn: fn})
}

func (l *manualLoop) step() bool {
	if len(l.queue) == 0 {
		return false
	}
	sort.SliceStable(l.queue, func(i, j int) bool { return l.queue[i].at.Before(l.queue[j].at) })
	next := l.queue[0]
	l.queue = l.queue[1:]
	l.now = next.at
	next.fn()
	return true
}

func newTestApp(t *testing.T) (*AppManager, *manualLoop) {
	t.Helper()
	fyneApp := test.NewTempApp(t)

	cfg, err := draw.LoadConfig(content)
	require.NoError(t, err)

	loop := &manualLoop{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
	sampler := draw.NewDeterministicSampler(rand.NewPCG(11, 13))
	a := newAppManager(content, cfg, loop, loop, sampler)

	w := ui.CreateMainWindow(a, fyneApp)
	a.mainWindow = w
	t.Cleanup(w.Close)
	return a, loop
}

func TestApp_StartupState(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, "50", a.MaxNumberText())
	assert.Equal(t, "1", a.QuantityText())
	assert.False(t, a.drawButton.Disabled(), "valid defaults enable the button")
	assert.Equal(t, "", a.resultText.Text)
}

func TestApp_ButtonTracksInputs(t *testing.T) {
	a, _ := newTestApp(t)

	a.maxEntry.SetText("abc")
	assert.True(t, a.drawButton.Disabled())

	a.maxEntry.SetText("12")
	assert.False(t, a.drawButton.Disabled())

	a.quantityEntry.SetText("0")
	assert.True(t, a.drawButton.Disabled())
}

func TestApp_SingleDraw(t *testing.T) {
	a, loop := newTestApp(t)
	start := loop.now

	test.Tap(a.drawButton)
	assert.True(t, a.drawButton.Disabled())
	assert.NotEmpty(t, a.resultText.Text)

	for loop.step() {
		if a.controller.Animating() {
			assert.True(t, a.drawButton.Disabled())
		}
	}

	assert.Equal(t, 1200*time.Millisecond, loop.now.Sub(start))
	assert.Equal(t, strconv.Itoa(a.controller.Result().At(0)), a.resultText.Text)
	assert.False(t, a.drawButton.Disabled())
	assert.Equal(t, "", a.revealedLabel.Text)
}

func TestApp_MultiDraw(t *testing.T) {
	a, loop := newTestApp(t)
	a.maxEntry.SetText("10")
	a.quantityEntry.SetText("5")

	test.Tap(a.drawButton)
	want := a.controller.Result().Values()
	require.Len(t, want, 5)

	shown := []string{a.resultText.Text}
	for i := 1; i < 5; i++ {
		require.True(t, loop.step())
		assert.True(t, a.drawButton.Disabled())
		shown = append(shown, a.resultText.Text)
	}
	require.True(t, loop.step())
	assert.False(t, loop.step())

	for i, v := range want {
		assert.Equal(t, strconv.Itoa(v), shown[i])
	}
	assert.Equal(t, shown[4], a.resultText.Text)
	assert.False(t, a.drawButton.Disabled())
	assert.Equal(t, ui.FormatRevealed(want), a.revealedLabel.Text)
}

func TestApp_InsufficientRangeWarns(t *testing.T) {
	a, loop := newTestApp(t)
	a.maxEntry.SetText("5")
	a.quantityEntry.SetText("10")
	require.False(t, a.drawButton.Disabled())

	test.Tap(a.drawButton)

	assert.False(t, loop.step(), "no animation may start")
	assert.Equal(t, "", a.resultText.Text)
	assert.Equal(t, 0, a.controller.Result().Len())
	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top(), "warning dialog shown")
	assert.False(t, a.drawButton.Disabled())
}

func TestApp_QuantityAboveLimitWarns(t *testing.T) {
	a, loop := newTestApp(t)
	a.maxEntry.SetText("100000000000")
	a.quantityEntry.SetText("100000000000")

	test.Tap(a.drawButton)

	assert.False(t, loop.step(), "no animation may start")
	assert.False(t, a.controller.Animating())
	assert.Equal(t, 0, a.controller.Result().Len())
	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top(), "warning dialog shown")
	assert.False(t, a.drawButton.Disabled())
}

func TestApp_SubmitInvalidWarns(t *testing.T) {
	a, loop := newTestApp(t)
	a.quantityEntry.SetText("x")
	require.True(t, a.drawButton.Disabled())

	a.quantityEntry.OnSubmitted(a.quantityEntry.Text)

	assert.False(t, loop.step())
	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top())
	assert.True(t, a.drawButton.Disabled())
}

func TestApp_SpaceKeyDraws(t *testing.T) {
	a, loop := newTestApp(t)

	a.HandleKeyRune(' ')
	require.True(t, a.controller.Animating())

	// Ignored while the button is disabled.
	a.HandleKeyRune(' ')
	for loop.step() {
	}
	assert.False(t, a.controller.Animating())
}

func TestApp_HelpDialog(t *testing.T) {
	a, _ := newTestApp(t)

	prev := i18n.GetLang()
	t.Cleanup(func() { i18n.SetLang(prev) })

	i18n.SetLang("es")
	text, err := a.helpText()
	require.NoError(t, err)
	assert.Contains(t, text, "Sortear")

	i18n.SetLang("de")
	text, err = a.helpText()
	require.NoError(t, err)
	assert.Contains(t, text, "press Draw")

	a.ShowHelpDialog()
	assert.NotNil(t, a.mainWindow.Canvas().Overlays().Top())
}

func TestWarningMessage(t *testing.T) {
	prev := i18n.GetLang()
	t.Cleanup(func() { i18n.SetLang(prev) })
	i18n.SetLang("en")

	_, rangeErr := draw.ParseConfiguration("5", "10", 10000)
	_, inputErr := draw.ParseConfiguration("x", "1", 10000)
	_, limitErr := draw.ParseConfiguration("100000000000", "100000000000", 10000)

	assert.Equal(t, "Not enough numbers available, please adjust the parameters!", warningMessage(rangeErr))
	assert.Equal(t, "Please enter valid positive integers!", warningMessage(inputErr))
	assert.Equal(t, "Too many numbers for one draw, please lower the quantity!", warningMessage(limitErr))
}

func TestShowWarningWithoutWindow(t *testing.T) {
	a := newAppManager(content, draw.DefaultConfig(), &manualLoop{}, &manualLoop{}, draw.NewSampler())

	assert.NotPanics(t, func() {
		a.ShowWarning(errors.New("boom"))
		a.ShowValue(3)
		a.ShowRevealed([]int{1, 2})
		a.SetDrawEnabled(true)
		a.PlaySound(draw.CueFinal)
	})
}

func TestWaitForEnter(t *testing.T) {
	var out bytes.Buffer
	waitForEnter(strings.NewReader("\n"), &out)
	assert.Contains(t, out.String(), "press Enter to exit")

	out.Reset()
	waitForEnter(strings.NewReader(""), &out)
	assert.Contains(t, out.String(), "press Enter")
}

func TestAcknowledged(t *testing.T) {
	assert.True(t, acknowledged(nil))
	assert.True(t, acknowledged(zenity.ErrCanceled), "closing the dialog acknowledges it")
	assert.True(t, acknowledged(fmt.Errorf("dialog: %w", zenity.ErrCanceled)))
	assert.False(t, acknowledged(errors.New("zenity: no dialog tool found")))
}
