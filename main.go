package main

import (
	"embed"
	"fmt"
	"log"
	"runtime/debug"

	"NumberDraw/draw"
	"NumberDraw/ui"

	"fyne.io/fyne/v2/app"
)

//go:embed assets/*
var content embed.FS

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic stack:\n%s", debug.Stack())
			reportFatal(fmt.Errorf("panic: %v", r))
		}
	}()

	if err := run(); err != nil {
		reportFatal(err)
	}
}

func run() error {
	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewCustomTheme(draw.FontSize))

	a, err := NewAppManager(content)
	if err != nil {
		return err
	}

	w := ui.CreateMainWindow(a, fyneApp)
	a.mainWindow = w
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
	return nil
}
