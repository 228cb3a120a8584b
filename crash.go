package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ncruces/zenity"
)

// reportFatal logs err and keeps the process alive until the user has
// acknowledged it, through a native dialog when one is available and
// through stdin otherwise. It never returns.
func reportFatal(err error) {
	log.Printf("Fatal error: %v", err)

	msg := fmt.Sprintf("The program crashed and has to close.\n\n%v", err)
	if dlgErr := zenity.Error(msg, zenity.Title("NumberDraw"), zenity.ErrorIcon); !acknowledged(dlgErr) {
		log.Printf("Could not show crash dialog: %v", dlgErr)
		waitForEnter(os.Stdin, os.Stderr)
	}
	os.Exit(1)
}

// acknowledged reports whether the crash dialog was seen and dismissed.
// Closing it from the title bar counts.
func acknowledged(dlgErr error) bool {
	return dlgErr == nil || errors.Is(dlgErr, zenity.ErrCanceled)
}

// waitForEnter prompts on out and blocks until a line (or EOF) arrives on in.
func waitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "The program crashed, press Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
