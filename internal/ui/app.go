package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/sketch"
)

// RunApp builds the window around the session and blocks until it closes.
func RunApp(session *sketch.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("SketchPad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	board := NewSketchWidget(session)
	toolbar := NewToolbar(session, myWindow)

	status := widget.NewLabel("Ready")
	session.Subscribe(func(sig sketch.Signal) {
		if sig == sketch.SignalContent {
			status.SetText(fmt.Sprintf("%d commands on canvas", len(session.History().Commands())))
		}
	})

	undoShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}
	redoShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}
	myWindow.Canvas().AddShortcut(undoShortcut, func(fyne.Shortcut) { session.Undo() })
	myWindow.Canvas().AddShortcut(redoShortcut, func(fyne.Shortcut) { session.Redo() })

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
