package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/export"
	"SketchPad/internal/sketch"
)

// Marker presets. The eraser is a wide background-colored stroke, not a
// separate tool kind.
const (
	ThinWidth   = 2.0
	ThickWidth  = 8.0
	EraserWidth = 24.0

	// ExportScale is the resolution multiplier for PNG export.
	ExportScale = 4.0
)

// NewToolbar assembles the tool row: marker presets, sticker palette with a
// custom-sticker entry, history actions and export actions.
func NewToolbar(session *sketch.Session, win fyne.Window) fyne.CanvasObject {
	thin := widget.NewButton("Thin", func() {
		session.SelectStroke(sketch.StrokeStyle{Color: sketch.DefaultInk, Width: ThinWidth})
	})
	thick := widget.NewButton("Thick", func() {
		session.SelectStroke(sketch.StrokeStyle{Color: sketch.DefaultInk, Width: ThickWidth})
	})
	eraser := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		session.SelectStroke(sketch.StrokeStyle{Color: color.White, Width: EraserWidth})
	})

	stickerRow := container.NewHBox()
	rebuildStickers := func() {
		stickerRow.Objects = nil
		for i, def := range session.Stickers() {
			idx := i
			stickerRow.Add(widget.NewButton(def.Glyph, func() {
				session.SelectSticker(idx)
			}))
		}
		stickerRow.Refresh()
	}
	rebuildStickers()

	entry := widget.NewEntry()
	entry.SetPlaceHolder("Custom sticker")
	addSticker := func(label string) {
		before := len(session.Stickers())
		session.AddSticker(label)
		if len(session.Stickers()) != before {
			entry.SetText("")
			rebuildStickers()
		}
	}
	entry.OnSubmitted = addSticker
	add := widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		addSticker(entry.Text)
	})
	entryBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 36)), entry)

	undo := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), session.Undo)
	redo := widget.NewButtonWithIcon("", theme.ContentRedoIcon(), session.Redo)
	clear := widget.NewButtonWithIcon("", theme.ContentClearIcon(), session.Clear)

	// Undo/redo availability is derived from the stacks, never stored.
	refreshHistoryButtons := func() {
		if session.CanUndo() {
			undo.Enable()
		} else {
			undo.Disable()
		}
		if session.CanRedo() {
			redo.Enable()
		} else {
			redo.Disable()
		}
	}
	refreshHistoryButtons()
	session.Subscribe(func(sig sketch.Signal) {
		if sig == sketch.SignalContent {
			refreshHistoryButtons()
		}
	})

	savePNG := widget.NewButtonWithIcon("PNG", theme.DocumentSaveIcon(), func() {
		saveWithDialog(win, "sketch.png", func(wc fyne.URIWriteCloser) error {
			return export.EncodePNG(wc, session.History().Commands(), CanvasWidth, CanvasHeight, ExportScale)
		})
	})
	savePDF := widget.NewButtonWithIcon("PDF", theme.DocumentSaveIcon(), func() {
		saveWithDialog(win, "sketch.pdf", func(wc fyne.URIWriteCloser) error {
			return export.WritePDF(wc, session.History().Commands(), CanvasWidth, CanvasHeight)
		})
	})

	return container.NewHBox(
		widget.NewLabel("Marker:"),
		thin,
		thick,
		eraser,
		widget.NewSeparator(),
		widget.NewLabel("Stickers:"),
		stickerRow,
		entryBox,
		add,
		widget.NewSeparator(),
		undo,
		redo,
		clear,
		widget.NewSeparator(),
		savePNG,
		savePDF,
		layout.NewSpacer(),
	)
}

func saveWithDialog(win fyne.Window, name string, write func(fyne.URIWriteCloser) error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		defer func() {
			if cerr := wc.Close(); cerr != nil {
				log.Printf("[EXPORT] Error closing writer: %v", cerr)
			}
		}()
		if err := write(wc); err != nil {
			log.Printf("[EXPORT] %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
	d.SetFileName(name)
	d.Show()
}
