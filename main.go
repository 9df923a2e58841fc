package main

import (
	"log"

	"SketchPad/internal/sketch"
	"SketchPad/internal/ui"
)

// Seed stickers offered before the user registers custom ones.
var defaultStickers = []sketch.StickerDef{
	{Glyph: "🙂", Size: sketch.DefaultStickerSize},
	{Glyph: "⭐", Size: sketch.DefaultStickerSize},
	{Glyph: "❤️", Size: sketch.DefaultStickerSize},
}

func main() {
	log.Println("Starting SketchPad")

	session := sketch.NewSession(
		sketch.StrokeStyle{Color: sketch.DefaultInk, Width: ui.ThinWidth},
		defaultStickers,
	)
	ui.RunApp(session)
}
