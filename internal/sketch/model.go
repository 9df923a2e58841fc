package sketch

import "image/color"

// Point is a canvas-space coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StrokeStyle is the pen configuration a stroke captures at creation.
type StrokeStyle struct {
	Color color.Color
	Width float64
}

// DefaultInk is the fixed stroke color. The surface has no color picker,
// only width presets and the background-colored eraser.
var DefaultInk = color.Color(color.Black)

// Surface is the drawing target a command paints onto. Implementations must
// isolate style state per call so one command never bleeds width, color or
// font settings into the next.
type Surface interface {
	// StrokePath draws a connected path through pts with round caps and joins.
	StrokePath(pts []Point, style StrokeStyle)
	// FillDot draws a filled circle centered on c.
	FillDot(c Point, radius float64, col color.Color)
	// OutlineDot draws an unfilled circle outline centered on c.
	OutlineDot(c Point, radius float64, col color.Color)
	// DrawGlyph draws the glyph (text or emoji) centered on c at the given size.
	DrawGlyph(glyph string, size float64, c Point)
}

// Command is a self-contained, renderable unit of drawing content.
// Render must be idempotent: repeated calls against the same surface state
// produce identical output.
type Command interface {
	ID() string
	Render(s Surface)
}
