package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"SketchPad/internal/sketch"
)

// objectSurface collects fyne canvas objects for one repaint. Each call
// styles its own objects, so nothing carries over between commands.
type objectSurface struct {
	objects []fyne.CanvasObject
}

func (s *objectSurface) StrokePath(pts []sketch.Point, style sketch.StrokeStyle) {
	for i := 1; i < len(pts); i++ {
		seg := canvas.NewLine(style.Color)
		seg.StrokeWidth = float32(style.Width)
		seg.Position1 = fyne.NewPos(float32(pts[i-1].X), float32(pts[i-1].Y))
		seg.Position2 = fyne.NewPos(float32(pts[i].X), float32(pts[i].Y))
		s.objects = append(s.objects, seg)
	}
	// Dots on every vertex approximate round caps and joins; plain line
	// segments leave notches at direction changes.
	for _, p := range pts {
		s.FillDot(p, style.Width/2, style.Color)
	}
}

func (s *objectSurface) FillDot(c sketch.Point, radius float64, col color.Color) {
	dot := canvas.NewCircle(col)
	dot.Position1 = fyne.NewPos(float32(c.X-radius), float32(c.Y-radius))
	dot.Position2 = fyne.NewPos(float32(c.X+radius), float32(c.Y+radius))
	s.objects = append(s.objects, dot)
}

func (s *objectSurface) OutlineDot(c sketch.Point, radius float64, col color.Color) {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = col
	ring.StrokeWidth = 1
	ring.Position1 = fyne.NewPos(float32(c.X-radius), float32(c.Y-radius))
	ring.Position2 = fyne.NewPos(float32(c.X+radius), float32(c.Y+radius))
	s.objects = append(s.objects, ring)
}

func (s *objectSurface) DrawGlyph(glyph string, size float64, c sketch.Point) {
	t := canvas.NewText(glyph, color.Black)
	t.TextSize = float32(size)
	bounds := fyne.MeasureText(glyph, float32(size), fyne.TextStyle{})
	t.Resize(bounds)
	t.Move(fyne.NewPos(float32(c.X)-bounds.Width/2, float32(c.Y)-bounds.Height/2))
	s.objects = append(s.objects, t)
}
