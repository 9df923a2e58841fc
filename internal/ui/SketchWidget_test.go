package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchPad/internal/sketch"
)

func newUISession() *sketch.Session {
	return sketch.NewSession(
		sketch.StrokeStyle{Color: sketch.DefaultInk, Width: ThinWidth},
		[]sketch.StickerDef{{Glyph: "🙂", Size: sketch.DefaultStickerSize}},
	)
}

func primaryAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestWidgetPointerFlowCommitsStroke(t *testing.T) {
	test.NewApp()
	s := newUISession()
	w := NewSketchWidget(s)

	w.MouseDown(primaryAt(10, 10))
	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 20)}})
	w.MouseUp(primaryAt(20, 20))

	cmds := s.History().Commands()
	require.Len(t, cmds, 1)
	st := cmds[0].(*sketch.Stroke)
	assert.Equal(t, []sketch.Point{{X: 10, Y: 10}, {X: 20, Y: 20}}, st.Points())
	assert.False(t, s.Cursor().Active)
}

func TestWidgetSecondaryButtonIgnored(t *testing.T) {
	test.NewApp()
	s := newUISession()
	w := NewSketchWidget(s)

	ev := primaryAt(10, 10)
	ev.Button = desktop.MouseButtonSecondary
	w.MouseDown(ev)

	assert.Empty(t, s.History().Commands())
	assert.False(t, s.Cursor().Active)
}

func TestWidgetHoverTracksPreview(t *testing.T) {
	test.NewApp()
	s := newUISession()
	w := NewSketchWidget(s)

	w.MouseMoved(primaryAt(33, 44))

	assert.True(t, s.Preview().Visible())
	assert.Equal(t, sketch.Point{X: 33, Y: 44}, s.Preview().At())
}

func TestWidgetMouseOutEndsInteraction(t *testing.T) {
	test.NewApp()
	s := newUISession()
	w := NewSketchWidget(s)

	w.MouseDown(primaryAt(10, 10))
	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(15, 15)}})
	w.MouseOut()

	assert.False(t, s.Cursor().Active)
	assert.True(t, s.Preview().Visible())
	assert.Len(t, s.History().Commands()[0].(*sketch.Stroke).Points(), 2)
}

func TestRendererRebuildsObjectsFromSession(t *testing.T) {
	test.NewApp()
	s := newUISession()
	w := NewSketchWidget(s)
	r := w.CreateRenderer()

	w.MouseDown(primaryAt(10, 10))
	w.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 20)}})
	w.MouseUp(primaryAt(20, 20))

	// Background + one segment + two vertex dots + the re-armed preview
	// dot and its outline ring.
	assert.Len(t, r.Objects(), 6)
}

func TestObjectSurfaceStrokeStyling(t *testing.T) {
	surf := &objectSurface{}
	red := color.NRGBA{R: 255, A: 255}
	surf.StrokePath([]sketch.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, sketch.StrokeStyle{Color: red, Width: 6})

	// One segment plus a cap dot per vertex.
	require.Len(t, surf.objects, 3)
}
