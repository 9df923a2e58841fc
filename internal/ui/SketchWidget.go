package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchPad/internal/sketch"
)

// Logical canvas size. Export renders at this base resolution times the
// requested scale, so on-screen and exported compositions line up.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0
)

// SketchWidget is the interactive drawing area. It owns no drawing state;
// every pointer event funnels into the session and every repaint replays
// the session's render procedure.
type SketchWidget struct {
	widget.BaseWidget
	session *sketch.Session
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)

func NewSketchWidget(s *sketch.Session) *SketchWidget {
	w := &SketchWidget{session: s}
	w.ExtendBaseWidget(w)
	s.Subscribe(func(sketch.Signal) {
		w.Refresh()
	})
	return w
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.session.PointerDown(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.session.PointerUp()
	}
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	w.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

func (w *SketchWidget) DragEnd() {
	w.session.PointerUp()
}

func (w *SketchWidget) MouseIn(e *desktop.MouseEvent) {
	w.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

// MouseMoved also fires during a drag; Dragged already feeds those events
// into the session, so only hover motion passes through here.
func (w *SketchWidget) MouseMoved(e *desktop.MouseEvent) {
	if !w.session.Cursor().Active {
		w.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	}
}

func (w *SketchWidget) MouseOut() {
	w.session.PointerLeave()
}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{
		widget:     w,
		background: canvas.NewRectangle(color.White),
	}
}

type sketchRenderer struct {
	widget     *SketchWidget
	background *canvas.Rectangle
}

// Objects rebuilds the full paint list: background, committed commands in
// order, preview last. The session skips the preview during an active drag.
func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	surf := &objectSurface{}
	r.widget.session.Render(surf)
	return append([]fyne.CanvasObject{r.background}, surf.objects...)
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CanvasWidth, CanvasHeight)
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *sketchRenderer) Destroy() {}
