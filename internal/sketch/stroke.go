package sketch

import "github.com/google/uuid"

// Stroke is a freehand path. Points only grow; the style is frozen at
// creation so later tool changes never repaint old content.
type Stroke struct {
	id     string
	points []Point
	style  StrokeStyle
}

// NewStroke starts a stroke with a single point under the pointer.
func NewStroke(start Point, style StrokeStyle) *Stroke {
	return &Stroke{
		id:     uuid.NewString(),
		points: []Point{start},
		style:  style,
	}
}

func (st *Stroke) ID() string { return st.id }

// Extend appends a point. Callers must not extend a stroke once the
// interaction that created it has ended.
func (st *Stroke) Extend(x, y float64) {
	st.points = append(st.points, Point{X: x, Y: y})
}

// Points returns a copy of the recorded path.
func (st *Stroke) Points() []Point {
	pts := make([]Point, len(st.points))
	copy(pts, st.points)
	return pts
}

func (st *Stroke) Style() StrokeStyle { return st.style }

// Render paints the stroke. A single recorded point draws as a dot of
// radius width/2 so a plain click stays visible.
func (st *Stroke) Render(s Surface) {
	if len(st.points) == 0 {
		return
	}
	if len(st.points) == 1 {
		s.FillDot(st.points[0], st.style.Width/2, st.style.Color)
		return
	}
	s.StrokePath(st.points, st.style)
}
