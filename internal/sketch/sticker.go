package sketch

import "github.com/google/uuid"

// Sticker is a glyph stamped at a single anchor. The anchor moves while the
// pointer drags; glyph and size are frozen at creation.
type Sticker struct {
	id    string
	at    Point
	glyph string
	size  float64
}

func NewSticker(start Point, glyph string, size float64) *Sticker {
	return &Sticker{
		id:    uuid.NewString(),
		at:    start,
		glyph: glyph,
		size:  size,
	}
}

func (sk *Sticker) ID() string { return sk.id }

// MoveTo overwrites the anchor. Only the in-progress sticker may move.
func (sk *Sticker) MoveTo(x, y float64) {
	sk.at = Point{X: x, Y: y}
}

func (sk *Sticker) Anchor() Point { return sk.at }
func (sk *Sticker) Glyph() string { return sk.glyph }
func (sk *Sticker) Size() float64 { return sk.size }

func (sk *Sticker) Render(s Surface) {
	s.DrawGlyph(sk.glyph, sk.size, sk.at)
}
