package sketch

import (
	"image/color"
	"log"
	"strings"
)

// ToolKind selects which factory a pointer-down uses.
type ToolKind int

const (
	ToolStroke ToolKind = iota
	ToolSticker
)

// StickerDef is one entry of the sticker registry.
type StickerDef struct {
	Glyph string  `json:"glyph"`
	Size  float64 `json:"size"`
}

// DefaultStickerSize is the font size given to stickers registered at runtime.
const DefaultStickerSize = 32.0

// Cursor tracks the pointer. Active is true only while a button is held
// over the canvas.
type Cursor struct {
	Active bool
	X, Y   float64
}

// Preview is the non-committed footprint of the active tool. It mirrors the
// tool's parameters and follows the cursor; it is never part of the display
// list and is rebuilt whenever the tool changes.
type Preview struct {
	visible bool
	at      Point
	kind    ToolKind
	style   StrokeStyle
	sticker StickerDef
}

func (p *Preview) Visible() bool { return p.visible }
func (p *Preview) At() Point     { return p.at }

// Render paints the footprint at the tracked position. Callers decide
// whether the preview may be shown at all; this only honors the flag.
func (p *Preview) Render(s Surface) {
	if !p.visible {
		return
	}
	switch p.kind {
	case ToolStroke:
		s.FillDot(p.at, p.style.Width/2, p.style.Color)
		// The outline keeps the footprint visible even when the marker
		// matches the canvas background, as the eraser preset does.
		s.OutlineDot(p.at, p.style.Width/2, previewOutline)
	case ToolSticker:
		s.DrawGlyph(p.sticker.Glyph, p.sticker.Size, p.at)
	}
}

var previewOutline = color.Color(color.Gray{Y: 0x80})

// Session owns everything the drawing model mutates: the history, the tool
// parameters, the sticker registry, the cursor and the in-progress command.
// All methods are synchronous and must be called from a single goroutine,
// the UI event dispatch.
type Session struct {
	notifier *Notifier
	history  *History

	tool     ToolKind
	style    StrokeStyle
	sticker  StickerDef
	registry []StickerDef

	cursor  Cursor
	preview Preview
	live    Command
}

// NewSession seeds the registry and starts with a stroke tool.
func NewSession(style StrokeStyle, seed []StickerDef) *Session {
	n := &Notifier{}
	s := &Session{
		notifier: n,
		history:  NewHistory(n),
		tool:     ToolStroke,
		style:    style,
		registry: append([]StickerDef(nil), seed...),
	}
	if len(s.registry) > 0 {
		s.sticker = s.registry[0]
	}
	s.rebuildPreview()
	return s
}

// Subscribe registers an observer for model signals.
func (s *Session) Subscribe(fn func(Signal)) {
	s.notifier.Subscribe(fn)
}

func (s *Session) History() *History { return s.history }
func (s *Session) Cursor() Cursor    { return s.cursor }
func (s *Session) Preview() *Preview { return &s.preview }
func (s *Session) Tool() ToolKind    { return s.tool }

// Stickers returns the registry in registration order.
func (s *Session) Stickers() []StickerDef {
	defs := make([]StickerDef, len(s.registry))
	copy(defs, s.registry)
	return defs
}

// SelectStroke switches to the stroke tool with the given style.
func (s *Session) SelectStroke(style StrokeStyle) {
	s.tool = ToolStroke
	s.style = style
	s.rebuildPreview()
	s.notifier.Publish(SignalTool)
}

// SelectSticker switches to the sticker tool using registry entry i.
// Out-of-range indices are ignored.
func (s *Session) SelectSticker(i int) {
	if i < 0 || len(s.registry) <= i {
		return
	}
	s.tool = ToolSticker
	s.sticker = s.registry[i]
	s.rebuildPreview()
	s.notifier.Publish(SignalTool)
}

// AddSticker registers a user-submitted sticker and selects it. Empty or
// whitespace-only labels are rejected silently: the registry and active
// tool stay untouched.
func (s *Session) AddSticker(label string) {
	glyph := strings.TrimSpace(label)
	if glyph == "" {
		return
	}
	s.registry = append(s.registry, StickerDef{Glyph: glyph, Size: DefaultStickerSize})
	log.Printf("[SESSION] Registered custom sticker %q", glyph)
	s.SelectSticker(len(s.registry) - 1)
}

// rebuildPreview snapshots the active tool's footprint parameters. The
// preview keeps its position and visibility across tool changes.
func (s *Session) rebuildPreview() {
	s.preview.kind = s.tool
	s.preview.style = s.style
	s.preview.sticker = s.sticker
}

// PointerDown starts an interaction: the preview hides, a new command is
// created from the active tool and committed immediately so it is visible
// mid-drag, and any redo history is gone.
func (s *Session) PointerDown(x, y float64) {
	s.cursor = Cursor{Active: true, X: x, Y: y}
	s.preview.visible = false
	s.notifier.Publish(SignalTool)

	at := Point{X: x, Y: y}
	switch s.tool {
	case ToolSticker:
		s.live = NewSticker(at, s.sticker.Glyph, s.sticker.Size)
	default:
		s.live = NewStroke(at, s.style)
	}
	s.history.Commit(s.live)
}

// PointerMove extends the in-progress command while a button is held, and
// otherwise moves the visible preview along with the cursor.
func (s *Session) PointerMove(x, y float64) {
	s.cursor.X, s.cursor.Y = x, y
	if s.cursor.Active && s.live != nil {
		switch cmd := s.live.(type) {
		case *Stroke:
			cmd.Extend(x, y)
		case *Sticker:
			cmd.MoveTo(x, y)
		}
		s.notifier.Publish(SignalContent)
		return
	}
	s.preview.at = Point{X: x, Y: y}
	s.preview.visible = true
	s.notifier.Publish(SignalTool)
}

// PointerUp ends the interaction. The committed command stays as-is and the
// preview re-arms at the last known position.
func (s *Session) PointerUp() {
	s.endInteraction()
}

// PointerLeave ends the interaction like PointerUp. The preview hides while
// the pointer is off the canvas and re-arms at the last known position, so
// the final visible state matches a plain pointer-up.
func (s *Session) PointerLeave() {
	s.preview.visible = false
	s.notifier.Publish(SignalTool)
	s.endInteraction()
}

func (s *Session) endInteraction() {
	s.cursor.Active = false
	s.live = nil
	s.preview.at = Point{X: s.cursor.X, Y: s.cursor.Y}
	s.preview.visible = true
	s.notifier.Publish(SignalTool)
}

func (s *Session) Undo()  { s.history.Undo() }
func (s *Session) Redo()  { s.history.Redo() }
func (s *Session) Clear() { s.history.Clear() }

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Render is the single repaint procedure: every committed command in paint
// order, then the preview on top, but never while a drag is in progress.
func (s *Session) Render(dst Surface) {
	for _, cmd := range s.history.Commands() {
		cmd.Render(dst)
	}
	if !s.cursor.Active && s.preview.visible {
		s.preview.Render(dst)
	}
}
