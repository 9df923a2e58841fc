package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"SketchPad/internal/sketch"
)

// EncodePNG renders the command list onto an offscreen vector surface and
// encodes it as a PNG of base*scale pixels in each dimension. Commands keep
// drawing in logical units; only the writer resolution changes, so output at
// any scale is the on-screen composition scaled uniformly.
func EncodePNG(w io.Writer, cmds []sketch.Command, width, height, scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("export: scale must be positive, got %g", scale)
	}
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(width, height))

	surf := &rasterSurface{ctx: ctx, height: height}
	for _, cmd := range cmds {
		cmd.Render(surf)
	}
	if surf.fontErr != nil {
		return surf.fontErr
	}

	log.Printf("[EXPORT] Encoding %d commands at %gx%g scale %g", len(cmds), width, height, scale)
	return renderers.PNG(canvas.DPMM(scale))(w, c)
}

// rasterSurface adapts a vector drawing context to sketch.Surface. The
// context's origin is bottom-left with y up, so every coordinate flips
// against the surface height rather than flipping the view, which would
// mirror glyphs.
type rasterSurface struct {
	ctx     *canvas.Context
	height  float64
	fonts   *canvas.FontFamily
	fontErr error
}

func (r *rasterSurface) StrokePath(pts []sketch.Point, style sketch.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	r.ctx.Push()
	r.ctx.SetStrokeColor(style.Color)
	r.ctx.SetStrokeWidth(style.Width)
	r.ctx.SetStrokeCapper(canvas.RoundCap)
	r.ctx.SetStrokeJoiner(canvas.RoundJoin)
	r.ctx.MoveTo(pts[0].X, r.height-pts[0].Y)
	for _, p := range pts[1:] {
		r.ctx.LineTo(p.X, r.height-p.Y)
	}
	r.ctx.Stroke()
	r.ctx.Pop()
}

func (r *rasterSurface) FillDot(c sketch.Point, radius float64, col color.Color) {
	r.ctx.Push()
	r.ctx.SetFillColor(col)
	r.ctx.DrawPath(c.X, r.height-c.Y, canvas.Circle(radius))
	r.ctx.Pop()
}

func (r *rasterSurface) OutlineDot(c sketch.Point, radius float64, col color.Color) {
	r.ctx.Push()
	r.ctx.SetFillColor(canvas.Transparent)
	r.ctx.SetStrokeColor(col)
	r.ctx.SetStrokeWidth(1.0)
	r.ctx.DrawPath(c.X, r.height-c.Y, canvas.Circle(radius))
	r.ctx.Pop()
}

func (r *rasterSurface) DrawGlyph(glyph string, size float64, c sketch.Point) {
	face, err := r.face(size)
	if err != nil {
		return
	}
	r.ctx.Push()
	r.ctx.SetFillColor(canvas.Black)
	// Baseline sits below the anchor so the glyph body is roughly centered.
	r.ctx.DrawText(c.X, r.height-c.Y-size*0.35, canvas.NewTextLine(face, glyph, canvas.Center))
	r.ctx.Pop()
}

// face lazily loads the sticker font so stroke-only exports never touch the
// font system. The first failure sticks and is reported once.
func (r *rasterSurface) face(size float64) (*canvas.FontFace, error) {
	if r.fonts == nil && r.fontErr == nil {
		family := canvas.NewFontFamily("sticker")
		if err := family.LoadLocalFont("DejaVuSans", canvas.FontRegular); err != nil {
			r.fontErr = fmt.Errorf("export: load sticker font: %w", err)
			log.Printf("[EXPORT] %v", r.fontErr)
		} else {
			r.fonts = family
		}
	}
	if r.fontErr != nil {
		return nil, r.fontErr
	}
	// 72.0/25.4 converts mm to pt (canvas no longer exports PtPerMm).
	return r.fonts.Face(size*72.0/25.4, canvas.Black, canvas.FontRegular, canvas.FontNormal), nil
}
