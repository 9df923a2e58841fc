package export

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"

	"SketchPad/internal/sketch"
)

// WritePDF renders the command list onto a single PDF page of the given
// logical size (in points).
func WritePDF(w io.Writer, cmds []sketch.Command, width, height float64) error {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)

	surf := &pdfSurface{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	for _, cmd := range cmds {
		cmd.Render(surf)
	}
	if len(surf.unsupported) > 0 {
		return fmt.Errorf("export: glyphs not representable in the PDF core fonts: %s",
			strings.Join(surf.unsupported, " "))
	}

	log.Printf("[EXPORT] Writing %d commands to PDF", len(cmds))
	return doc.Output(w)
}

// pdfSurface adapts a gofpdf document to sketch.Surface. PDF pages here use
// the same y-down point units as the canvas, so coordinates pass through.
type pdfSurface struct {
	doc         *gofpdf.Fpdf
	tr          func(string) string // UTF-8 to cp1252 for the core fonts
	unsupported []string
}

func (s *pdfSurface) StrokePath(pts []sketch.Point, style sketch.StrokeStyle) {
	if len(pts) < 2 {
		return
	}
	r, g, b := rgb8(style.Color)
	s.doc.SetDrawColor(r, g, b)
	s.doc.SetLineWidth(style.Width)
	s.doc.SetLineCapStyle("round")
	s.doc.SetLineJoinStyle("round")
	for i := 1; i < len(pts); i++ {
		s.doc.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
	}
}

func (s *pdfSurface) FillDot(c sketch.Point, radius float64, col color.Color) {
	r, g, b := rgb8(col)
	s.doc.SetFillColor(r, g, b)
	s.doc.Circle(c.X, c.Y, radius, "F")
}

func (s *pdfSurface) OutlineDot(c sketch.Point, radius float64, col color.Color) {
	r, g, b := rgb8(col)
	s.doc.SetDrawColor(r, g, b)
	s.doc.SetLineWidth(1)
	s.doc.Circle(c.X, c.Y, radius, "D")
}

// DrawGlyph draws through the core Helvetica font, which only covers the
// cp1252 range. Glyphs beyond Latin-1, emoji included, are collected and
// reported as an error instead of being written with the wrong encoding.
func (s *pdfSurface) DrawGlyph(glyph string, size float64, c sketch.Point) {
	if !latin1Encodable(glyph) {
		for _, g := range s.unsupported {
			if g == glyph {
				return
			}
		}
		s.unsupported = append(s.unsupported, glyph)
		return
	}
	s.doc.SetFont("Helvetica", "", size)
	s.doc.SetTextColor(0, 0, 0)
	encoded := s.tr(glyph)
	w := s.doc.GetStringWidth(encoded)
	s.doc.Text(c.X-w/2, c.Y+size*0.35, encoded)
}

func latin1Encodable(s string) bool {
	for _, r := range s {
		if r > unicode.MaxLatin1 {
			return false
		}
	}
	return true
}

func rgb8(col color.Color) (int, int, int) {
	r, g, b, _ := col.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
