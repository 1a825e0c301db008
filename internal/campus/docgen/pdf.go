package docgen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin      = 40.0
	pdfLineHeight  = 16.0
	pdfCellPadding = 5.0
	pdfMinRowH     = 24.0
	pdfBulletStep  = 20.0

	imageMaxW = 500.0
	imageMaxH = 400.0
)

type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string

	width float64 // printable
}

// RenderPDF lays doc out on A4 pages.
func RenderPDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("campus", false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	pw := &pdfWriter{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: pageW - 2*pdfMargin,
	}

	pw.title(doc.Title)
	for _, b := range doc.Blocks {
		switch b.Kind {
		case KindHeading:
			pw.heading(b)
		case KindBullet:
			pw.bullet(b)
		case KindTable:
			pw.table(*b.Table)
		default:
			pw.paragraph(b.Text)
		}
	}
	for i, img := range doc.Images {
		pw.image(i, img)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

func (p *pdfWriter) title(s string) {
	if s == "" {
		return
	}
	p.pdf.SetFont("Helvetica", "BU", 18)
	p.pdf.CellFormat(0, 24, p.tr(s), "", 1, "C", false, 0, "")
	p.pdf.Ln(12)
}

func (p *pdfWriter) heading(b Block) {
	size := 14.0
	if b.Level >= boldHeadingLevel {
		size = 12
	}
	p.pdf.SetX(pdfMargin)
	p.pdf.SetFont("Helvetica", "B", size)
	p.pdf.MultiCell(p.width, pdfLineHeight+2, p.tr(b.Text), "", "L", false)
	p.pdf.Ln(6)
}

func (p *pdfWriter) paragraph(s string) {
	p.pdf.SetX(pdfMargin)
	p.pdf.SetFont("Helvetica", "", 12)
	p.pdf.MultiCell(p.width, pdfLineHeight, p.tr(s), "", "L", false)
	p.pdf.Ln(6)
}

func (p *pdfWriter) bullet(b Block) {
	indent := pdfBulletStep * float64(b.Level+1)
	p.pdf.SetX(pdfMargin + indent)
	p.pdf.SetFont("Helvetica", "", 12)
	p.pdf.MultiCell(p.width-indent, pdfLineHeight, p.tr("• "+b.Text), "", "L", false)
	p.pdf.Ln(4)
}

// table draws bordered rows by hand. Each row is as tall as its tallest
// wrapped cell, and moves to a new page when it would cross the bottom margin.
func (p *pdfWriter) table(t Table) {
	widths := fitWidths(t, p.width)
	if len(widths) == 0 {
		return
	}

	auto, margin := p.pdf.GetAutoPageBreak()
	p.pdf.SetAutoPageBreak(false, 0)
	defer p.pdf.SetAutoPageBreak(auto, margin)

	if len(t.Header) > 0 {
		p.row(t.Header, widths, "B")
	}
	for _, r := range t.Rows {
		p.row(r, widths, "")
	}
	p.pdf.SetX(pdfMargin)
	p.pdf.Ln(12)
}

func (p *pdfWriter) row(cells []string, widths []float64, style string) {
	p.pdf.SetFont("Helvetica", style, 11)

	// SplitLines works on the translated single-byte text; SplitText
	// indexes widths by rune and would overflow on it.
	lines := make([][][]byte, len(widths))
	height := pdfMinRowH
	for i, w := range widths {
		lines[i] = p.pdf.SplitLines([]byte(p.tr(cellAt(cells, i))), w-2*pdfCellPadding)
		if h := float64(len(lines[i]))*pdfLineHeight + 2*pdfCellPadding; h > height {
			height = h
		}
	}

	_, pageH := p.pdf.GetPageSize()
	if p.pdf.GetY()+height > pageH-pdfMargin {
		p.pdf.AddPage()
	}

	y := p.pdf.GetY()
	x := pdfMargin
	for i, w := range widths {
		p.pdf.Rect(x, y, w, height, "D")
		for j, line := range lines[i] {
			p.pdf.SetXY(x+pdfCellPadding, y+pdfCellPadding+float64(j)*pdfLineHeight)
			p.pdf.CellFormat(w-2*pdfCellPadding, pdfLineHeight, string(line), "", 0, "L", false, 0, "")
		}
		x += w
	}
	p.pdf.SetXY(pdfMargin, y+height)
}

func (p *pdfWriter) image(i int, img Image) {
	typ := strings.ToUpper(img.Type)
	if typ == "JPEG" {
		typ = "JPG"
	}
	name := fmt.Sprintf("img%d-%s", i, img.Name)
	opts := gofpdf.ImageOptions{ImageType: typ, ReadDpi: false}

	info := p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	if info == nil {
		return
	}

	w, h := info.Width(), info.Height()
	if w <= 0 || h <= 0 {
		return
	}
	scale := min(imageMaxW/w, imageMaxH/h, 1)
	w, h = w*scale, h*scale

	pageW, _ := p.pdf.GetPageSize()
	p.pdf.AddPage()
	p.pdf.ImageOptions(name, (pageW-w)/2, pdfMargin, w, h, false, opts, 0, "")
}

// fitWidths scales the column widths down to the printable width.
func fitWidths(t Table, printable float64) []float64 {
	cols := len(t.Widths)
	if cols == 0 {
		cols = len(t.Header)
		for _, r := range t.Rows {
			cols = max(cols, len(r))
		}
	}
	if cols == 0 {
		return nil
	}

	widths := make([]float64, cols)
	var total float64
	for i := range widths {
		if i < len(t.Widths) && t.Widths[i] > 0 {
			widths[i] = t.Widths[i]
		} else {
			widths[i] = printable / float64(cols)
		}
		total += widths[i]
	}
	if total > printable {
		for i := range widths {
			widths[i] *= printable / total
		}
	}
	return widths
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
