// Package render walks the composed node trees into a PDF document.
//
// The engine is the only place that touches the PDF library: templates
// stay declarative, and this package resolves image references,
// generates barcode images, applies fonts, draws the live page-number
// footers, and encodes the final document. Failures are deterministic
// for a given document and are never retried.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

// Engine renders catalog documents. Safe for sequential reuse; a
// single Engine must not run two renders concurrently (give each
// worker its own).
type Engine struct {
	cfg config
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// Result is a finished render: the PDF bytes plus the physical page
// facts callers need to cross-check caller-supplied ToC entries.
type Result struct {
	PDF          []byte
	Pages        int
	DividerPages map[string]int // category name -> 1-based physical page
	Warnings     catalog.Warnings
}

// Render produces the catalog PDF for doc. The document is validated
// first; validation warnings are carried on the Result, validation
// errors abort the render.
func (e *Engine) Render(ctx context.Context, doc *catalog.Document) (*Result, error) {
	warns, err := catalog.Validate(doc)
	if err != nil {
		return nil, err
	}

	plan, sheet, err := Plan(doc)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(fmt.Sprintf("%s Catalog %s", doc.Info.Tagline, doc.Info.Year), true)
	pdf.SetAuthor(doc.Info.Name, true)

	if e.cfg.fonts != nil {
		e.cfg.fonts.Apply(pdf)
	}

	w := &walker{
		pdf:    pdf,
		sheet:  sheet,
		cfg:    e.cfg,
		ctx:    ctx,
		images: make(map[string]string),
	}

	if e.cfg.prefetch {
		w.prefetchImages(doc)
	}

	var underlay *stationery
	if doc.StationeryPath != "" {
		underlay, err = newStationery(pdf, doc.StationeryPath)
		if err != nil {
			return nil, opErr("stationery", err)
		}
	}

	footers := make(map[int]bool)
	pdf.SetFooterFunc(func() {
		if !footers[pdf.PageNo()] {
			return
		}
		family, style, ferr := w.resolveFont(layout.FontSpec{Family: sheet.BodyFont, Size: styles.SizeFooter})
		if ferr != nil {
			return
		}
		pdf.SetFont(family, style, styles.SizeFooter)
		if sheet.Content.Text.Set {
			pdf.SetTextColor(sheet.Content.Text.R, sheet.Content.Text.G, sheet.Content.Text.B)
		}
		pdf.SetY(-26)
		pdf.CellFormat(styles.PageWidth, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	result := &Result{
		DividerPages: make(map[string]int),
		Warnings:     warns,
	}

	for i, pp := range plan {
		pdf.AddPage()
		pageNo := pdf.PageNo()

		if pp.Kind == PageDivider {
			result.DividerPages[pp.Category] = pageNo
		}
		if pp.Page.Footer {
			footers[pageNo] = true
		}
		if underlay != nil && pp.Kind != PageCover && pp.Kind != PageBack {
			underlay.draw(pdf)
		}

		for _, node := range pp.Page.Nodes {
			if err := w.draw(node); err != nil {
				return nil, opErr(fmt.Sprintf("%s[%d]", pp.Kind, i), err)
			}
		}
	}

	if pdf.Err() {
		return nil, opErr("layout", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, opErr("output", err)
	}

	result.PDF = buf.Bytes()
	result.Pages = len(plan)
	return result, nil
}

// walker carries per-render draw state.
type walker struct {
	pdf    *gofpdf.Fpdf
	sheet  *styles.Sheet
	cfg    config
	ctx    context.Context
	images map[string]string // ref -> registered image name
}

// coreFonts are the built-in PDF families usable without a registry.
var coreFonts = map[string]bool{
	"helvetica": true,
	"arial":     true,
	"times":     true,
	"courier":   true,
}

func (w *walker) resolveFont(f layout.FontSpec) (family, style string, err error) {
	if w.cfg.fonts != nil && w.cfg.fonts.Has(f.Family) {
		return f.Family, f.Style, nil
	}
	if coreFonts[strings.ToLower(f.Family)] {
		return f.Family, f.Style, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownFont, f.Family)
}

func (w *walker) setFill(c styles.Color) error {
	if !c.Set {
		return ErrUnsetColor
	}
	w.pdf.SetFillColor(c.R, c.G, c.B)
	return nil
}

// withAlpha runs draw under the node color's alpha when it is not
// opaque.
func (w *walker) withAlpha(c styles.Color, draw func()) {
	if c.Set && !c.Opaque() {
		w.pdf.SetAlpha(c.Alpha, "Normal")
		draw()
		w.pdf.SetAlpha(1, "Normal")
		return
	}
	draw()
}

func (w *walker) draw(n layout.Node) error {
	switch n.Kind {
	case layout.KindRect:
		return w.drawRect(n)
	case layout.KindCircle:
		if err := w.setFill(n.Fill); err != nil {
			return err
		}
		w.withAlpha(n.Fill, func() {
			w.pdf.Circle(n.X, n.Y, n.W, "F")
		})
	case layout.KindPolygon:
		if err := w.setFill(n.Fill); err != nil {
			return err
		}
		pts := make([]gofpdf.PointType, len(n.Points))
		for i, p := range n.Points {
			pts[i] = gofpdf.PointType{X: p.X, Y: p.Y}
		}
		w.withAlpha(n.Fill, func() {
			w.pdf.Polygon(pts, "F")
		})
	case layout.KindLine:
		if !n.Stroke.Set {
			return ErrUnsetColor
		}
		w.pdf.SetDrawColor(n.Stroke.R, n.Stroke.G, n.Stroke.B)
		if n.LineWidth > 0 {
			w.pdf.SetLineWidth(n.LineWidth)
		}
		w.pdf.Line(n.X, n.Y, n.X+n.W, n.Y+n.H)
	case layout.KindText:
		return w.drawText(n)
	case layout.KindImage:
		return w.drawImage(n)
	case layout.KindBarcode:
		return w.drawBarcode(n)
	default:
		return fmt.Errorf("render: unknown node kind %d", n.Kind)
	}
	return nil
}

func (w *walker) drawRect(n layout.Node) error {
	style := ""
	if n.Fill.Set {
		w.pdf.SetFillColor(n.Fill.R, n.Fill.G, n.Fill.B)
		style = "F"
	}
	if n.Stroke.Set {
		w.pdf.SetDrawColor(n.Stroke.R, n.Stroke.G, n.Stroke.B)
		if n.LineWidth > 0 {
			w.pdf.SetLineWidth(n.LineWidth)
		}
		style += "D"
	}
	if style == "" {
		return ErrUnsetColor
	}
	w.withAlpha(n.Fill, func() {
		w.pdf.Rect(n.X, n.Y, n.W, n.H, style)
	})
	return nil
}

func (w *walker) drawText(n layout.Node) error {
	if n.Text == "" {
		return nil
	}
	if !n.Color.Set {
		return fmt.Errorf("%w: text %q", ErrUnsetColor, n.Text)
	}
	family, style, err := w.resolveFont(n.Font)
	if err != nil {
		return err
	}

	w.pdf.SetFont(family, style, n.Font.Size)
	w.pdf.SetTextColor(n.Color.R, n.Color.G, n.Color.B)
	w.pdf.SetXY(n.X, n.Y)

	align := n.Align
	if align == "" {
		align = "L"
	}
	lineH := n.Font.Size * 1.3

	if n.Link != "" {
		w.pdf.CellFormat(n.W, lineH, n.Text, "", 0, align, false, 0, n.Link)
		return nil
	}
	w.pdf.MultiCell(n.W, lineH, n.Text, "", align, false)
	return nil
}
