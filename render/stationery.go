package render

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"

	"github.com/ayhamDev/roza-catalog/styles"
)

// stationery is a company letterhead PDF whose first page is stamped
// under every content page. Covers stay clean.
type stationery struct {
	imp  *gofpdi.Importer
	tpl  int
	w, h float64
}

// newStationery imports page 1 of the letterhead file as a template on
// pdf. The page must be imported before any output page is started.
func newStationery(pdf *gofpdf.Fpdf, path string) (*stationery, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoStationery, path)
	}

	imp := gofpdi.NewImporter()
	tpl := imp.ImportPage(pdf, path, 1, "/MediaBox")
	if pdf.Err() {
		return nil, pdf.Error()
	}

	s := &stationery{imp: imp, tpl: tpl, w: styles.PageWidth, h: styles.PageHeight}
	if dims, ok := imp.GetPageSizes()[1]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			s.w = mb["w"]
			s.h = mb["h"]
		}
	}
	return s, nil
}

// draw stamps the imported page at full size onto the current page.
func (s *stationery) draw(pdf *gofpdf.Fpdf) {
	s.imp.UseImportedTemplate(pdf, s.tpl, 0, 0, s.w, s.h)
}
