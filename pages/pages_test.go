package pages

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
	"github.com/shopspring/decimal"
)

func testSheet(t *testing.T) *styles.Sheet {
	t.Helper()
	sheet, err := styles.Resolve(catalog.Theme{
		Fonts: catalog.FontPair{Heading: "Helvetica", Body: "Times"},
		Toc:   catalog.TocPalette{Accent: "#1a237e", Background: "white", Text: "#212121"},
		Content: catalog.ContentPalette{
			CategoryHeader: "#1a237e",
			CategoryText:   "white",
			Price:          "#2e7d32",
			Background:     "white",
			Text:           "#212121",
		},
		BackCover: catalog.BackPalette{Primary: "#1a237e", Background: "#f5f5f5", Text: "#212121"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return sheet
}

func makeProducts(n int) []catalog.Product {
	ps := make([]catalog.Product, n)
	for i := range ps {
		ps[i] = catalog.Product{
			ID:    i + 1,
			Name:  fmt.Sprintf("Product %d", i+1),
			Price: decimal.NewFromInt(int64(i + 1)),
		}
	}
	return ps
}

func TestChunkCoverage(t *testing.T) {
	for length := 0; length <= 40; length++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			products := makeProducts(length)
			chunks := Chunk(products, pageSize)

			wantChunks := (length + pageSize - 1) / pageSize
			if len(chunks) != wantChunks {
				t.Fatalf("len=%d size=%d: got %d chunks, want %d", length, pageSize, len(chunks), wantChunks)
			}

			var flat []catalog.Product
			for i, c := range chunks {
				if len(c) == 0 {
					t.Fatalf("len=%d size=%d: empty chunk at %d", length, pageSize, i)
				}
				if i < len(chunks)-1 && len(c) != pageSize {
					t.Fatalf("len=%d size=%d: interior chunk %d has %d elements", length, pageSize, i, len(c))
				}
				flat = append(flat, c...)
			}
			if len(flat) != length {
				t.Fatalf("len=%d size=%d: concatenation has %d elements", length, pageSize, len(flat))
			}
			for i := range flat {
				if flat[i].ID != products[i].ID {
					t.Fatalf("len=%d size=%d: order not preserved at %d", length, pageSize, i)
				}
			}
		}
	}
}

func TestChunkZeroAndInvalidPageSize(t *testing.T) {
	if got := Chunk(makeProducts(5), 0); got != nil {
		t.Fatalf("pageSize 0 should yield nil, got %v", got)
	}
	if got := Chunk(nil, 9); got != nil {
		t.Fatalf("empty input should yield nil, got %v", got)
	}
}

func TestGridPagesSplit(t *testing.T) {
	sheet := testSheet(t)
	cat := catalog.Category{ID: 1, Name: "Kitchen", Products: makeProducts(10)}
	pages := GridPages(cat, sheet)
	if len(pages) != 2 {
		t.Fatalf("10 products should produce 2 grid pages, got %d", len(pages))
	}
	if !pages[0].Footer || !pages[1].Footer {
		t.Fatal("grid pages must carry the page-number footer")
	}
	if got := countCards(pages[0]); got != 9 {
		t.Fatalf("first page should hold 9 cards, got %d", got)
	}
	if got := countCards(pages[1]); got != 1 {
		t.Fatalf("second page should hold 1 card, got %d", got)
	}
}

func TestGridPagesEmptyCategory(t *testing.T) {
	sheet := testSheet(t)
	if pages := GridPages(catalog.Category{Name: "Empty"}, sheet); len(pages) != 0 {
		t.Fatalf("empty category should produce no grid pages, got %d", len(pages))
	}
}

// countCards counts product-id barcodes, one per card.
func countCards(p layout.Page) int {
	n := 0
	for _, node := range p.Nodes {
		if node.Kind == layout.KindBarcode && node.BarcodeKind == "code128" {
			n++
		}
	}
	return n
}

func TestCardShowsPriceAndPlaceholder(t *testing.T) {
	sheet := testSheet(t)
	cat := catalog.Category{Name: "Kitchen", Products: []catalog.Product{
		{ID: 7, Name: "Kettle", Price: decimal.RequireFromString("9")},
	}}
	page := GridPages(cat, sheet)[0]

	var hasPrice, hasPlaceholder bool
	for _, n := range page.Nodes {
		if n.Kind == layout.KindText && n.Text == "$9.00" {
			hasPrice = true
		}
		if n.Kind == layout.KindImage && n.ImageRef == assets.PlaceholderImageURL {
			hasPlaceholder = true
		}
	}
	if !hasPrice {
		t.Fatal("card does not show the two-decimal price")
	}
	if !hasPlaceholder {
		t.Fatal("empty product image did not resolve to the placeholder URL")
	}
}

func TestDividerPage(t *testing.T) {
	sheet := testSheet(t)
	page := Divider(catalog.Category{Name: "Garden"}, sheet)
	if !page.Footer {
		t.Fatal("divider must carry the page-number footer")
	}
	var found bool
	for _, n := range page.Nodes {
		if n.Kind == layout.KindText && n.Text == "Garden" {
			found = true
		}
	}
	if !found {
		t.Fatal("divider does not show the category name")
	}
}

func TestTocRows(t *testing.T) {
	sheet := testSheet(t)
	entries := []catalog.TocEntry{
		{Name: "Kitchen", Page: 3},
		{Name: "Garden", Page: 5},
	}
	page := Toc(entries, catalog.CompanyInfo{Name: "Roza"}, sheet)
	if !page.Footer {
		t.Fatal("toc must carry the page-number footer")
	}

	var texts []string
	for _, n := range page.Nodes {
		if n.Kind == layout.KindText {
			texts = append(texts, n.Text)
		}
	}
	joined := strings.Join(texts, "|")
	// 2-digit sequence numbers, names, and the supplied page numbers.
	for _, want := range []string{"01", "02", "Kitchen", "Garden", "3", "5"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("toc rows missing %q in %q", want, joined)
		}
	}
}

func TestBackCoverContactGrid(t *testing.T) {
	sheet := testSheet(t)
	info := catalog.CompanyInfo{
		Name:    "Roza Wholesale",
		Phone:   "+1 555 0100",
		Email:   "sales@roza.example",
		Website: "https://roza.example",
		Address: "12 Market St",
	}
	page := BackCover(info, sheet)

	var linked, qr bool
	texts := map[string]bool{}
	for _, n := range page.Nodes {
		if n.Kind == layout.KindText {
			texts[n.Text] = true
			if n.Text == info.Website && n.Link == info.Website {
				linked = true
			}
		}
		if n.Kind == layout.KindBarcode && n.BarcodeKind == "qr" {
			qr = true
		}
	}
	for _, want := range []string{info.Phone, info.Email, info.Website, info.Address, info.Name} {
		if !texts[want] {
			t.Fatalf("back cover missing %q", want)
		}
	}
	if !linked {
		t.Fatal("website is not rendered as a link")
	}
	if !qr {
		t.Fatal("back cover missing the QR contact code")
	}
}
