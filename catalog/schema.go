// Package catalog defines the document model for wholesale catalog PDF
// generation.
//
// A Document is plain, JSON-serializable data describing one catalog
// render: company info, a visual theme, categories with their products,
// table-of-contents entries, and a cover layout choice. The model has
// no behavior beyond validation and display formatting; it is built
// fresh by the caller for every render and crosses the worker boundary
// as JSON.
package catalog

import "github.com/shopspring/decimal"

// Document is the complete input for one catalog render.
type Document struct {
	Info        CompanyInfo `json:"info"`
	Theme       Theme       `json:"theme"`
	Categories  []Category  `json:"categories"`
	TocEntries  []TocEntry  `json:"tocEntries,omitempty"`
	CoverLayout CoverLayout `json:"coverLayout"`

	// StationeryPath optionally names an existing PDF whose first page
	// is drawn beneath every content page (letterhead underlay).
	StationeryPath string `json:"stationeryPath,omitempty"`
}

// CompanyInfo describes the business issuing the catalog. Immutable
// input to a single render.
type CompanyInfo struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	Year    string `json:"year"`
	LogoURL string `json:"logoUrl,omitempty"` // empty means the bundled default logo
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// Theme is the structured set of colors and fonts driving all visual
// output, grouped by surface. Every color field is a token: a named
// color, #RGB, #RRGGBB, or #RRGGBBAA. Unset fields stay unset; the
// style resolver never invents defaults for them.
type Theme struct {
	Fonts     FontPair       `json:"fonts"`
	Cover     CoverPalette   `json:"cover"`
	Toc       TocPalette     `json:"toc"`
	Content   ContentPalette `json:"content"`
	BackCover BackPalette    `json:"backCover"`
}

// FontPair names the heading and body font families. Each family must
// be a core PDF font or registered with the font registry before
// render time.
type FontPair struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// CoverPalette colors the cover page.
type CoverPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// TocPalette colors the table-of-contents page.
type TocPalette struct {
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// ContentPalette colors divider and product-grid pages.
type ContentPalette struct {
	CategoryHeader string `json:"categoryHeader"`
	CategoryText   string `json:"categoryText"`
	Price          string `json:"price"`
	Background     string `json:"background"`
	Text           string `json:"text"`
}

// BackPalette colors the back cover.
type BackPalette struct {
	Primary    string `json:"primary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Category is a category identity plus an ordered product list. The
// order is significant: it determines page order and grid placement.
type Category struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// Product is a single catalog item.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"` // empty means the placeholder image
	Price       decimal.Decimal `json:"price"`
}

// DisplayPrice formats the wholesale price with exactly two decimal
// places, rounding half away from zero: 9 -> "9.00", 9.005 -> "9.01".
func (p Product) DisplayPrice() string {
	return p.Price.StringFixed(2)
}

// TocEntry is a (name, page-number) pair supplied by the caller. Page
// numbers are rendered as given, 1-indexed; see Validate for the drift
// check against the predicted page count.
type TocEntry struct {
	Name string `json:"name"`
	Page int    `json:"page"`
}

// ProductsPerPage is the fixed number of product cards on a grid page,
// laid out in a 3-column grid.
const ProductsPerPage = 9

// PredictPageCount returns the physical page count this document will
// produce: cover, table of contents, one divider per category,
// ceil(len(products)/ProductsPerPage) grid pages per category, and the
// back cover.
func PredictPageCount(doc *Document) int {
	n := 2 // cover + toc
	for _, c := range doc.Categories {
		n++ // divider
		n += (len(c.Products) + ProductsPerPage - 1) / ProductsPerPage
	}
	return n + 1 // back cover
}
