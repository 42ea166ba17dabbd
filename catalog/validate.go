package catalog

import "fmt"

// Warnings collect non-fatal findings from Validate. The render
// proceeds with warnings present; they exist so callers can surface
// likely defects (such as ToC page numbers that cannot match the
// physical page count) before shipping a catalog.
type Warnings []string

// Validate checks a document for structural defects.
//
// Errors are conditions that would make the render meaningless:
// missing company name or year, missing font families, negative
// prices. Theme color completeness is deliberately not checked here;
// an unset color surfaces as a configuration error at render time.
//
// ToC entries whose page number exceeds the predictable page count are
// reported as warnings, not errors: the entries are caller-supplied
// display values and are rendered verbatim either way.
func Validate(doc *Document) (Warnings, error) {
	if doc.Info.Name == "" {
		return nil, &ValidationError{Field: "info.name", Err: ErrNoCompanyName}
	}
	if doc.Info.Year == "" {
		return nil, &ValidationError{Field: "info.year", Err: ErrNoYear}
	}
	if doc.Theme.Fonts.Heading == "" {
		return nil, &ValidationError{Field: "theme.fonts.heading", Err: ErrNoHeadingFont}
	}
	if doc.Theme.Fonts.Body == "" {
		return nil, &ValidationError{Field: "theme.fonts.body", Err: ErrNoBodyFont}
	}

	for ci, cat := range doc.Categories {
		for pi, p := range cat.Products {
			if p.Price.IsNegative() {
				return nil, &ValidationError{
					Field: fmt.Sprintf("categories[%d].products[%d]", ci, pi),
					Err:   ErrNegativePrice,
				}
			}
		}
	}

	var warns Warnings
	if !doc.CoverLayout.Valid() {
		warns = append(warns, fmt.Sprintf(
			"coverLayout %q is not a known layout; the fallback page will be rendered", doc.CoverLayout))
	}
	pageCount := PredictPageCount(doc)
	for i, e := range doc.TocEntries {
		if e.Page < 1 || e.Page > pageCount {
			warns = append(warns, fmt.Sprintf(
				"tocEntries[%d] (%q) points at page %d, outside the predicted %d pages",
				i, e.Name, e.Page, pageCount))
		}
	}
	return warns, nil
}
