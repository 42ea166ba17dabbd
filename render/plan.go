package render

import (
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/covers"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/pages"
	"github.com/ayhamDev/roza-catalog/styles"
)

// PageKind labels a planned page's role in the catalog.
type PageKind string

const (
	PageCover   PageKind = "cover"
	PageToc     PageKind = "toc"
	PageDivider PageKind = "divider"
	PageGrid    PageKind = "grid"
	PageBack    PageKind = "back-cover"
)

// PlannedPage pairs a node tree with its role. Category is set on
// divider and grid pages; Items is the card count on grid pages.
type PlannedPage struct {
	Kind     PageKind
	Category string
	Items    int
	Page     layout.Page
}

// Plan is the pure half of a render: it resolves the stylesheet and
// composes every page in order: cover, table of contents, then per
// category one divider followed by its grid pages, and the back cover.
// An empty category still contributes its divider page.
func Plan(doc *catalog.Document) ([]PlannedPage, *styles.Sheet, error) {
	sheet, err := styles.Resolve(doc.Theme)
	if err != nil {
		return nil, nil, err
	}

	plan := []PlannedPage{
		{Kind: PageCover, Page: covers.Render(doc.CoverLayout, doc.Info, sheet)},
		{Kind: PageToc, Page: pages.Toc(doc.TocEntries, doc.Info, sheet)},
	}

	for _, cat := range doc.Categories {
		plan = append(plan, PlannedPage{
			Kind:     PageDivider,
			Category: cat.Name,
			Page:     pages.Divider(cat, sheet),
		})
		for i, grid := range pages.GridPages(cat, sheet) {
			items := catalog.ProductsPerPage
			if rem := len(cat.Products) - i*catalog.ProductsPerPage; rem < items {
				items = rem
			}
			plan = append(plan, PlannedPage{
				Kind:     PageGrid,
				Category: cat.Name,
				Items:    items,
				Page:     grid,
			})
		}
	}

	plan = append(plan, PlannedPage{Kind: PageBack, Page: pages.BackCover(doc.Info, sheet)})
	return plan, sheet, nil
}
