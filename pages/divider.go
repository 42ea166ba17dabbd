package pages

import (
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

// Divider builds a category divider page: the category name centered
// on the page, with the live page-number footer. Every category gets
// one, including categories with no products.
func Divider(cat catalog.Category, sheet *styles.Sheet) layout.Page {
	p := layout.Page{Footer: true}
	if sheet.Content.Background.Set {
		p.Add(layout.FullBleedBackground(sheet.Content.Background))
	}

	bandH := 90.0
	bandY := (styles.PageHeight - bandH) / 2
	p.Add(layout.Rect(0, bandY, styles.PageWidth, bandH, sheet.Content.CategoryHeader))
	p.Add(layout.Text(styles.ContentMargin, bandY+bandH/2-styles.SizeDividerTitle/2,
		styles.PageWidth-2*styles.ContentMargin, styles.SizeDividerTitle*1.4,
		cat.Name,
		layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeDividerTitle},
		sheet.Content.CategoryText, "C"))

	return p
}
