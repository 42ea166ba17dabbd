// Package covers is the cover-page template registry.
//
// Sixteen named variants share one composition path: each variant is a
// declarative variantSpec (arrangement, motif, alignment, palette
// roles) interpreted by compose over the layout primitives. Every
// variant places the company logo (or the bundled default), the
// tagline in the heading font, and a "PRODUCT CATALOG {year}" marker,
// drawing only colors from the theme's cover palette.
//
// Templates are pure: the same (layout, info, sheet) input always
// yields an identical node tree, and Render never panics; an unknown
// layout tag degrades to an explicit fallback page.
package covers

import (
	"fmt"

	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

// Render dispatches on the cover layout tag. Unknown tags return the
// fallback page; this path must never fail.
func Render(l catalog.CoverLayout, info catalog.CompanyInfo, sheet *styles.Sheet) layout.Page {
	spec, ok := variants[l]
	if !ok {
		return fallbackPage(l, sheet)
	}
	return compose(spec, info, sheet)
}

// markerText is the catalog marker every variant carries.
func markerText(year string) string {
	return fmt.Sprintf("PRODUCT CATALOG %s", year)
}

// fallbackPage is rendered for tags outside the known set: a minimal
// diagnostic page instead of a failed render.
func fallbackPage(l catalog.CoverLayout, sheet *styles.Sheet) layout.Page {
	var p layout.Page
	if sheet.Cover.Background.Set {
		p.Add(layout.FullBleedBackground(sheet.Cover.Background))
	}
	lines := []layout.StackLine{
		{
			Text:  "Select a cover layout",
			Font:  layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeCoverTagline},
			Color: sheet.Cover.Text,
		},
		{
			Text:    fmt.Sprintf("unknown layout %q", string(l)),
			Font:    layout.FontSpec{Family: sheet.BodyFont, Size: styles.SizeCoverMarker},
			Color:   sheet.Cover.Text,
			Spacing: 4,
		},
	}
	nodes, _ := layout.CenteredStack(styles.CoverMargin, styles.PageHeight/2-40,
		styles.PageWidth-2*styles.CoverMargin, "C", lines)
	p.Add(nodes...)
	return p
}
