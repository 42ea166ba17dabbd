// Package styles turns the compact catalog Theme into the full set of
// concrete style values consumed by every page template.
//
// Resolution is a pure derivation: resolving an equal Theme twice
// yields field-for-field equal sheets. Unset theme fields resolve to
// unset colors rather than silently invented defaults; it is the
// render engine's job to reject drawing with an unset color.
package styles

import (
	"fmt"

	"github.com/ayhamDev/roza-catalog/catalog"
)

// Fixed page geometry, in points. ISO A4 with the source application's
// margin scheme: 30 pt on standard content pages, 40 pt on covers.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	ContentMargin = 30
	CoverMargin   = 40

	GridColumns = 3
	GridRows    = 3
)

// Font sizes per role, in points.
const (
	SizeCoverTitle   = 34
	SizeCoverTagline = 16
	SizeCoverMarker  = 11
	SizeTocTitle     = 22
	SizeTocEntry     = 11
	SizeDividerTitle = 28
	SizeCardName     = 9
	SizeCardDesc     = 7
	SizeCardPrice    = 10
	SizeCardBadge    = 6
	SizeFooter       = 8
	SizeBackTitle    = 18
	SizeBackContact  = 10
)

// CoverStyles binds the cover surface.
type CoverStyles struct {
	Primary    Color
	Secondary  Color
	Background Color
	Text       Color
}

// TocStyles binds the table-of-contents surface.
type TocStyles struct {
	Accent     Color
	Background Color
	Text       Color
}

// ContentStyles binds divider and grid pages.
type ContentStyles struct {
	CategoryHeader Color
	CategoryText   Color
	Price          Color
	Background     Color
	Text           Color
}

// BackStyles binds the back cover.
type BackStyles struct {
	Primary    Color
	Background Color
	Text       Color
}

// Sheet is the resolved stylesheet for one render.
type Sheet struct {
	HeadingFont string
	BodyFont    string

	Cover   CoverStyles
	Toc     TocStyles
	Content ContentStyles
	Back    BackStyles
}

// Resolve expands a Theme into a Sheet. Malformed color tokens are
// configuration errors; empty tokens resolve to unset colors.
func Resolve(theme catalog.Theme) (*Sheet, error) {
	s := &Sheet{
		HeadingFont: theme.Fonts.Heading,
		BodyFont:    theme.Fonts.Body,
	}

	fields := []struct {
		name  string
		token string
		dst   *Color
	}{
		{"cover.primary", theme.Cover.Primary, &s.Cover.Primary},
		{"cover.secondary", theme.Cover.Secondary, &s.Cover.Secondary},
		{"cover.background", theme.Cover.Background, &s.Cover.Background},
		{"cover.text", theme.Cover.Text, &s.Cover.Text},
		{"toc.accent", theme.Toc.Accent, &s.Toc.Accent},
		{"toc.background", theme.Toc.Background, &s.Toc.Background},
		{"toc.text", theme.Toc.Text, &s.Toc.Text},
		{"content.categoryHeader", theme.Content.CategoryHeader, &s.Content.CategoryHeader},
		{"content.categoryText", theme.Content.CategoryText, &s.Content.CategoryText},
		{"content.price", theme.Content.Price, &s.Content.Price},
		{"content.background", theme.Content.Background, &s.Content.Background},
		{"content.text", theme.Content.Text, &s.Content.Text},
		{"backCover.primary", theme.BackCover.Primary, &s.Back.Primary},
		{"backCover.background", theme.BackCover.Background, &s.Back.Background},
		{"backCover.text", theme.BackCover.Text, &s.Back.Text},
	}

	for _, f := range fields {
		c, err := ParseColor(f.token)
		if err != nil {
			return nil, fmt.Errorf("styles: theme field %s: %w", f.name, err)
		}
		*f.dst = c
	}

	return s, nil
}
