package pages

import (
	"fmt"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

const (
	tocRowHeight = 26
	tocHeaderY   = 70
	tocFirstRowY = 150
	tocLogoSize  = 36
	tocSeqColW   = 34
	tocPageColW  = 50
)

// Toc builds the table-of-contents page. Rows follow the entry input
// order; each shows a 2-digit 1-based sequence number, the entry name,
// and the caller-supplied page number. The page numbers are rendered
// verbatim; the engine's Result reports actual divider positions for
// callers that want to cross-check.
func Toc(entries []catalog.TocEntry, info catalog.CompanyInfo, sheet *styles.Sheet) layout.Page {
	p := layout.Page{Footer: true}
	if sheet.Toc.Background.Set {
		p.Add(layout.FullBleedBackground(sheet.Toc.Background))
	}

	x := float64(styles.ContentMargin)
	w := styles.PageWidth - 2*styles.ContentMargin

	p.Add(layout.Text(x, tocHeaderY, w-tocLogoSize-10, styles.SizeTocTitle*1.4,
		"Table of Contents",
		layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeTocTitle},
		sheet.Toc.Text, "L"))
	p.Add(layout.Image(x+w-tocLogoSize, tocHeaderY, tocLogoSize, tocLogoSize,
		assets.LogoRef(info.LogoURL)))
	p.Add(layout.Rect(x, tocHeaderY+40, w, 2, sheet.Toc.Accent))

	y := float64(tocFirstRowY)
	for i, e := range entries {
		seq := fmt.Sprintf("%02d", i+1)
		p.Add(
			layout.Text(x, y, tocSeqColW, tocRowHeight, seq,
				layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeTocEntry},
				sheet.Toc.Accent, "L"),
			layout.Text(x+tocSeqColW, y, w-tocSeqColW-tocPageColW, tocRowHeight, e.Name,
				layout.FontSpec{Family: sheet.BodyFont, Size: styles.SizeTocEntry},
				sheet.Toc.Text, "L"),
			layout.Text(x+w-tocPageColW, y, tocPageColW, tocRowHeight, fmt.Sprintf("%d", e.Page),
				layout.FontSpec{Family: sheet.BodyFont, Size: styles.SizeTocEntry},
				sheet.Toc.Text, "R"),
		)
		y += tocRowHeight
	}

	return p
}
