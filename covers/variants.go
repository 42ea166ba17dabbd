package covers

import (
	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

type arrangement int

const (
	arrCentered arrangement = iota
	arrSplitVertical
	arrSplitHorizontal
	arrSidebar
	arrFullBleed
)

type motif int

const (
	motifNone motif = iota
	motifCircles
	motifDiagonal
	motifWaves
	motifFrame
	motifStripe
	motifDots
	motifBadge
	motifDuotone
)

// variantSpec is the declarative description of one cover variant.
// compose interprets it; adding a variant means adding a value here,
// not a new template function.
type variantSpec struct {
	arrangement arrangement
	motif       motif
	align       string  // stack alignment: "L" or "C"
	splitAt     float64 // split position as a fraction of the page
	onPrimary   bool    // text sits on the primary-colored surface
	logoBelow   bool    // logo placed under the text stack
}

var variants = map[catalog.CoverLayout]variantSpec{
	catalog.CoverCorporateMinimalist: {arrangement: arrCentered, align: "C"},
	catalog.CoverCorporateClassic:    {arrangement: arrSplitHorizontal, splitAt: 0.22, align: "C"},
	catalog.CoverModernSplit:         {arrangement: arrSplitVertical, splitAt: 0.5, align: "L"},
	catalog.CoverModernSidebar:       {arrangement: arrSidebar, align: "L"},
	catalog.CoverBoldDiagonal:        {arrangement: arrFullBleed, motif: motifDiagonal, align: "L", onPrimary: true},
	catalog.CoverBoldBanner:          {arrangement: arrSplitHorizontal, splitAt: 0.4, motif: motifStripe, align: "C"},
	catalog.CoverElegantCentered:     {arrangement: arrCentered, align: "C", logoBelow: true},
	catalog.CoverElegantFrame:        {arrangement: arrCentered, motif: motifFrame, align: "C"},
	catalog.CoverGeometricCircles:    {arrangement: arrCentered, motif: motifCircles, align: "C"},
	catalog.CoverGeometricWaves:      {arrangement: arrFullBleed, motif: motifWaves, align: "C", onPrimary: true},
	catalog.CoverFullColorBlock:      {arrangement: arrFullBleed, align: "C", onPrimary: true},
	catalog.CoverAccentStripe:        {arrangement: arrCentered, motif: motifStripe, align: "L"},
	catalog.CoverMinimalLeft:         {arrangement: arrCentered, align: "L"},
	catalog.CoverMinimalGrid:         {arrangement: arrCentered, motif: motifDots, align: "L"},
	catalog.CoverRetroBadge:          {arrangement: arrCentered, motif: motifBadge, align: "C"},
	catalog.CoverDuotone:             {arrangement: arrSplitHorizontal, splitAt: 0.5, motif: motifDuotone, align: "C", onPrimary: true},
}

const (
	logoSize     = 90
	sidebarWidth = 60
)

// compose renders a variant spec into a page. All colors are drawn
// from the cover palette; the logo falls back to the bundled asset.
func compose(spec variantSpec, info catalog.CompanyInfo, sheet *styles.Sheet) layout.Page {
	var p layout.Page
	cover := sheet.Cover

	// Background surfaces.
	switch spec.arrangement {
	case arrCentered:
		p.Add(layout.FullBleedBackground(cover.Background))
	case arrSplitVertical:
		p.Add(layout.SplitPanel(true, styles.PageWidth*spec.splitAt, cover.Primary, cover.Background)...)
	case arrSplitHorizontal:
		bottom := cover.Background
		if spec.motif == motifDuotone {
			bottom = cover.Secondary
		}
		p.Add(layout.SplitPanel(false, styles.PageHeight*spec.splitAt, cover.Primary, bottom)...)
	case arrSidebar:
		p.Add(layout.FullBleedBackground(cover.Background))
		p.Add(layout.Rect(0, 0, sidebarWidth, styles.PageHeight, cover.Primary))
	case arrFullBleed:
		p.Add(layout.FullBleedBackground(cover.Primary))
	}

	p.Add(motifNodes(spec.motif, cover)...)

	// Content box.
	x := float64(styles.CoverMargin)
	w := styles.PageWidth - 2*styles.CoverMargin
	switch spec.arrangement {
	case arrSplitVertical:
		x = styles.PageWidth*spec.splitAt + styles.CoverMargin
		w = styles.PageWidth - x - styles.CoverMargin
	case arrSidebar:
		x = sidebarWidth + styles.CoverMargin
		w = styles.PageWidth - x - styles.CoverMargin
	}

	startY := styles.PageHeight * 0.3
	if spec.arrangement == arrSplitHorizontal {
		startY = styles.PageHeight*spec.splitAt + 70
	}

	textColor := cover.Text
	markerColor := cover.Primary
	if spec.onPrimary {
		textColor = cover.Background
		markerColor = cover.Secondary
	}

	lines := []layout.StackLine{
		{
			Text:    info.Name,
			Font:    layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeCoverTitle},
			Color:   textColor,
			Spacing: 6,
		},
		{
			Text:    info.Tagline,
			Font:    layout.FontSpec{Family: sheet.HeadingFont, Size: styles.SizeCoverTagline},
			Color:   textColor,
			Spacing: 18,
		},
		{
			Text:  markerText(info.Year),
			Font:  layout.FontSpec{Family: sheet.BodyFont, Style: "B", Size: styles.SizeCoverMarker},
			Color: markerColor,
		},
	}

	logoRef := assets.LogoRef(info.LogoURL)
	logoX := x
	if spec.align == "C" {
		logoX = x + (w-logoSize)/2
	}

	if !spec.logoBelow {
		p.Add(layout.Image(logoX, startY-logoSize-30, logoSize, logoSize, logoRef))
	}
	nodes, endY := layout.CenteredStack(x, startY, w, spec.align, lines)
	p.Add(nodes...)
	if spec.logoBelow {
		p.Add(layout.Image(logoX, endY+30, logoSize, logoSize, logoRef))
	}

	return p
}

// motifNodes builds the decorative vector layer for a variant.
func motifNodes(m motif, cover styles.CoverStyles) []layout.Node {
	accent := cover.Secondary
	switch m {
	case motifCircles:
		return []layout.Node{
			{Kind: layout.KindCircle, X: styles.PageWidth - 60, Y: 80, W: 110, Fill: accent},
			{Kind: layout.KindCircle, X: 40, Y: styles.PageHeight - 120, W: 70, Fill: accent},
			{Kind: layout.KindCircle, X: styles.PageWidth - 140, Y: styles.PageHeight - 60, W: 40, Fill: cover.Primary},
		}
	case motifDiagonal:
		return []layout.Node{{
			Kind: layout.KindPolygon,
			Fill: accent,
			Points: []layout.Point{
				{X: 0, Y: styles.PageHeight},
				{X: styles.PageWidth, Y: styles.PageHeight},
				{X: styles.PageWidth, Y: styles.PageHeight * 0.72},
			},
		}}
	case motifWaves:
		nodes := make([]layout.Node, 0, 2)
		for i, base := range []float64{styles.PageHeight * 0.78, styles.PageHeight * 0.85} {
			pts := wavePoints(base, 26-8*float64(i))
			nodes = append(nodes, layout.Node{Kind: layout.KindPolygon, Fill: accent, Points: pts})
		}
		return nodes
	case motifFrame:
		return []layout.Node{{
			Kind:      layout.KindRect,
			X:         styles.CoverMargin / 2,
			Y:         styles.CoverMargin / 2,
			W:         styles.PageWidth - styles.CoverMargin,
			H:         styles.PageHeight - styles.CoverMargin,
			Stroke:    accent,
			LineWidth: 2,
		}}
	case motifStripe:
		return []layout.Node{
			layout.Rect(0, styles.PageHeight*0.62, styles.PageWidth, 8, accent),
		}
	case motifDots:
		var nodes []layout.Node
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				nodes = append(nodes, layout.Node{
					Kind: layout.KindCircle,
					X:    styles.PageWidth - 130 + float64(col)*26,
					Y:    styles.PageHeight - 150 + float64(row)*26,
					W:    4,
					Fill: accent,
				})
			}
		}
		return nodes
	case motifBadge:
		return []layout.Node{{
			Kind: layout.KindCircle,
			X:    styles.PageWidth / 2,
			Y:    styles.PageHeight * 0.42,
			W:    160,
			Fill: accent,
		}}
	}
	return nil
}

// wavePoints approximates a wave band along the page bottom as a
// closed polygon.
func wavePoints(base, amplitude float64) []layout.Point {
	const segments = 12
	pts := make([]layout.Point, 0, segments+3)
	for i := 0; i <= segments; i++ {
		x := styles.PageWidth * float64(i) / segments
		offset := amplitude
		if i%2 == 0 {
			offset = -amplitude
		}
		pts = append(pts, layout.Point{X: x, Y: base + offset})
	}
	pts = append(pts,
		layout.Point{X: styles.PageWidth, Y: styles.PageHeight},
		layout.Point{X: 0, Y: styles.PageHeight},
	)
	return pts
}
