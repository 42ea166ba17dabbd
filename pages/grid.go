package pages

import (
	"fmt"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

// Card geometry within a grid cell, in points.
const (
	cardPadding   = 8
	cardImageSize = 110
	badgeSize     = 22
	barcodeHeight = 18
)

// GridPages expands a category's product list into grid pages: 9 cards
// per page in a 3-column grid, input order preserved. An empty
// category yields no grid pages.
func GridPages(cat catalog.Category, sheet *styles.Sheet) []layout.Page {
	chunks := Chunk(cat.Products, catalog.ProductsPerPage)
	result := make([]layout.Page, 0, len(chunks))
	for _, chunk := range chunks {
		result = append(result, gridPage(chunk, sheet))
	}
	return result
}

// gridPage lays out up to ProductsPerPage cards.
func gridPage(products []catalog.Product, sheet *styles.Sheet) layout.Page {
	p := layout.Page{Footer: true}
	if sheet.Content.Background.Set {
		p.Add(layout.FullBleedBackground(sheet.Content.Background))
	}

	cellW := (styles.PageWidth - 2*styles.ContentMargin) / styles.GridColumns
	cellH := (styles.PageHeight - 2*styles.ContentMargin) / styles.GridRows

	for i, product := range products {
		col := i % styles.GridColumns
		row := i / styles.GridColumns
		x := styles.ContentMargin + float64(col)*cellW
		y := styles.ContentMargin + float64(row)*cellH
		p.Add(productCard(product, x, y, cellW, cellH, sheet)...)
	}
	return p
}

// productCard renders one product into its cell: image (or
// placeholder), name, optional description, price to two decimals, an
// id overlay badge, and a Code128 barcode of the id.
func productCard(product catalog.Product, x, y, w, h float64, sheet *styles.Sheet) []layout.Node {
	inX := x + cardPadding
	inW := w - 2*cardPadding

	nodes := []layout.Node{
		// Card frame.
		{
			Kind:      layout.KindRect,
			X:         x + 2,
			Y:         y + 2,
			W:         w - 4,
			H:         h - 4,
			Stroke:    sheet.Content.CategoryHeader,
			LineWidth: 0.5,
		},
		layout.Image(inX+(inW-cardImageSize)/2, y+cardPadding, cardImageSize, cardImageSize,
			assets.ImageRef(product.ImageURL)),
	}

	// Id overlay badge in the card's top-right corner.
	nodes = append(nodes,
		layout.Rect(x+w-badgeSize-4, y+4, badgeSize, badgeSize, sheet.Content.CategoryHeader),
		layout.Text(x+w-badgeSize-4, y+4+badgeSize/3, badgeSize, badgeSize/2,
			fmt.Sprintf("%d", product.ID),
			layout.FontSpec{Family: sheet.BodyFont, Style: "B", Size: styles.SizeCardBadge},
			sheet.Content.CategoryText, "C"),
	)

	textY := y + cardPadding + cardImageSize + 6
	nodes = append(nodes, layout.Text(inX, textY, inW, 12, product.Name,
		layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeCardName},
		sheet.Content.Text, "C"))
	textY += 13

	if product.Description != "" {
		nodes = append(nodes, layout.Text(inX, textY, inW, 20, product.Description,
			layout.FontSpec{Family: sheet.BodyFont, Size: styles.SizeCardDesc},
			sheet.Content.Text, "C"))
	}
	textY += 22

	nodes = append(nodes, layout.Text(inX, textY, inW, 14,
		"$"+product.DisplayPrice(),
		layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeCardPrice},
		sheet.Content.Price, "C"))

	nodes = append(nodes, layout.Node{
		Kind:        layout.KindBarcode,
		X:           inX + inW/4,
		Y:           y + h - barcodeHeight - cardPadding,
		W:           inW / 2,
		H:           barcodeHeight,
		BarcodeKind: layout.BarcodeCode128,
		BarcodeData: fmt.Sprintf("%d", product.ID),
	})

	return nodes
}
