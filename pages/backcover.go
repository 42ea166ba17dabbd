package pages

import (
	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

const (
	backBlockSplit = 0.42 // primary block height as a fraction of the page
	backLogoSize   = 70
	qrSize         = 64
)

// BackCover builds the final page: a primary-color block with logo and
// company name, and a light block with a two-column contact grid
// (phone/email on the left, website-as-link/address on the right) plus
// a QR code carrying the website.
func BackCover(info catalog.CompanyInfo, sheet *styles.Sheet) layout.Page {
	var p layout.Page
	splitY := styles.PageHeight * backBlockSplit

	p.Add(layout.SplitPanel(false, splitY, sheet.Back.Primary, sheet.Back.Background)...)

	// Primary block: logo and name.
	cx := styles.PageWidth / 2
	p.Add(layout.Image(cx-backLogoSize/2, splitY/2-backLogoSize, backLogoSize, backLogoSize,
		assets.LogoRef(info.LogoURL)))
	p.Add(layout.Text(styles.ContentMargin, splitY/2+10,
		styles.PageWidth-2*styles.ContentMargin, styles.SizeBackTitle*1.4,
		info.Name,
		layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeBackTitle},
		sheet.Back.Background, "C"))

	// Contact grid: two columns, two rows.
	colW := (styles.PageWidth - 2*styles.ContentMargin) / 2
	leftX := float64(styles.ContentMargin)
	rightX := leftX + colW
	rowY := splitY + 60
	rowH := 40.0

	contactFont := layout.FontSpec{Family: sheet.BodyFont, Size: styles.SizeBackContact}
	labelFont := layout.FontSpec{Family: sheet.HeadingFont, Style: "B", Size: styles.SizeBackContact}

	cell := func(x, y float64, label, value, link string) {
		p.Add(layout.Text(x, y, colW-10, 14, label, labelFont, sheet.Back.Primary, "L"))
		n := layout.Text(x, y+15, colW-10, 14, value, contactFont, sheet.Back.Text, "L")
		n.Link = link
		p.Add(n)
	}

	cell(leftX, rowY, "Phone", info.Phone, "")
	cell(rightX, rowY, "Website", info.Website, info.Website)
	cell(leftX, rowY+rowH, "Email", info.Email, "")
	cell(rightX, rowY+rowH, "Address", info.Address, "")

	if info.Website != "" {
		p.Add(layout.Node{
			Kind:        layout.KindBarcode,
			X:           cx - qrSize/2,
			Y:           styles.PageHeight - qrSize - 60,
			W:           qrSize,
			H:           qrSize,
			BarcodeKind: layout.BarcodeQR,
			BarcodeData: info.Website,
		})
	}

	return p
}
