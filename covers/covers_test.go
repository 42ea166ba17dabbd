package covers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
	"github.com/ayhamDev/roza-catalog/styles"
)

func testSheet(t *testing.T) *styles.Sheet {
	t.Helper()
	sheet, err := styles.Resolve(catalog.Theme{
		Fonts: catalog.FontPair{Heading: "Helvetica", Body: "Times"},
		Cover: catalog.CoverPalette{
			Primary:    "#1a237e",
			Secondary:  "#c5cae9",
			Background: "#ffffff",
			Text:       "#212121",
		},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return sheet
}

func testInfo() catalog.CompanyInfo {
	return catalog.CompanyInfo{
		Name:    "Roza Wholesale",
		Tagline: "Quality Goods",
		Year:    "2025",
		LogoURL: "https://cdn.example.com/logo.png",
	}
}

// Every one of the sixteen variants must place a logo, carry the year
// marker, and use only cover-palette colors.
func TestRenderTotality(t *testing.T) {
	sheet := testSheet(t)
	info := testInfo()
	palette := map[styles.Color]bool{
		{}:                     true, // unset is permitted, never a foreign literal
		sheet.Cover.Primary:    true,
		sheet.Cover.Secondary:  true,
		sheet.Cover.Background: true,
		sheet.Cover.Text:       true,
	}

	for _, l := range catalog.CoverLayouts {
		page := Render(l, info, sheet)
		if len(page.Nodes) == 0 {
			t.Fatalf("%s: empty page", l)
		}

		var hasLogo, hasYear bool
		for _, n := range page.Nodes {
			switch n.Kind {
			case layout.KindImage:
				if n.ImageRef == info.LogoURL {
					hasLogo = true
				}
			case layout.KindText:
				if strings.Contains(n.Text, info.Year) {
					hasYear = true
				}
			}
			for _, c := range []styles.Color{n.Fill, n.Stroke, n.Color} {
				if !palette[c] {
					t.Fatalf("%s: color %+v outside the cover palette", l, c)
				}
			}
		}
		if !hasLogo {
			t.Fatalf("%s: no logo node", l)
		}
		if !hasYear {
			t.Fatalf("%s: no text node carrying the year", l)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	sheet := testSheet(t)
	info := testInfo()
	for _, l := range catalog.CoverLayouts {
		a := Render(l, info, sheet)
		b := Render(l, info, sheet)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("%s: render is not deterministic", l)
		}
	}
}

func TestRenderUnknownLayoutFallsBack(t *testing.T) {
	sheet := testSheet(t)
	page := Render("polka-dot-dream", testInfo(), sheet)
	if len(page.Nodes) == 0 {
		t.Fatal("fallback page is empty")
	}
	var found bool
	for _, n := range page.Nodes {
		if n.Kind == layout.KindText && strings.Contains(n.Text, "polka-dot-dream") {
			found = true
		}
	}
	if !found {
		t.Fatal("fallback page does not name the unknown layout")
	}
}

func TestRenderDefaultLogoFallback(t *testing.T) {
	sheet := testSheet(t)
	info := testInfo()
	info.LogoURL = ""
	page := Render(catalog.CoverCorporateMinimalist, info, sheet)

	var found bool
	for _, n := range page.Nodes {
		if n.Kind == layout.KindImage && n.ImageRef == assets.DefaultLogoKey {
			found = true
		}
	}
	if !found {
		t.Fatal("empty logo URL did not resolve to the bundled default asset")
	}
}
