package catalog

// CoverLayout selects one of the fixed cover-page templates. The set
// is closed; values outside it degrade to an explicit fallback page at
// compose time instead of failing the render.
type CoverLayout string

// The sixteen cover layouts.
const (
	CoverCorporateMinimalist CoverLayout = "corporate-minimalist"
	CoverCorporateClassic    CoverLayout = "corporate-classic"
	CoverModernSplit         CoverLayout = "modern-split"
	CoverModernSidebar       CoverLayout = "modern-sidebar"
	CoverBoldDiagonal        CoverLayout = "bold-diagonal"
	CoverBoldBanner          CoverLayout = "bold-banner"
	CoverElegantCentered     CoverLayout = "elegant-centered"
	CoverElegantFrame        CoverLayout = "elegant-frame"
	CoverGeometricCircles    CoverLayout = "geometric-circles"
	CoverGeometricWaves      CoverLayout = "geometric-waves"
	CoverFullColorBlock      CoverLayout = "full-color-block"
	CoverAccentStripe        CoverLayout = "accent-stripe"
	CoverMinimalLeft         CoverLayout = "minimal-left"
	CoverMinimalGrid         CoverLayout = "minimal-grid"
	CoverRetroBadge          CoverLayout = "retro-badge"
	CoverDuotone             CoverLayout = "contemporary-duotone"
)

// CoverLayouts lists every member of the closed set, in display order.
var CoverLayouts = []CoverLayout{
	CoverCorporateMinimalist,
	CoverCorporateClassic,
	CoverModernSplit,
	CoverModernSidebar,
	CoverBoldDiagonal,
	CoverBoldBanner,
	CoverElegantCentered,
	CoverElegantFrame,
	CoverGeometricCircles,
	CoverGeometricWaves,
	CoverFullColorBlock,
	CoverAccentStripe,
	CoverMinimalLeft,
	CoverMinimalGrid,
	CoverRetroBadge,
	CoverDuotone,
}

// Valid reports whether l is a member of the cover layout set.
func (l CoverLayout) Valid() bool {
	for _, known := range CoverLayouts {
		if l == known {
			return true
		}
	}
	return false
}
