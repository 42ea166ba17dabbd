// Package layout defines the declarative node model consumed by the
// render engine, plus the composition primitives the cover templates
// are built from.
//
// A Node is an absolutely-positioned visual element: rectangle,
// circle, polygon, line, text, image, or barcode. Templates are pure
// functions that emit node lists; they perform no I/O and never touch
// the PDF engine directly, so the same input always yields an
// identical tree.
package layout

import "github.com/ayhamDev/roza-catalog/styles"

// Kind discriminates node variants.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindPolygon
	KindLine
	KindText
	KindImage
	KindBarcode
)

// Point is a coordinate in page space (points, origin top-left).
type Point struct {
	X, Y float64
}

// FontSpec selects a font for a text node. Family is a resolved
// family name from the stylesheet; Style is "", "B", "I", or "BI".
type FontSpec struct {
	Family string
	Style  string
	Size   float64
}

// Node is a single visual element. Kind determines which fields are
// meaningful.
type Node struct {
	Kind Kind

	// Geometry. For KindCircle, X/Y is the center and W the radius.
	// For KindLine, the segment runs from (X,Y) to (X+W,Y+H).
	X, Y, W, H float64

	// Shape styling.
	Fill      styles.Color
	Stroke    styles.Color
	LineWidth float64

	// Polygon vertices (KindPolygon).
	Points []Point

	// Text content (KindText).
	Text  string
	Font  FontSpec
	Color styles.Color
	Align string // "L", "C", "R"
	Link  string // optional URL for clickable text

	// Image reference (KindImage): an asset key or URL.
	ImageRef string

	// Barcode content (KindBarcode).
	BarcodeKind string // BarcodeCode128 or BarcodeQR
	BarcodeData string
}

// Barcode symbologies understood by the engine.
const (
	BarcodeCode128 = "code128"
	BarcodeQR      = "qr"
)

// Page is an ordered node list plus page-level flags. Footer requests
// the live page-number footer the engine resolves at layout time.
type Page struct {
	Nodes  []Node
	Footer bool
}

// Add appends nodes to the page.
func (p *Page) Add(nodes ...Node) {
	p.Nodes = append(p.Nodes, nodes...)
}

// Text creates a text node spanning the given box.
func Text(x, y, w, h float64, text string, font FontSpec, color styles.Color, align string) Node {
	return Node{Kind: KindText, X: x, Y: y, W: w, H: h, Text: text, Font: font, Color: color, Align: align}
}

// Rect creates a filled rectangle node.
func Rect(x, y, w, h float64, fill styles.Color) Node {
	return Node{Kind: KindRect, X: x, Y: y, W: w, H: h, Fill: fill}
}

// Image creates an image node for an asset key or URL.
func Image(x, y, w, h float64, ref string) Node {
	return Node{Kind: KindImage, X: x, Y: y, W: w, H: h, ImageRef: ref}
}
