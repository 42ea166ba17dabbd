package layout

import "github.com/ayhamDev/roza-catalog/styles"

// The cover templates share a small set of structural primitives.
// Each primitive is a pure builder over Node values; the sixteen
// variants differ only in how they parameterize and combine these.

// FullBleedBackground covers the whole page with one color.
func FullBleedBackground(c styles.Color) Node {
	return Rect(0, 0, styles.PageWidth, styles.PageHeight, c)
}

// SplitPanel divides the page into two colored panels. With vertical
// true the split runs top to bottom at x=at; otherwise left to right
// at y=at.
func SplitPanel(vertical bool, at float64, a, b styles.Color) []Node {
	if vertical {
		return []Node{
			Rect(0, 0, at, styles.PageHeight, a),
			Rect(at, 0, styles.PageWidth-at, styles.PageHeight, b),
		}
	}
	return []Node{
		Rect(0, 0, styles.PageWidth, at, a),
		Rect(0, at, styles.PageWidth, styles.PageHeight-at, b),
	}
}

// StackLine is one row of a CenteredStack.
type StackLine struct {
	Text    string
	Font    FontSpec
	Color   styles.Color
	Height  float64 // row height; defaults to 1.4x font size when zero
	Spacing float64 // extra gap after the row
}

// CenteredStack lays out rows centered horizontally within [x, x+w),
// flowing downward from y. It returns the nodes and the y coordinate
// following the last row.
func CenteredStack(x, y, w float64, align string, lines []StackLine) ([]Node, float64) {
	nodes := make([]Node, 0, len(lines))
	cur := y
	for _, l := range lines {
		h := l.Height
		if h == 0 {
			h = l.Font.Size * 1.4
		}
		if l.Text != "" {
			nodes = append(nodes, Text(x, cur, w, h, l.Text, l.Font, l.Color, align))
		}
		cur += h + l.Spacing
	}
	return nodes, cur
}

// OverlayBox draws a filled box and lays its lines out inside it with
// uniform padding.
func OverlayBox(x, y, w, h, pad float64, fill styles.Color, align string, lines []StackLine) []Node {
	nodes := []Node{Rect(x, y, w, h, fill)}
	inner, _ := CenteredStack(x+pad, y+pad, w-2*pad, align, lines)
	return append(nodes, inner...)
}
