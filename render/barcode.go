package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"
	"github.com/jung-kurt/gofpdf"

	"github.com/ayhamDev/roza-catalog/layout"
)

// drawBarcode encodes the node's payload, rasterizes it to PNG and
// places it like any other image. Encoded barcodes are cached per
// kind and payload so repeated product IDs cost one registration.
func (w *walker) drawBarcode(n layout.Node) error {
	if n.BarcodeData == "" {
		return nil
	}

	key := "barcode:" + n.BarcodeKind + ":" + n.BarcodeData
	name, seen := w.images[key]
	if !seen {
		data, err := encodeBarcode(n)
		if err != nil {
			return opErr("barcode", err)
		}
		name = fmt.Sprintf("bc-%d", len(w.images))
		w.pdf.RegisterImageOptionsReader(name,
			gofpdf.ImageOptions{ImageType: "PNG"},
			bytes.NewReader(data))
		w.images[key] = name
	}
	w.pdf.ImageOptions(name, n.X, n.Y, n.W, n.H, false, gofpdf.ImageOptions{}, 0, "")
	return nil
}

func encodeBarcode(n layout.Node) ([]byte, error) {
	var (
		bc  barcode.Barcode
		err error
	)
	switch n.BarcodeKind {
	case layout.BarcodeCode128:
		bc, err = code128.Encode(n.BarcodeData)
	case layout.BarcodeQR:
		bc, err = qr.Encode(n.BarcodeData, qr.M, qr.Auto)
	default:
		return nil, fmt.Errorf("unknown barcode kind %q", n.BarcodeKind)
	}
	if err != nil {
		return nil, err
	}

	// Scale to a raster comfortably above the placed size so the bars
	// stay crisp at print resolution.
	bc, err = barcode.Scale(bc, scaleDim(n.W), scaleDim(n.H))
	if err != nil {
		return nil, err
	}

	// The barcode images report a 16-bit grayscale color model, which
	// gofpdf cannot embed; redraw onto an 8-bit canvas before encoding.
	img := image.NewGray(bc.Bounds())
	draw.Draw(img, img.Bounds(), bc, bc.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaleDim(pt float64) int {
	const factor = 4
	d := int(pt) * factor
	if d < 64 {
		d = 64
	}
	return d
}
