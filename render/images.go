package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/layout"
)

// drawImage resolves an image reference and places it. Asset keys come
// from the embedded bundle; URLs go through the fetcher, degrading to
// the placeholder and finally to nothing. A missing picture never
// fails the render.
func (w *walker) drawImage(n layout.Node) error {
	name, ok := w.registerImage(n.ImageRef)
	if !ok {
		return nil
	}
	w.pdf.ImageOptions(name, n.X, n.Y, n.W, n.H, false, gofpdf.ImageOptions{}, 0, "")
	return nil
}

// registerImage ensures the reference's bytes are registered with the
// document, once per unique reference, and returns the registered
// name. ok is false when the image cannot be resolved.
func (w *walker) registerImage(ref string) (name string, ok bool) {
	if name, seen := w.images[ref]; seen {
		return name, name != ""
	}

	name, ok = w.loadImage(ref)
	if !ok && ref != assets.PlaceholderImageURL {
		// Graceful degradation: unreachable product images fall back
		// to the fixed placeholder.
		name, ok = w.registerImage(assets.PlaceholderImageURL)
	}
	if !ok {
		name = ""
	}
	w.images[ref] = name
	return name, ok
}

func (w *walker) loadImage(ref string) (string, bool) {
	if ref == assets.DefaultLogoKey {
		name := "asset-default-logo"
		w.pdf.RegisterImageOptionsReader(name,
			gofpdf.ImageOptions{ImageType: "PNG"},
			bytes.NewReader(assets.DefaultLogo()))
		return name, !w.pdf.Err()
	}

	if w.cfg.fetcher == nil {
		return "", false
	}
	img, err := w.cfg.fetcher.Get(w.ctx, ref)
	if err != nil {
		return "", false
	}
	name := fmt.Sprintf("img-%d", len(w.images))
	w.pdf.RegisterImageOptionsReader(name,
		gofpdf.ImageOptions{ImageType: img.Type},
		bytes.NewReader(img.Data))
	return name, !w.pdf.Err()
}

// prefetchImages warms the fetcher cache for every remote image the
// document references before page drawing starts.
func (w *walker) prefetchImages(doc *catalog.Document) {
	var urls []string
	if doc.Info.LogoURL != "" {
		urls = append(urls, doc.Info.LogoURL)
	}
	for _, cat := range doc.Categories {
		for _, p := range cat.Products {
			if p.ImageURL != "" {
				urls = append(urls, p.ImageURL)
			}
		}
	}
	if len(urls) > 0 {
		w.cfg.fetcher.Prefetch(w.ctx, urls)
	}
}
