// Package assets bundles the fallback visual assets and the image
// fetching pipeline used when embedding product and logo images.
package assets

import (
	_ "embed"
	"strings"
)

//go:embed default_logo.png
var defaultLogo []byte

// DefaultLogoKey is the image reference templates emit when the
// company supplies no logo URL. The render engine resolves it to the
// embedded default logo bytes.
const DefaultLogoKey = "asset:default-logo"

// PlaceholderImageURL is substituted for product images that are empty
// or fail to resolve.
const PlaceholderImageURL = "https://placehold.co/300x300.png"

// DefaultLogo returns the embedded default logo PNG.
func DefaultLogo() []byte {
	return defaultLogo
}

// LogoRef resolves a company logo URL to an image reference, falling
// back to the bundled default when the URL is empty.
func LogoRef(url string) string {
	if strings.TrimSpace(url) == "" {
		return DefaultLogoKey
	}
	return url
}

// ImageRef resolves a product image URL, falling back to the fixed
// placeholder when the URL is empty.
func ImageRef(url string) string {
	if strings.TrimSpace(url) == "" {
		return PlaceholderImageURL
	}
	return url
}
