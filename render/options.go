package render

import (
	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/fonts"
)

// Option is a functional option for configuring an Engine.
type Option func(*config)

type config struct {
	fetcher  *assets.Fetcher
	fonts    *fonts.Registry
	prefetch bool
}

// WithImageFetcher installs the image pipeline used to resolve logo
// and product image URLs. Without one, remote images are skipped and
// only embedded assets are drawn, which suits tests and offline runs.
func WithImageFetcher(f *assets.Fetcher) Option {
	return func(c *config) {
		c.fetcher = f
		c.prefetch = true
	}
}

// WithFontRegistry installs the loaded catalog fonts. Without one,
// only the core PDF font families are available to themes.
func WithFontRegistry(r *fonts.Registry) Option {
	return func(c *config) {
		c.fonts = r
	}
}
