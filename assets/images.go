package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Image is a fetched, normalized image ready for embedding.
type Image struct {
	Data []byte
	Type string // "PNG" or "JPG", as the PDF engine names them
}

const (
	defaultCacheTTL     = 15 * time.Minute
	defaultMaxDimension = 600 // px; card images never render larger
	defaultFetchLimit   = 4   // concurrent prefetch requests
	maxImageBytes       = 8 << 20
)

// Fetcher downloads and normalizes remote images. Fetched images are
// cached with a TTL so repeated renders of the same catalog do not
// refetch every product image, and oversized images are downscaled
// before embedding.
type Fetcher struct {
	client *http.Client
	cache  *gocache.Cache
	maxDim int
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient replaces the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithMaxDimension caps the longest image edge in pixels; larger
// images are downscaled.
func WithMaxDimension(px int) FetcherOption {
	return func(f *Fetcher) { f.maxDim = px }
}

// NewFetcher creates a Fetcher with a 15-minute image cache.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client: &http.Client{Timeout: 20 * time.Second},
		cache:  gocache.New(defaultCacheTTL, 2*defaultCacheTTL),
		maxDim: defaultMaxDimension,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Get fetches an image by URL, serving from cache when possible.
func (f *Fetcher) Get(ctx context.Context, url string) (Image, error) {
	if cached, ok := f.cache.Get(url); ok {
		return cached.(Image), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Image{}, fmt.Errorf("assets: building request for %s: %w", url, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("assets: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Image{}, fmt.Errorf("assets: fetching %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return Image{}, fmt.Errorf("assets: reading %s: %w", url, err)
	}

	img, err := f.normalize(data)
	if err != nil {
		return Image{}, fmt.Errorf("assets: decoding %s: %w", url, err)
	}

	f.cache.SetDefault(url, img)
	return img, nil
}

// Prefetch warms the cache for a set of URLs with bounded concurrency.
// Individual failures are ignored; the per-card placeholder
// substitution handles them at render time.
func (f *Fetcher) Prefetch(ctx context.Context, urls []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultFetchLimit)
	for _, url := range urls {
		url := url
		g.Go(func() error {
			f.Get(ctx, url)
			return nil
		})
	}
	g.Wait()
}

// normalize decodes the payload, downscales it when an edge exceeds
// maxDim, and re-encodes to a format the PDF engine accepts.
func (f *Fetcher) normalize(data []byte) (Image, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Image{}, err
	}

	b := src.Bounds()
	if b.Dx() <= f.maxDim && b.Dy() <= f.maxDim {
		switch format {
		case "png":
			return Image{Data: data, Type: "PNG"}, nil
		case "jpeg":
			return Image{Data: data, Type: "JPG"}, nil
		}
	}

	dw, dh := b.Dx(), b.Dy()
	if dw > f.maxDim || dh > f.maxDim {
		if dw >= dh {
			dh = dh * f.maxDim / dw
			dw = f.maxDim
		} else {
			dw = dw * f.maxDim / dh
			dh = f.maxDim
		}
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if format == "jpeg" {
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
			return Image{}, err
		}
		return Image{Data: buf.Bytes(), Type: "JPG"}, nil
	}
	if err := png.Encode(&buf, dst); err != nil {
		return Image{}, err
	}
	return Image{Data: buf.Bytes(), Type: "PNG"}, nil
}
