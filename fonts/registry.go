// Package fonts manages the catalog typefaces: four TTF files fetched
// once from fixed URLs and registered with each PDF document before
// rendering.
//
// Loading is process-wide, idempotent configuration, not part of the
// per-render contract: a Registry fetches each font at most once and
// Apply installs whatever is loaded into a document. An unreachable
// font is a configuration error; there is no automatic fallback font.
package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Source names one font face and where its TTF lives.
type Source struct {
	Family string
	Style  string // "", "B"
	URL    string
}

// Defaults are the four catalog fonts: the heading pair and the body
// pair, fetched from the Google Fonts static file host.
var Defaults = []Source{
	{Family: "Poppins", Style: "", URL: "https://fonts.gstatic.com/s/poppins/v21/pxiEyp8kv8JHgFVrFJA.ttf"},
	{Family: "Poppins", Style: "B", URL: "https://fonts.gstatic.com/s/poppins/v21/pxiByp8kv8JHgFVrLCz7V1s.ttf"},
	{Family: "Inter", Style: "", URL: "https://fonts.gstatic.com/s/inter/v13/UcCO3FwrK3iLTeHuS_fvQtMwCp50KnMw2boKoduKmMEVuLyfAZ9hiA.ttf"},
	{Family: "Inter", Style: "B", URL: "https://fonts.gstatic.com/s/inter/v13/UcCO3FwrK3iLTeHuS_fvQtMwCp50KnMw2boKoduKmMEVuFuYAZ9hiA.ttf"},
}

const maxFontBytes = 4 << 20

// Registry holds loaded font bytes keyed by family+style. Safe for
// concurrent use; Load is register-if-absent.
type Registry struct {
	mu      sync.Mutex
	sources []Source
	loaded  map[string][]byte
	client  *http.Client
}

// NewRegistry creates a registry over the given sources, or Defaults
// when none are supplied.
func NewRegistry(sources ...Source) *Registry {
	if len(sources) == 0 {
		sources = Defaults
	}
	return &Registry{
		sources: sources,
		loaded:  make(map[string][]byte),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetHTTPClient replaces the HTTP client used for fetching.
func (r *Registry) SetHTTPClient(c *http.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.client = c
}

func key(family, style string) string {
	return family + "/" + style
}

// Load fetches every source not yet loaded. Calling it again is a
// no-op for fonts already present; a partial earlier failure retries
// only the missing faces.
func (r *Registry) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sources {
		k := key(s.Family, s.Style)
		if _, ok := r.loaded[k]; ok {
			continue
		}
		data, err := r.fetch(ctx, s.URL)
		if err != nil {
			return fmt.Errorf("fonts: loading %s %q: %w", s.Family, s.Style, err)
		}
		r.loaded[k] = data
	}
	return nil
}

func (r *Registry) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFontBytes))
}

// Has reports whether a family has at least its regular face loaded.
func (r *Registry) Has(family string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.loaded[key(family, "")]
	return ok
}

// Apply registers every loaded face with a document. gofpdf keeps its
// own per-document font table, so Apply runs once per render.
func (r *Registry) Apply(pdf *gofpdf.Fpdf) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sources {
		if data, ok := r.loaded[key(s.Family, s.Style)]; ok {
			pdf.AddUTF8FontFromBytes(s.Family, s.Style, data)
		}
	}
}
