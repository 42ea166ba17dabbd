package assets

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func TestDefaultLogoIsValidPNG(t *testing.T) {
	img, format, err := image.Decode(bytes.NewReader(DefaultLogo()))
	if err != nil {
		t.Fatalf("decoding embedded logo: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Error("embedded logo has zero size")
	}
}

func TestRefFallbacks(t *testing.T) {
	if got := LogoRef(""); got != DefaultLogoKey {
		t.Errorf("LogoRef(\"\") = %q, want %q", got, DefaultLogoKey)
	}
	if got := LogoRef("  "); got != DefaultLogoKey {
		t.Errorf("LogoRef(blank) = %q, want %q", got, DefaultLogoKey)
	}
	if got := LogoRef("https://example.com/logo.png"); got != "https://example.com/logo.png" {
		t.Errorf("LogoRef(url) = %q", got)
	}
	if got := ImageRef(""); got != PlaceholderImageURL {
		t.Errorf("ImageRef(\"\") = %q, want placeholder", got)
	}
}

func TestFetcherCachesByURL(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(pngBytes(t, 10, 10))
	}))
	defer ts.Close()

	f := NewFetcher()
	for i := 0; i < 3; i++ {
		img, err := f.Get(context.Background(), ts.URL+"/p.png")
		if err != nil {
			t.Fatalf("Get %d: %v", i, err)
		}
		if img.Type != "PNG" {
			t.Fatalf("Type = %q, want PNG", img.Type)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}
}

func TestFetcherDownscalesOversized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngBytes(t, 400, 100))
	}))
	defer ts.Close()

	f := NewFetcher(WithMaxDimension(200))
	img, err := f.Get(context.Background(), ts.URL+"/wide.png")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != 200 || got.Dy() != 50 {
		t.Errorf("scaled to %dx%d, want 200x50", got.Dx(), got.Dy())
	}
}

func TestFetcherRejectsNonImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer ts.Close()

	if _, err := NewFetcher().Get(context.Background(), ts.URL); err == nil {
		t.Fatal("want decode error, got nil")
	}
}

func TestFetcherRejectsErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	if _, err := NewFetcher().Get(context.Background(), ts.URL); err == nil {
		t.Fatal("want status error, got nil")
	}
}

func TestPrefetchWarmsCache(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(pngBytes(t, 10, 10))
	}))
	defer ts.Close()

	f := NewFetcher()
	f.Prefetch(context.Background(), []string{
		ts.URL + "/a.png",
		ts.URL + "/b.png",
		ts.URL + "/missing.png", // failure must not abort the batch
	})

	before := hits.Load()
	if _, err := f.Get(context.Background(), ts.URL+"/a.png"); err != nil {
		t.Fatalf("Get after prefetch: %v", err)
	}
	if hits.Load() != before {
		t.Error("Get refetched a prefetched URL")
	}
}
