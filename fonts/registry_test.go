package fonts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestLoadIsIdempotent(t *testing.T) {
	var hits atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte("not-a-real-ttf"))
	}))
	defer ts.Close()

	r := NewRegistry(
		Source{Family: "Poppins", Style: "", URL: ts.URL + "/a.ttf"},
		Source{Family: "Poppins", Style: "B", URL: ts.URL + "/b.ttf"},
	)
	r.SetHTTPClient(ts.Client())

	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected 2 fetches for 2 faces, got %d", got)
	}
	if !r.Has("Poppins") {
		t.Fatal("Has(Poppins) = false after Load")
	}
	if r.Has("Inter") {
		t.Fatal("Has(Inter) = true for a family never sourced")
	}
}

func TestLoadRetriesOnlyMissingFaces(t *testing.T) {
	var hits atomic.Int64
	fail := true
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if fail && r.URL.Path == "/b.ttf" {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ttf"))
	}))
	defer ts.Close()

	r := NewRegistry(
		Source{Family: "Inter", Style: "", URL: ts.URL + "/a.ttf"},
		Source{Family: "Inter", Style: "B", URL: ts.URL + "/b.ttf"},
	)
	r.SetHTTPClient(ts.Client())

	if err := r.Load(context.Background()); err == nil {
		t.Fatal("expected error while one face is unreachable")
	}

	fail = false
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load after recovery failed: %v", err)
	}
	// First call: a.ttf + failed b.ttf. Second call: only b.ttf.
	if got := hits.Load(); got != 3 {
		t.Fatalf("expected 3 fetches total, got %d", got)
	}
}
