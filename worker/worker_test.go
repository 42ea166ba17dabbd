package worker

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ayhamDev/roza-catalog/catalog"
)

func testDoc() *catalog.Document {
	return &catalog.Document{
		Info: catalog.CompanyInfo{Name: "Roza Wholesale", Year: "2026"},
		Theme: catalog.Theme{
			Fonts: catalog.FontPair{Heading: "Helvetica", Body: "Times"},
			Cover: catalog.CoverPalette{
				Primary:    "#1E3A8A",
				Secondary:  "#F59E0B",
				Background: "#FFFFFF",
				Text:       "#111827",
			},
			Toc: catalog.TocPalette{
				Accent:     "#1E3A8A",
				Background: "#FFFFFF",
				Text:       "#111827",
			},
			Content: catalog.ContentPalette{
				CategoryHeader: "#1E3A8A",
				CategoryText:   "#FFFFFF",
				Price:          "#B91C1C",
				Background:     "#FFFFFF",
				Text:           "#111827",
			},
			BackCover: catalog.BackPalette{
				Primary:    "#1E3A8A",
				Background: "#FFFFFF",
				Text:       "#F9FAFB",
			},
		},
		Categories: []catalog.Category{{
			ID:   1,
			Name: "Beverages",
			Products: []catalog.Product{
				{ID: 100, Name: "Sparkling Water", Price: decimal.NewFromInt(4)},
			},
		}},
		CoverLayout: catalog.CoverElegantCentered,
	}
}

func TestWorkerRender(t *testing.T) {
	w := New()
	defer w.Close()
	w.Install(Env{})

	res, err := w.Render(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(res.PDF, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF")
	}
	if want := catalog.PredictPageCount(testDoc()); res.Pages != want {
		t.Errorf("Pages = %d, want %d", res.Pages, want)
	}
}

func TestWorkerRejectsNonSerializable(t *testing.T) {
	w := New()
	defer w.Close()
	w.Install(Env{})

	doc := struct {
		Callback func() `json:"callback"`
	}{Callback: func() {}}

	if _, err := w.Render(context.Background(), doc); !errors.Is(err, ErrNotSerializable) {
		t.Fatalf("err = %v, want ErrNotSerializable", err)
	}
}

func TestWorkerEnvNotReady(t *testing.T) {
	w := New()
	defer w.Close()

	if _, err := w.Render(context.Background(), testDoc()); !errors.Is(err, ErrEnvNotReady) {
		t.Fatalf("err = %v, want ErrEnvNotReady", err)
	}
}

func TestWorkerClosed(t *testing.T) {
	w := New()
	w.Install(Env{})
	w.Close()

	if _, err := w.Render(context.Background(), testDoc()); !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}

func TestWorkerInvalidDocumentShape(t *testing.T) {
	w := New()
	defer w.Close()
	w.Install(Env{})

	// Serializes fine but does not decode into a document.
	doc := map[string]any{"info": "not-an-object"}
	if _, err := w.Render(context.Background(), doc); err == nil {
		t.Fatal("want decode error, got nil")
	}
}

func TestPoolConcurrentRenders(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.Install(Env{})

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := p.Render(context.Background(), testDoc())
			if err == nil && !bytes.HasPrefix(res.PDF, []byte("%PDF")) {
				err = errors.New("bad pdf prefix")
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("render %d: %v", i, err)
		}
	}
}

func TestPoolClosed(t *testing.T) {
	p := NewPool(2)
	p.Install(Env{})
	p.Close()

	if _, err := p.Render(context.Background(), testDoc()); !errors.Is(err, ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}
