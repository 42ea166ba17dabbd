// Package srv exposes catalog rendering over HTTP.
//
// POST /render accepts a catalog document as JSON and responds with the
// finished PDF. GET /healthz reports liveness. Rendering happens on the
// worker pool, so slow documents never block the listener.
package srv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/render"
	"github.com/ayhamDev/roza-catalog/worker"
)

// Renderer is the part of the worker pool the server uses.
type Renderer interface {
	Render(ctx context.Context, doc any) (*render.Result, error)
}

// Server routes render requests onto a worker pool.
type Server struct {
	log    *zap.Logger
	pool   Renderer
	router chi.Router
}

// New builds the server around pool.
func New(pool Renderer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{log: log, pool: pool}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(30, time.Minute))

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()
	log := s.log.With(zap.String("job", jobID))

	var doc catalog.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Warn("bad request body", zap.Error(err))
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	res, err := s.pool.Render(r.Context(), &doc)
	if err != nil {
		var ve *catalog.ValidationError
		switch {
		case errors.As(err, &ve):
			log.Warn("document rejected", zap.Error(err))
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, worker.ErrClosed), errors.Is(err, worker.ErrEnvNotReady):
			log.Error("pool unavailable", zap.Error(err))
			http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		default:
			log.Error("render failed", zap.Error(err))
			http.Error(w, "render failed", http.StatusInternalServerError)
		}
		return
	}

	for _, warn := range res.Warnings {
		log.Warn("document warning", zap.String("warning", warn))
	}
	log.Info("render served",
		zap.String("company", doc.Info.Name),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(res.PDF)),
		zap.Duration("elapsed", time.Since(start)))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(res.PDF)))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", catalogFilename(doc.Info)))
	w.Header().Set("X-Render-Id", jobID)
	w.Header().Set("X-Render-Pages", strconv.Itoa(res.Pages))
	w.Write(res.PDF)
}

func catalogFilename(info catalog.CompanyInfo) string {
	name := strings.ToLower(strings.ReplaceAll(info.Name, " ", "-"))
	if name == "" {
		name = "catalog"
	}
	if info.Year != "" {
		return fmt.Sprintf("%s-catalog-%s.pdf", name, info.Year)
	}
	return name + "-catalog.pdf"
}
