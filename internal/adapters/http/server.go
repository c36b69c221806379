// Package http serves diagram documents as Mermaid text over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/mermaidkit"
	"github.com/aretw0/mermaidkit/internal/document"
	"github.com/aretw0/mermaidkit/internal/logging"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache stores rendered diagrams by document digest.
// Get reports any error, including a miss, as a non-nil error.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, diagram string) error
}

// Purger is implemented by caches that can be emptied through DELETE /cache.
type Purger interface {
	Purge(ctx context.Context) error
}

// Server renders documents posted to it.
type Server struct {
	cache    Cache
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

type Option func(*Server)

// WithCache enables render caching.
func WithCache(c Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithRegistry sets the registry served on /metrics. Each server gets a
// fresh registry by default.
func WithRegistry(r *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = r
	}
}

// NewHandler creates the HTTP handler of the render service.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.health)
	r.Get("/info", s.info)
	r.Get("/kinds", s.kinds)
	r.Post("/render", s.render)
	r.Delete("/cache", s.purge)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "mermaidkit-http",
		"version": strings.TrimSpace(mermaidkit.Version),
	})
}

func (s *Server) kinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"builders":  mermaidkit.Kinds(),
		"documents": document.Kinds(),
	})
}

// render handles POST /render. The format comes from the "format" query
// parameter, else from the Content-Type.
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("request_id", RequestID(ctx))

	format := document.FormatFromContentType(r.Header.Get("Content-Type"))
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := document.ParseFormat(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, errorBody{Code: "INVALID_DOCUMENT", Error: err.Error()})
			return
		}
		format = f
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(document.MaxSize())))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody{Code: "INVALID_DOCUMENT", Error: err.Error()})
		return
	}

	key := document.Digest(format, data)
	if s.cache != nil {
		if out, err := s.cache.Get(ctx, key); err == nil {
			s.metrics.cacheHits.Inc()
			w.Header().Set("X-Cache", "hit")
			writeText(w, out)
			return
		}
		w.Header().Set("X-Cache", "miss")
	}

	doc, err := document.Load(data, format)
	if err != nil {
		s.metrics.renders.WithLabelValues("unknown", "invalid").Inc()
		writeError(w, http.StatusBadRequest, errorBody{Code: "INVALID_DOCUMENT", Error: err.Error()})
		return
	}

	kind := kindLabel(doc.Kind)
	timer := prometheus.NewTimer(s.metrics.renderDuration.WithLabelValues(kind))
	out, err := document.Build(doc)
	timer.ObserveDuration()

	switch {
	case errors.Is(err, document.ErrUnsupportedKind), errors.Is(err, document.ErrDecode):
		s.metrics.renders.WithLabelValues(kind, "invalid").Inc()
		writeError(w, http.StatusBadRequest, errorBody{Code: "INVALID_DOCUMENT", Error: err.Error()})
		return
	case err != nil:
		s.metrics.renders.WithLabelValues(kind, "rejected").Inc()
		logger.Debug("document rejected", "kind", doc.Kind, "error", err)
		writeError(w, http.StatusUnprocessableEntity, rejection(out, err))
		return
	}

	s.metrics.renders.WithLabelValues(kind, "ok").Inc()
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out); err != nil {
			logger.Warn("cache store failed", "error", err)
		}
	}
	writeText(w, out)
}

func (s *Server) purge(w http.ResponseWriter, r *http.Request) {
	p, ok := s.cache.(Purger)
	if !ok {
		writeError(w, http.StatusNotFound, errorBody{Code: "NO_CACHE", Error: "caching is disabled"})
		return
	}
	if err := p.Purge(r.Context()); err != nil {
		s.logger.Error("cache purge failed", "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusInternalServerError, errorBody{Code: "CACHE", Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// kindLabel bounds the metric label values to the supported kinds.
func kindLabel(kind string) string {
	kind = strings.ToLower(kind)
	for _, k := range document.Kinds() {
		if string(k) == kind {
			return kind
		}
	}
	return "unknown"
}

type errorBody struct {
	Code    string   `json:"code"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors,omitempty"`
	Diagram string   `json:"diagram,omitempty"`
}

// rejection describes a document whose statements partly failed. The code
// is the one of the first builder error, if any.
func rejection(partial string, err error) errorBody {
	body := errorBody{Code: "INVALID_STATEMENT", Error: err.Error(), Diagram: partial}
	for _, e := range document.Errors(err) {
		body.Errors = append(body.Errors, e.Error())
		if code := domain.CodeOf(e); code != "" && body.Code == "INVALID_STATEMENT" {
			body.Code = string(code)
		}
	}
	return body
}

func writeText(w http.ResponseWriter, diagram string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, diagram)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, body)
}
