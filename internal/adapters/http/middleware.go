package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID returns the id assigned to the request, or "".
func RequestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// requestID fills in a uuid when the caller sent no X-Request-ID, hands the
// request to chi's RequestID and echoes the id on the response.
func requestID(next http.Handler) http.Handler {
	echo := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(RequestIDHeader, middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	}))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(middleware.RequestIDHeader) == "" {
			r.Header.Set(middleware.RequestIDHeader, uuid.NewString())
		}
		echo.ServeHTTP(w, r)
	})
}

type metrics struct {
	requests       *prometheus.CounterVec
	requestTime    *prometheus.HistogramVec
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	cacheHits      prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mermaidkit_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "status"},
		),
		requestTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mermaidkit_http_request_duration_seconds",
				Help: "Duration of HTTP requests",
			},
			[]string{"route"},
		),
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mermaidkit_renders_total",
				Help: "Total number of rendered documents by outcome",
			},
			[]string{"kind", "result"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mermaidkit_render_duration_seconds",
				Help: "Duration of document builds",
			},
			[]string{"kind"},
		),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mermaidkit_cache_hits_total",
			Help: "Total number of renders served from the cache",
		}),
	}
	reg.MustRegister(m.requests, m.requestTime, m.renders, m.renderDuration, m.cacheHits)
	return m
}

// instrument records the status and latency of every routed request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.metrics.requestTime.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.Debug("request served",
			"method", r.Method,
			"route", route,
			"status", status,
			"request_id", RequestID(r.Context()),
		)
	})
}
