package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fitflow/fitflow/internal/telemetry/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics records a request counter and latency histogram per route
// pattern. Must sit inside the chi router so the route pattern is resolved.
func Metrics(m *metrics.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(mw, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = r.URL.Path
			}
			m.CountRequest(r.Method, path, strconv.Itoa(mw.statusCode))
			m.ObserveRequestDuration(r.Method, path, time.Since(start))
		})
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (mw *metricsResponseWriter) WriteHeader(code int) {
	mw.statusCode = code
	mw.ResponseWriter.WriteHeader(code)
}
