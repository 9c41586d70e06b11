package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/fitflow/fitflow/internal/telemetry/metrics"
	"github.com/fitflow/fitflow/pkg/problem"
	"github.com/sirupsen/logrus"
)

// Recovery recovers from handler panics, logs the stack and returns a
// problem+json 500. The metrics manager may be nil.
func Recovery(m *metrics.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logrus.WithFields(logrus.Fields{
						"panic": err,
						"path":  r.URL.Path,
						"stack": string(debug.Stack()),
					}).Error("panic recovered in handler")
					m.CountRecoveredPanic()
					problem.InternalError("An unexpected error occurred").Write(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
