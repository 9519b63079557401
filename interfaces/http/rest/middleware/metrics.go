package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"contentedge/pkg/observability"
)

// Metrics creates a middleware recording request counts and durations
func Metrics(collector *observability.Collector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			collector.ObserveRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(ww.Status()),
				time.Since(start).Seconds(),
			)
		})
	}
}
