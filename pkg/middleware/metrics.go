package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/seller-analytics-api/pkg/metrics"
)

// MetricsMiddleware registra duração e status das requisições HTTP
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(lrw.statusCode), time.Since(startTime))
		})
	}
}
