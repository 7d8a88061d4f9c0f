package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку на каждый запрос: метод, путь, статус и длительность.
// 5xx пишутся как Error, 4xx как Warn.
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
			default:
				logger.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
			}
		})
	}
}
