package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Logging tags each request with a short id and logs method, path, status
// and duration once the handler returns.
func Logging(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			id := uuid.New().String()[:8]

			next.ServeHTTP(rec, r)

			logger.Printf("[%s] %s %s %d %s",
				id, r.Method, r.URL.Path, rec.status,
				time.Since(start).Truncate(time.Millisecond))
		})
	}
}
