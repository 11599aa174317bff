// internal/botstub/middleware.go
package botstub

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// logMiddleware logs the method, path and duration of each stub request.
func logMiddleware(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
				"remote":   r.RemoteAddr,
			}).Debug("stub request")
		})
	}
}
