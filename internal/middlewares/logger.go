package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request scoped logger to the request context and logs
// the outcome once the handler returns.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		subLogger := log.
			With().
			Str("request_id", uuid.New().String()).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("client_ip", req.RemoteAddr).
			Logger()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(res, req.ProtoMajor)

		req = req.WithContext(subLogger.WithContext(req.Context()))
		next.ServeHTTP(ww, req)

		subLogger.Debug().
			Int("status_code", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}
