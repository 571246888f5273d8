package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/roynafshi-stack/asus-model-api/pkg/httputil"
	"github.com/roynafshi-stack/asus-model-api/pkg/logger"
)

// Recovery converts handler panics into the standard 500 error envelope so a
// bad vendor page or extraction bug never takes the process down. The
// response carries the request's correlation ID when one is set.
func Recovery(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					l.ErrorContext(r.Context(), "panic recovered",
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					httputil.WriteJSON(w, http.StatusInternalServerError, httputil.Response{
						Error: &httputil.ErrorResponse{
							Code:      "INTERNAL_ERROR",
							Message:   "an internal error occurred",
							RequestID: logger.CorrelationIDFromContext(r.Context()),
						},
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
