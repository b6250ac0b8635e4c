package router

import (
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/portfolio/internal/pkg/stacktrace"
)

//nolint:contextcheck // the request context is the right one to log with
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			//nolint:err113,errorlint // sentinel must be compared directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", stacktrace.Internal(2))

			if r.Header.Get("Connection") == "Upgrade" {
				return
			}
			writeJSON(w, ErrorResponse{Detail: "Internal server error"}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
