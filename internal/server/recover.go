package server

import (
	"fmt"
	"net/http"
)

// recoverMiddleware converts handler panics into a 500 response so a single
// bad request cannot take down the process. The panic value is surfaced in
// the error envelope like any other unanticipated failure.
func (h *Handler) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error("handler panic",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				writeDetail(w, http.StatusInternalServerError, fmt.Sprintf("%v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
