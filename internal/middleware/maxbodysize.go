package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that rejects request bodies
// larger than limit bytes. Requests that declare an oversized Content-Length
// are rejected with 413 before the handler runs; bodies of unknown length are
// wrapped with http.MaxBytesReader so downstream reads fail once the limit is
// exceeded.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
