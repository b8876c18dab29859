package middleware

import (
	"io"
	"net/http"
)

// drainLimitBytes caps how much of an unread request body gets drained.
// Bodies larger than this are not worth reading just to keep the
// connection reusable; closing is enough.
const drainLimitBytes = 1 << 20

// DrainAndCloseRequest finishes every request by draining whatever the
// handler left unread and closing the body. Unread bytes left behind
// prevent keep-alive connection reuse.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, drainLimitBytes)
			_ = r.Body.Close()
		})
	}
}
