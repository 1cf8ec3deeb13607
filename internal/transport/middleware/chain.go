package middleware

import "net/http"

// Middleware wraps the API router.
type Middleware func(http.Handler) http.Handler

// Chain nests mws around a handler with the first one outermost, so
// Chain(Recovery(log), RequestID) recovers panics raised by RequestID too.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
