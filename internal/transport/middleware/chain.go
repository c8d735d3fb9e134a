package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so Chain(mw1, mw2)(h) is mw1(mw2(h)); mw1 runs
// first. Nil entries are skipped, which lets optional layers such as metrics
// be switched off by config.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// ThenFunc wraps a handler function.
func (m Middleware) ThenFunc(fn http.HandlerFunc) http.Handler {
	return m(fn)
}
