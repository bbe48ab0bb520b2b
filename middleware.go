package httpclient

// Middleware transforms a Client by wrapping it. The returned client
// typically delegates to the original while adding cross-cutting behavior
// (logging, tracing, retry, etc.).
type Middleware func(Client) Client

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(client) is equivalent to a(b(c(client))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Client) Client {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
