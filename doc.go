// Package httpclient defines a generic HTTP client capability: send an
// engine-agnostic request, obtain an engine-agnostic response or an error.
// Engine adapters (see the nethttp subpackage) satisfy the Client interface
// so callers can swap the underlying HTTP engine transparently.
//
// The package also provides opt-in middleware for cross-cutting concerns.
// The adapter itself never retries, caches, or enforces timeouts; those
// policies belong to the caller and compose as middleware:
//
//	client := httpclient.Chain(
//	    httpclient.WithRequestID(),
//	    httpclient.WithLogging(log),
//	    httpclient.WithRetry(resilience.DefaultRetryConfig()),
//	)(nethttp.New())
//
//	req, _ := message.NewRequest(http.MethodGet, "https://api.example.com/users/1")
//	resp, err := client.Send(ctx, req)
package httpclient
