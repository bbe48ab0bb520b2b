// Package nethttp adapts the abstract message types to Go's net/http
// engine. A Client holds one shared *http.Client handle for its lifetime;
// every Send translates the abstract request into a native one, performs
// the exchange on the shared handle, and translates the native response
// back.
//
// Translation policy:
//
//   - Only "http" and "https" URL schemes are dispatched; anything else
//     fails with a client error before any network activity, because the
//     engine's transport is wired only for plaintext and TLS connections.
//   - Headers cross representations byte-for-byte, preserving multi-value
//     append semantics and per-name order. Names and values are validated
//     during translation; a disagreement between the two representations
//     surfaces as a header error instead of being assumed impossible.
//   - Request bodies are drained fully into memory before dispatch, and
//     response bodies are drained fully before return. Memory is bounded
//     by body size; streaming is not forwarded incrementally.
//
// The adapter applies no retry, caching, or timeout policy of its own
// beyond the engine timeout configured at construction. Compose policy
// with the httpclient middlewares.
package nethttp
