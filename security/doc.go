// Package security holds the TLS configuration consumed by the engine
// adapter's transport: CA pinning, client certificates for mTLS, and
// verification knobs, all loadable from config files.
package security
